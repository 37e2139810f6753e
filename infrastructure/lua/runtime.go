package lua

import (
	"context"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/reglet-dev/scriptbox/application/bootstrap"
	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/ports"
)

// Name is the runtime name used in errors, logs and the runtime catalogue.
const Name = "lua"

// Ensure Runtime satisfies the interface.
var _ ports.ScriptRuntime = (*Runtime)(nil)

// runtimeConfig holds configuration for the Runtime.
type runtimeConfig struct {
	callStackSize int
	sandbox       bool
}

func defaultRuntimeConfig() runtimeConfig {
	return runtimeConfig{}
}

// RuntimeOption configures the Runtime.
type RuntimeOption func(*runtimeConfig)

// WithCallStackSize sets the Lua call stack size. Zero keeps the gopher-lua default.
func WithCallStackSize(size int) RuntimeOption {
	return func(c *runtimeConfig) {
		c.callStackSize = size
	}
}

// WithSandbox opens only the base, table, string and math libraries and
// removes dofile and loadfile, so scripts cannot touch the filesystem or
// the process.
func WithSandbox(enabled bool) RuntimeOption {
	return func(c *runtimeConfig) {
		c.sandbox = enabled
	}
}

// Runtime creates gopher-lua engines.
type Runtime struct {
	config runtimeConfig
}

// NewRuntime creates a Lua runtime.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	cfg := defaultRuntimeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runtime{config: cfg}
}

// Name implements ports.ScriptRuntime.
func (r *Runtime) Name() string { return Name }

// ReservedWords implements ports.ScriptRuntime.
func (r *Runtime) ReservedWords() naming.ReservedWordSet { return reserved }

// Dialect implements ports.ScriptRuntime.
func (r *Runtime) Dialect() entities.Dialect { return bootstrap.LuaDialect() }

var sandboxLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// NewEngine implements ports.ScriptRuntime.
func (r *Runtime) NewEngine(ctx context.Context) (ports.Engine, error) {
	if err := ctx.Err(); err != nil {
		return nil, &errors.EngineCreationError{Runtime: Name, Err: err}
	}

	L := lua.NewState(lua.Options{
		CallStackSize: r.config.callStackSize,
		SkipOpenLibs:  r.config.sandbox,
	})

	if r.config.sandbox {
		for _, lib := range sandboxLibs {
			err := L.CallByParam(lua.P{Fn: L.NewFunction(lib.open), NRet: 0, Protect: true}, lua.LString(lib.name))
			if err != nil {
				L.Close()
				return nil, &errors.EngineCreationError{Runtime: Name, Err: fmt.Errorf("open %s library: %w", lib.name, err)}
			}
		}
		L.SetGlobal("dofile", lua.LNil)
		L.SetGlobal("loadfile", lua.LNil)
	}

	return newEngine(L), nil
}
