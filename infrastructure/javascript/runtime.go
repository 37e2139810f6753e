package javascript

import (
	"context"

	"github.com/dop251/goja"
	"github.com/reglet-dev/scriptbox/application/bootstrap"
	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/ports"
)

// Name is the runtime name used in errors, logs and the runtime catalogue.
const Name = "javascript"

// Ensure Runtime satisfies the interface.
var _ ports.ScriptRuntime = (*Runtime)(nil)

// runtimeConfig holds configuration for the Runtime.
type runtimeConfig struct {
	fieldNameTag     string
	maxCallStackSize int
	uncapFieldNames  bool
}

func defaultRuntimeConfig() runtimeConfig {
	return runtimeConfig{}
}

// RuntimeOption configures the Runtime.
type RuntimeOption func(*runtimeConfig)

// WithFieldNameMapper maps exported Go struct fields and methods to script
// property names using the given struct tag (e.g. "json"). Untagged methods
// are exposed with a lowercased first letter.
func WithFieldNameMapper(tag string) RuntimeOption {
	return func(c *runtimeConfig) {
		c.fieldNameTag = tag
		c.uncapFieldNames = true
	}
}

// WithMaxCallStackSize limits script recursion depth. Zero keeps goja's default.
func WithMaxCallStackSize(size int) RuntimeOption {
	return func(c *runtimeConfig) {
		c.maxCallStackSize = size
	}
}

// Runtime creates goja engines.
type Runtime struct {
	config runtimeConfig
}

// NewRuntime creates a JavaScript runtime.
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
func (r *Runtime) Dialect() entities.Dialect { return bootstrap.JavaScriptDialect() }

// NewEngine implements ports.ScriptRuntime.
func (r *Runtime) NewEngine(ctx context.Context) (ports.Engine, error) {
	if err := ctx.Err(); err != nil {
		return nil, &errors.EngineCreationError{Runtime: Name, Err: err}
	}

	vm := goja.New()
	if r.config.fieldNameTag != "" {
		vm.SetFieldNameMapper(goja.TagFieldNameMapper(r.config.fieldNameTag, r.config.uncapFieldNames))
	}
	if r.config.maxCallStackSize > 0 {
		vm.SetMaxCallStackSize(r.config.maxCallStackSize)
	}

	return newEngine(vm), nil
}
