package lua

import (
	"context"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/ports"
)

// Engine is a live gopher-lua state. It is not safe for concurrent use.
type Engine struct {
	L *lua.LState

	// ctx is the context of the Eval or Call in progress.
	ctx    context.Context
	closed bool
}

var _ ports.Engine = (*Engine)(nil)

func newEngine(L *lua.LState) *Engine {
	return &Engine{L: L, ctx: context.Background()}
}

// State exposes the underlying LState for callers needing features beyond
// the Engine interface.
func (e *Engine) State() *lua.LState { return e.L }

// Runtime implements ports.Engine.
func (e *Engine) Runtime() string { return Name }

// Stage implements ports.Engine. The slot becomes a table keyed by original
// registration names.
func (e *Engine) Stage(slot string, entries []ports.HostEntry) error {
	if e.closed {
		return errors.ErrEngineClosed
	}

	tbl := e.L.CreateTable(0, len(entries))
	for _, entry := range entries {
		if entry.Invoke != nil {
			tbl.RawSetString(entry.Binding.Name, e.L.NewFunction(e.native(entry)))
			continue
		}
		tbl.RawSetString(entry.Binding.Name, toLua(e.L, entry.Binding.Value))
	}

	e.L.SetGlobal(slot, tbl)
	return nil
}

// native wraps a host invoker as a Lua function.
func (e *Engine) native(entry ports.HostEntry) lua.LGFunction {
	invoke := entry.Invoke
	returns := entry.Binding.Kind.Returns()
	return func(L *lua.LState) int {
		top := L.GetTop()
		args := make([]any, top)
		for i := 1; i <= top; i++ {
			args[i-1] = fromLua(L.Get(i))
		}

		result, err := invoke(e.ctx, args)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		if !returns {
			return 0
		}
		L.Push(toLua(L, result))
		return 1
	}
}

// Eval implements ports.Engine. src is first compiled as an expression
// ("return " + src) so that Eval("n") yields n; when that does not compile
// it runs as a chunk, whose own return value (if any) is the result.
func (e *Engine) Eval(ctx context.Context, src string) (any, error) {
	if e.closed {
		return nil, errors.ErrEngineClosed
	}

	fn, err := e.L.LoadString("return " + src)
	if err != nil {
		fn, err = e.L.LoadString(src)
		if err != nil {
			return nil, err
		}
	}

	return e.call(ctx, fn)
}

// Get implements ports.Engine.
func (e *Engine) Get(name string) (any, bool) {
	if e.closed {
		return nil, false
	}
	v := e.L.GetGlobal(name)
	if v == lua.LNil {
		return nil, false
	}
	return fromLua(v), true
}

// Call implements ports.Engine.
func (e *Engine) Call(ctx context.Context, name string, args ...any) (any, error) {
	if e.closed {
		return nil, errors.ErrEngineClosed
	}

	fn, ok := e.L.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrNotCallable, name)
	}

	return e.call(ctx, fn, args...)
}

// Close implements ports.Engine.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.L.Close()
	return nil
}

// call runs fn in protected mode with ctx installed and returns its first result.
func (e *Engine) call(ctx context.Context, fn *lua.LFunction, args ...any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prev := e.ctx
	e.ctx = ctx
	defer func() { e.ctx = prev }()

	if ctx.Done() != nil {
		e.L.SetContext(ctx)
		defer e.L.RemoveContext()
	}

	luaArgs := make([]lua.LValue, len(args))
	for i, a := range args {
		luaArgs[i] = toLua(e.L, a)
	}

	if err := e.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, luaArgs...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("script interrupted: %w", ctxErr)
		}
		return nil, err
	}

	ret := e.L.Get(-1)
	e.L.Pop(1)
	return fromLua(ret), nil
}
