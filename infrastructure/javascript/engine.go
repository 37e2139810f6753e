package javascript

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/dop251/goja"
	"github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/ports"
)

// Engine is a live goja runtime. It is not safe for concurrent use.
type Engine struct {
	vm *goja.Runtime

	// ctx is the context of the Eval or Call in progress, handed to host
	// invokers so they observe cancellation.
	ctx    context.Context
	closed bool
}

var _ ports.Engine = (*Engine)(nil)

func newEngine(vm *goja.Runtime) *Engine {
	return &Engine{vm: vm, ctx: context.Background()}
}

// VM exposes the underlying goja runtime for callers needing features
// beyond the Engine interface.
func (e *Engine) VM() *goja.Runtime { return e.vm }

// Runtime implements ports.Engine.
func (e *Engine) Runtime() string { return Name }

// Stage implements ports.Engine. The slot becomes a plain object keyed by
// original registration names. Entries are own data properties, so names like
// __proto__ never reach an inherited accessor.
func (e *Engine) Stage(slot string, entries []ports.HostEntry) error {
	if e.closed {
		return errors.ErrEngineClosed
	}

	obj := e.vm.NewObject()
	for _, entry := range entries {
		var value goja.Value
		if entry.Invoke != nil {
			value = e.vm.ToValue(e.native(entry))
		} else {
			value = e.vm.ToValue(entry.Binding.Value)
		}
		if err := obj.DefineDataProperty(entry.Binding.Name, value, goja.FLAG_TRUE, goja.FLAG_TRUE, goja.FLAG_TRUE); err != nil {
			return fmt.Errorf("failed to stage %q: %w", entry.Binding.Name, err)
		}
	}

	return e.vm.Set(slot, obj)
}

// native wraps a host invoker as a goja function.
func (e *Engine) native(entry ports.HostEntry) func(goja.FunctionCall) goja.Value {
	invoke := entry.Invoke
	returns := entry.Binding.Kind.Returns()
	return func(call goja.FunctionCall) goja.Value {
		args := make([]any, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = export(arg)
		}

		result, err := invoke(e.ctx, args)
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		if !returns {
			return goja.Undefined()
		}
		return e.vm.ToValue(result)
	}
}

// Eval implements ports.Engine.
func (e *Engine) Eval(ctx context.Context, src string) (any, error) {
	v, err := e.run(ctx, func() (goja.Value, error) {
		return e.vm.RunString(src)
	})
	if err != nil {
		return nil, err
	}
	return export(v), nil
}

// Get implements ports.Engine.
func (e *Engine) Get(name string) (any, bool) {
	if e.closed {
		return nil, false
	}
	v := e.vm.Get(name)
	if v == nil {
		return nil, false
	}
	return export(v), true
}

// Call implements ports.Engine.
func (e *Engine) Call(ctx context.Context, name string, args ...any) (any, error) {
	if e.closed {
		return nil, errors.ErrEngineClosed
	}

	fn, ok := goja.AssertFunction(e.vm.Get(name))
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrNotCallable, name)
	}

	jsArgs := make([]goja.Value, len(args))
	for i, a := range args {
		jsArgs[i] = e.vm.ToValue(a)
	}

	v, err := e.run(ctx, func() (goja.Value, error) {
		return fn(goja.Undefined(), jsArgs...)
	})
	if err != nil {
		return nil, err
	}
	return export(v), nil
}

// Close implements ports.Engine. It interrupts any running script.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.vm.Interrupt(errors.ErrEngineClosed)
	return nil
}

// run executes fn with ctx installed, interrupting the VM when ctx is done.
func (e *Engine) run(ctx context.Context, fn func() (goja.Value, error)) (goja.Value, error) {
	if e.closed {
		return nil, errors.ErrEngineClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prev := e.ctx
	e.ctx = ctx
	defer func() { e.ctx = prev }()

	if ctx.Done() != nil {
		done := make(chan struct{})
		stopped := make(chan struct{})
		go func() {
			defer close(stopped)
			select {
			case <-ctx.Done():
				e.vm.Interrupt(ctx.Err())
			case <-done:
			}
		}()
		defer func() {
			close(done)
			<-stopped
			e.vm.ClearInterrupt()
		}()
	}

	v, err := fn()
	if err != nil {
		var interrupted *goja.InterruptedError
		if stdErrors.As(err, &interrupted) && ctx.Err() != nil {
			return nil, fmt.Errorf("script interrupted: %w", ctx.Err())
		}
		return nil, err
	}
	return v, nil
}

// export converts a goja value to a plain Go value. undefined and null
// become nil.
func export(v goja.Value) any {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return v.Export()
}
