package typed

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/reglet-dev/scriptbox/domain/ports"
)

// ErrUnbound is returned by Get for a name with no script binding.
var ErrUnbound = stdErrors.New("name is not bound")

// Engine wraps a ports.Engine with typed convenience methods. The embedded
// engine stays fully usable.
type Engine struct {
	ports.Engine
}

// Wrap returns a typed view of e.
func Wrap(e ports.Engine) *Engine {
	return &Engine{Engine: e}
}

// Eval evaluates src and converts the result to T.
func Eval[T any](ctx context.Context, e ports.Engine, src string) (T, error) {
	var zero T
	v, err := e.Eval(ctx, src)
	if err != nil {
		return zero, err
	}
	out, err := Convert[T](v)
	return out, withSource(err, src)
}

// Call invokes the script function name and converts the result to T.
func Call[T any](ctx context.Context, e ports.Engine, name string, args ...any) (T, error) {
	var zero T
	v, err := e.Call(ctx, name, args...)
	if err != nil {
		return zero, err
	}
	out, err := Convert[T](v)
	return out, withSource(err, name)
}

// Get reads the script global name and converts it to T.
func Get[T any](e ports.Engine, name string) (T, error) {
	var zero T
	v, ok := e.Get(name)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrUnbound, name)
	}
	out, err := Convert[T](v)
	return out, withSource(err, name)
}

func withSource(err error, source string) error {
	var tm *TypeMismatchError
	if stdErrors.As(err, &tm) {
		tm.Source = source
	}
	return err
}

// EvalString evaluates src expecting a string.
func (e *Engine) EvalString(ctx context.Context, src string) (string, error) {
	return Eval[string](ctx, e.Engine, src)
}

// EvalInt evaluates src expecting an integral number.
func (e *Engine) EvalInt(ctx context.Context, src string) (int64, error) {
	return Eval[int64](ctx, e.Engine, src)
}

// EvalFloat evaluates src expecting a number.
func (e *Engine) EvalFloat(ctx context.Context, src string) (float64, error) {
	return Eval[float64](ctx, e.Engine, src)
}

// EvalBool evaluates src expecting a boolean.
func (e *Engine) EvalBool(ctx context.Context, src string) (bool, error) {
	return Eval[bool](ctx, e.Engine, src)
}

// CallString calls name expecting a string result.
func (e *Engine) CallString(ctx context.Context, name string, args ...any) (string, error) {
	return Call[string](ctx, e.Engine, name, args...)
}
