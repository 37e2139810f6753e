package hostfuncs

import (
	"context"
	"fmt"
	"reflect"

	"github.com/reglet-dev/scriptbox/domain/entities"
)

// NewInvoker adapts an arity-tagged callable to the uniform Invoker
// convention. Missing arguments are passed as nil and surplus arguments are
// dropped, the way script languages call functions. Void callables return nil.
func NewInvoker(b entities.Binding) (entities.Invoker, error) {
	if !b.Kind.IsCallable() {
		return nil, fmt.Errorf("binding %q is a %s, not a callable", b.Name, b.Kind)
	}

	call, err := adapt(b.Kind, b.Value)
	if err != nil {
		return nil, fmt.Errorf("binding %q: %w", b.Name, err)
	}

	arity := b.Kind.Arity()
	return func(_ context.Context, args []any) (any, error) {
		return call(fitArgs(args, arity)), nil
	}, nil
}

func fitArgs(args []any, arity int) []any {
	out := make([]any, arity)
	copy(out, args)
	return out
}

// adapt type-asserts v against the callable type declared by kind.
func adapt(kind entities.Kind, v any) (func(a []any) any, error) {
	mismatch := func() error {
		return fmt.Errorf("%w: declared %s but value is %T", ErrKindMismatch, kind, v)
	}
	if v == nil {
		return nil, ErrNilFunction
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func && rv.IsNil() {
		return nil, ErrNilFunction
	}

	switch kind {
	case entities.KindVoid0:
		fn, ok := v.(entities.Void0)
		if !ok {
			return nil, mismatch()
		}
		return func([]any) any { fn(); return nil }, nil
	case entities.KindVoid1:
		fn, ok := v.(entities.Void1)
		if !ok {
			return nil, mismatch()
		}
		return func(a []any) any { fn(a[0]); return nil }, nil
	case entities.KindVoid2:
		fn, ok := v.(entities.Void2)
		if !ok {
			return nil, mismatch()
		}
		return func(a []any) any { fn(a[0], a[1]); return nil }, nil
	case entities.KindVoid3:
		fn, ok := v.(entities.Void3)
		if !ok {
			return nil, mismatch()
		}
		return func(a []any) any { fn(a[0], a[1], a[2]); return nil }, nil
	case entities.KindVoid4:
		fn, ok := v.(entities.Void4)
		if !ok {
			return nil, mismatch()
		}
		return func(a []any) any { fn(a[0], a[1], a[2], a[3]); return nil }, nil
	case entities.KindFunc0:
		fn, ok := v.(entities.Func0)
		if !ok {
			return nil, mismatch()
		}
		return func([]any) any { return fn() }, nil
	case entities.KindFunc1:
		fn, ok := v.(entities.Func1)
		if !ok {
			return nil, mismatch()
		}
		return func(a []any) any { return fn(a[0]) }, nil
	case entities.KindFunc2:
		fn, ok := v.(entities.Func2)
		if !ok {
			return nil, mismatch()
		}
		return func(a []any) any { return fn(a[0], a[1]) }, nil
	case entities.KindFunc3:
		fn, ok := v.(entities.Func3)
		if !ok {
			return nil, mismatch()
		}
		return func(a []any) any { return fn(a[0], a[1], a[2]) }, nil
	case entities.KindFunc4:
		fn, ok := v.(entities.Func4)
		if !ok {
			return nil, mismatch()
		}
		return func(a []any) any { return fn(a[0], a[1], a[2], a[3]) }, nil
	default:
		return nil, mismatch()
	}
}
