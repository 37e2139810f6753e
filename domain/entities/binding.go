package entities

import (
	"context"
	"fmt"
)

// Kind tags a host value with its calling shape. The tag is fixed at
// registration time; it is never inferred from the callable's signature.
type Kind int

const (
	// KindScalar is a plain value transferred as-is.
	KindScalar Kind = iota
	KindVoid0
	KindVoid1
	KindVoid2
	KindVoid3
	KindVoid4
	KindFunc0
	KindFunc1
	KindFunc2
	KindFunc3
	KindFunc4
)

// Void0 is a callable taking no arguments and returning nothing.
type Void0 func()

// Void1 is a callable taking one argument and returning nothing.
type Void1 func(a any)

// Void2 is a callable taking two arguments and returning nothing.
type Void2 func(a, b any)

// Void3 is a callable taking three arguments and returning nothing.
type Void3 func(a, b, c any)

// Void4 is a callable taking four arguments and returning nothing.
type Void4 func(a, b, c, d any)

// Func0 is a callable taking no arguments and returning a value.
type Func0 func() any

// Func1 is a callable taking one argument and returning a value.
type Func1 func(a any) any

// Func2 is a callable taking two arguments and returning a value.
type Func2 func(a, b any) any

// Func3 is a callable taking three arguments and returning a value.
type Func3 func(a, b, c any) any

// Func4 is a callable taking four arguments and returning a value.
type Func4 func(a, b, c, d any) any

var kindNames = [...]string{
	KindScalar: "scalar",
	KindVoid0:  "void0",
	KindVoid1:  "void1",
	KindVoid2:  "void2",
	KindVoid3:  "void3",
	KindVoid4:  "void4",
	KindFunc0:  "func0",
	KindFunc1:  "func1",
	KindFunc2:  "func2",
	KindFunc3:  "func3",
	KindFunc4:  "func4",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsCallable reports whether values of this kind are host functions.
func (k Kind) IsCallable() bool {
	return k >= KindVoid0 && k <= KindFunc4
}

// Returns reports whether a callable of this kind produces a result.
func (k Kind) Returns() bool {
	return k >= KindFunc0 && k <= KindFunc4
}

// Arity returns the declared argument count, or -1 for scalars.
func (k Kind) Arity() int {
	switch {
	case k >= KindVoid0 && k <= KindVoid4:
		return int(k - KindVoid0)
	case k >= KindFunc0 && k <= KindFunc4:
		return int(k - KindFunc0)
	default:
		return -1
	}
}

// Binding associates a host-side name with a host value.
type Binding struct {
	// Name is the validated host-side registration name.
	Name string

	// Kind is the calling shape declared at registration.
	Kind Kind

	// Value is the scalar or one of the VoidN/FuncN callables.
	Value any
}

// KindOf returns the kind implied by the dynamic type of v. Values that are
// not one of the VoidN/FuncN types are scalars.
func KindOf(v any) Kind {
	switch v.(type) {
	case Void0:
		return KindVoid0
	case Void1:
		return KindVoid1
	case Void2:
		return KindVoid2
	case Void3:
		return KindVoid3
	case Void4:
		return KindVoid4
	case Func0:
		return KindFunc0
	case Func1:
		return KindFunc1
	case Func2:
		return KindFunc2
	case Func3:
		return KindFunc3
	case Func4:
		return KindFunc4
	default:
		return KindScalar
	}
}

// Invoker is the uniform calling convention adapters use for host callables.
// Missing arguments are nil; surplus arguments are ignored.
type Invoker func(ctx context.Context, args []any) (any, error)
