package hostfuncs

import (
	"context"

	"github.com/reglet-dev/scriptbox/domain/entities"
)

// HostContext wraps a standard context.Context with invocation details.
// It provides access to the invoked binding and allows middleware to store
// call-scoped values without polluting the standard context.
type HostContext interface {
	context.Context

	// FunctionName returns the registration name of the invoked binding.
	FunctionName() string

	// Kind returns the declared calling shape of the invoked binding.
	Kind() entities.Kind

	// SetValue stores a call-scoped value. Unlike context.WithValue,
	// this mutates the existing HostContext.
	SetValue(key, value any)

	// GetValue retrieves a call-scoped value set by SetValue.
	GetValue(key any) (value any, ok bool)
}

type hostContext struct {
	context.Context
	values   map[any]any
	funcName string
	kind     entities.Kind
}

// NewHostContext creates a new HostContext wrapping the given context.
func NewHostContext(ctx context.Context, funcName string, kind entities.Kind) HostContext {
	return &hostContext{
		Context:  ctx,
		funcName: funcName,
		kind:     kind,
		values:   make(map[any]any),
	}
}

func (c *hostContext) FunctionName() string {
	return c.funcName
}

func (c *hostContext) Kind() entities.Kind {
	return c.kind
}

func (c *hostContext) SetValue(key, value any) {
	c.values[key] = value
}

func (c *hostContext) GetValue(key any) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// HostContextFrom returns ctx when it already is a HostContext for funcName,
// and otherwise wraps it in a new one.
func HostContextFrom(ctx context.Context, funcName string, kind entities.Kind) HostContext {
	if hc, ok := ctx.(HostContext); ok && hc.FunctionName() == funcName {
		return hc
	}
	return NewHostContext(ctx, funcName, kind)
}
