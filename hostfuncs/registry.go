package hostfuncs

import (
	"context"
	"fmt"

	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/ports"
)

// Registry is an insertion-ordered collection of named host values.
//
// Names are validated when Set is called. The first invalid name is recorded
// and every later registration becomes a no-op; Err reports it. Registering a
// name twice replaces the earlier value and keeps the original position.
//
// A Registry is not safe for concurrent mutation. Once handed to a binder it
// is only read.
type Registry struct {
	bindings   map[string]entities.Binding
	err        error
	names      []string
	middleware []Middleware
}

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption func(*Registry)

// NewRegistry creates an empty Registry with the given options.
//
// Example usage:
//
//	reg := NewRegistry(
//	    WithMiddleware(PanicRecoveryMiddleware()),
//	    WithBundle(ConsoleBundle(os.Stdout)),
//	)
//	reg.Set("greet").ToFunc2(func(a, b any) any { return fmt.Sprint(a, b) })
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		bindings: make(map[string]entities.Binding),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithMiddleware adds middleware applied to every callable binding.
// Middleware executes in FIFO order (first added wraps outermost).
func WithMiddleware(mw ...Middleware) RegistryOption {
	return func(r *Registry) {
		r.middleware = append(r.middleware, mw...)
	}
}

// WithBundle registers all bindings from a bundle, in bundle order.
func WithBundle(bundle HostFuncBundle) RegistryOption {
	return func(r *Registry) {
		for _, b := range bundle.Bindings() {
			r.Set(b.Name).to(b.Kind, b.Value)
		}
	}
}

// NameSetter completes a registration started by Registry.Set.
type NameSetter struct {
	registry *Registry
	name     string
	valid    bool
}

// Set starts registering name. Validation happens here; an invalid name makes
// the registry fail with an InvalidIdentifierError.
func (r *Registry) Set(name string) *NameSetter {
	s := &NameSetter{registry: r, name: name}
	if r.err != nil {
		return s
	}
	if _, err := naming.ValidateIdentifier(name); err != nil {
		r.err = err
		return s
	}
	s.valid = true
	return s
}

// Put registers value under name with an explicit kind and returns the
// registration error, if any, instead of deferring it.
func (r *Registry) Put(name string, kind entities.Kind, value any) error {
	r.Set(name).to(kind, value)
	return r.err
}

func (s *NameSetter) to(kind entities.Kind, value any) *Registry {
	r := s.registry
	if !s.valid || r.err != nil {
		return r
	}
	if _, exists := r.bindings[s.name]; !exists {
		r.names = append(r.names, s.name)
	}
	r.bindings[s.name] = entities.Binding{Name: s.name, Kind: kind, Value: value}
	return r
}

// ToValue binds v. Values of the VoidN/FuncN types keep their callable kind;
// anything else is transferred as a scalar.
func (s *NameSetter) ToValue(v any) *Registry { return s.to(entities.KindOf(v), v) }

// ToVoid0 binds a callable taking no arguments and returning nothing.
func (s *NameSetter) ToVoid0(fn func()) *Registry {
	return s.to(entities.KindVoid0, entities.Void0(fn))
}

// ToVoid1 binds a one-argument callable returning nothing.
func (s *NameSetter) ToVoid1(fn func(a any)) *Registry {
	return s.to(entities.KindVoid1, entities.Void1(fn))
}

// ToVoid2 binds a two-argument callable returning nothing.
func (s *NameSetter) ToVoid2(fn func(a, b any)) *Registry {
	return s.to(entities.KindVoid2, entities.Void2(fn))
}

// ToVoid3 binds a three-argument callable returning nothing.
func (s *NameSetter) ToVoid3(fn func(a, b, c any)) *Registry {
	return s.to(entities.KindVoid3, entities.Void3(fn))
}

// ToVoid4 binds a four-argument callable returning nothing.
func (s *NameSetter) ToVoid4(fn func(a, b, c, d any)) *Registry {
	return s.to(entities.KindVoid4, entities.Void4(fn))
}

// ToFunc0 binds a callable taking no arguments and returning a value.
func (s *NameSetter) ToFunc0(fn func() any) *Registry {
	return s.to(entities.KindFunc0, entities.Func0(fn))
}

// ToFunc1 binds a one-argument callable returning a value.
func (s *NameSetter) ToFunc1(fn func(a any) any) *Registry {
	return s.to(entities.KindFunc1, entities.Func1(fn))
}

// ToFunc2 binds a two-argument callable returning a value.
func (s *NameSetter) ToFunc2(fn func(a, b any) any) *Registry {
	return s.to(entities.KindFunc2, entities.Func2(fn))
}

// ToFunc3 binds a three-argument callable returning a value.
func (s *NameSetter) ToFunc3(fn func(a, b, c any) any) *Registry {
	return s.to(entities.KindFunc3, entities.Func3(fn))
}

// ToFunc4 binds a four-argument callable returning a value.
func (s *NameSetter) ToFunc4(fn func(a, b, c, d any) any) *Registry {
	return s.to(entities.KindFunc4, entities.Func4(fn))
}

// Err returns the first registration error.
func (r *Registry) Err() error {
	return r.err
}

// Len returns the number of distinct registered names.
func (r *Registry) Len() int {
	return len(r.names)
}

// Has returns true if a binding with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.bindings[name]
	return ok
}

// Names returns registered names in insertion order.
func (r *Registry) Names() []string {
	result := make([]string, len(r.names))
	copy(result, r.names)
	return result
}

// Lookup returns the binding registered under name.
func (r *Registry) Lookup(name string) (entities.Binding, bool) {
	b, ok := r.bindings[name]
	return b, ok
}

// Bindings returns a copy of all bindings in insertion order.
func (r *Registry) Bindings() []entities.Binding {
	out := make([]entities.Binding, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.bindings[name])
	}
	return out
}

// Invoker returns the middleware-wrapped invoker for a callable binding.
// Every call receives a HostContext naming the binding.
func (r *Registry) Invoker(name string) (entities.Invoker, error) {
	b, ok := r.bindings[name]
	if !ok {
		return nil, fmt.Errorf("host function %q is not registered", name)
	}
	return r.invoker(b)
}

func (r *Registry) invoker(b entities.Binding) (entities.Invoker, error) {
	base, err := NewInvoker(b)
	if err != nil {
		return nil, err
	}

	// Apply middleware in reverse order so the first one wraps outermost
	wrapped := base
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}

	name, kind := b.Name, b.Kind
	return func(ctx context.Context, args []any) (any, error) {
		return wrapped(HostContextFrom(ctx, name, kind), args)
	}, nil
}

// Entries returns every binding paired with its invoker, in insertion order,
// ready to be staged into an engine.
func (r *Registry) Entries() ([]ports.HostEntry, error) {
	if r.err != nil {
		return nil, r.err
	}

	entries := make([]ports.HostEntry, 0, len(r.names))
	for _, name := range r.names {
		b := r.bindings[name]
		entry := ports.HostEntry{Binding: b}
		if b.Kind.IsCallable() {
			inv, err := r.invoker(b)
			if err != nil {
				return nil, err
			}
			entry.Invoke = inv
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
