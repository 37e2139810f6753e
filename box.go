package scriptbox

import (
	"context"

	"github.com/reglet-dev/scriptbox/host"
	"github.com/reglet-dev/scriptbox/host/registry"
	"github.com/reglet-dev/scriptbox/hostfuncs"
	"github.com/reglet-dev/scriptbox/typed"
)

// boxConfig holds configuration for a Box.
type boxConfig struct {
	runtimes   *registry.Registry
	registry   []hostfuncs.RegistryOption
	buildOpts  []host.Option
	noRecovery bool
}

func defaultBoxConfig() boxConfig {
	return boxConfig{}
}

// Option configures a Box.
type Option func(*boxConfig)

// WithMiddleware adds middleware around every host callable, after panic
// recovery.
func WithMiddleware(mw ...hostfuncs.Middleware) Option {
	return func(c *boxConfig) {
		c.registry = append(c.registry, hostfuncs.WithMiddleware(mw...))
	}
}

// WithBundle registers all bindings of bundle.
func WithBundle(bundle hostfuncs.HostFuncBundle) Option {
	return func(c *boxConfig) {
		c.registry = append(c.registry, hostfuncs.WithBundle(bundle))
	}
}

// WithRuntimes sets the catalogue BuildNamed looks runtimes up in.
// Default is registry.Default().
func WithRuntimes(r *registry.Registry) Option {
	return func(c *boxConfig) {
		c.runtimes = r
	}
}

// WithDefaults sets build options applied before the options of each Build.
func WithDefaults(opts ...BuildOption) Option {
	return func(c *boxConfig) {
		c.buildOpts = append(c.buildOpts, opts...)
	}
}

// WithoutPanicRecovery lets host panics propagate into the script engine
// instead of surfacing as *hostfuncs.PanicError.
func WithoutPanicRecovery() Option {
	return func(c *boxConfig) {
		c.noRecovery = true
	}
}

// Box collects host values and builds engines that expose them.
// A Box is not safe for concurrent registration; Build may be called
// repeatedly and each call creates an independent engine.
type Box struct {
	registry *hostfuncs.Registry
	config   boxConfig
}

// Create returns an empty Box.
func Create(opts ...Option) *Box {
	cfg := defaultBoxConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.runtimes == nil {
		cfg.runtimes = registry.Default()
	}

	var regOpts []hostfuncs.RegistryOption
	if !cfg.noRecovery {
		regOpts = append(regOpts, hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware()))
	}
	regOpts = append(regOpts, cfg.registry...)

	return &Box{registry: hostfuncs.NewRegistry(regOpts...), config: cfg}
}

// Setter completes a registration started by Box.Set.
type Setter struct {
	box   *Box
	inner *hostfuncs.NameSetter
}

// Set starts registering name. An invalid name is recorded and fails Build;
// later registrations are ignored.
func (b *Box) Set(name string) Setter {
	return Setter{box: b, inner: b.registry.Set(name)}
}

// ToValue binds a scalar, or a VoidN/FuncN callable under its own kind.
func (s Setter) ToValue(v any) *Box {
	s.inner.ToValue(v)
	return s.box
}

// ToVoid0 binds a callable taking no arguments.
func (s Setter) ToVoid0(fn func()) *Box {
	s.inner.ToVoid0(fn)
	return s.box
}

// ToVoid1 binds a callable taking one argument.
func (s Setter) ToVoid1(fn func(a any)) *Box {
	s.inner.ToVoid1(fn)
	return s.box
}

// ToVoid2 binds a callable taking two arguments.
func (s Setter) ToVoid2(fn func(a, b any)) *Box {
	s.inner.ToVoid2(fn)
	return s.box
}

// ToVoid3 binds a callable taking three arguments.
func (s Setter) ToVoid3(fn func(a, b, c any)) *Box {
	s.inner.ToVoid3(fn)
	return s.box
}

// ToVoid4 binds a callable taking four arguments.
func (s Setter) ToVoid4(fn func(a, b, c, d any)) *Box {
	s.inner.ToVoid4(fn)
	return s.box
}

// ToFunc0 binds a function taking no arguments.
func (s Setter) ToFunc0(fn func() any) *Box {
	s.inner.ToFunc0(fn)
	return s.box
}

// ToFunc1 binds a function taking one argument.
func (s Setter) ToFunc1(fn func(a any) any) *Box {
	s.inner.ToFunc1(fn)
	return s.box
}

// ToFunc2 binds a function taking two arguments.
func (s Setter) ToFunc2(fn func(a, b any) any) *Box {
	s.inner.ToFunc2(fn)
	return s.box
}

// ToFunc3 binds a function taking three arguments.
func (s Setter) ToFunc3(fn func(a, b, c any) any) *Box {
	s.inner.ToFunc3(fn)
	return s.box
}

// ToFunc4 binds a function taking four arguments.
func (s Setter) ToFunc4(fn func(a, b, c, d any) any) *Box {
	s.inner.ToFunc4(fn)
	return s.box
}

// Err returns the first registration error.
func (b *Box) Err() error { return b.registry.Err() }

// Names returns the registered names in insertion order.
func (b *Box) Names() []string { return b.registry.Names() }

// Len returns the number of registered names.
func (b *Box) Len() int { return b.registry.Len() }

// Registry returns the underlying registry.
func (b *Box) Registry() *hostfuncs.Registry { return b.registry }

func (b *Box) binder(opts []BuildOption) *host.Binder {
	all := make([]host.Option, 0, len(b.config.buildOpts)+len(opts))
	all = append(all, b.config.buildOpts...)
	all = append(all, opts...)
	return host.NewBinder(all...)
}

// Plan resolves names and generates the bootstrap for rt without creating an
// engine.
func (b *Box) Plan(rt Runtime, opts ...BuildOption) (*host.Plan, error) {
	return b.binder(opts).Plan(b.registry, rt)
}

// Build creates a fresh engine from rt with every registered value declared
// as a script variable. The caller must Close the engine.
func (b *Box) Build(ctx context.Context, rt Runtime, opts ...BuildOption) (Engine, error) {
	return b.binder(opts).Bind(ctx, b.registry, rt)
}

// BuildNamed is Build with the runtime looked up by name.
func (b *Box) BuildNamed(ctx context.Context, runtime string, opts ...BuildOption) (Engine, error) {
	rt, err := b.config.runtimes.Lookup(runtime)
	if err != nil {
		return nil, err
	}
	return b.Build(ctx, rt, opts...)
}

// BuildTyped is Build returning an engine with typed accessors.
func (b *Box) BuildTyped(ctx context.Context, rt Runtime, opts ...BuildOption) (*typed.Engine, error) {
	engine, err := b.Build(ctx, rt, opts...)
	if err != nil {
		return nil, err
	}
	return typed.Wrap(engine), nil
}
