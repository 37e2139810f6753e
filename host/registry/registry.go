// Package registry is the catalogue of script runtimes available by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/reglet-dev/scriptbox/domain/ports"
	"github.com/reglet-dev/scriptbox/infrastructure/javascript"
	"github.com/reglet-dev/scriptbox/infrastructure/lua"
)

// Factory creates a configured script runtime.
type Factory func() ports.ScriptRuntime

// registryConfig holds configuration for the Registry.
type registryConfig struct {
	strictMode bool // Fail on duplicate registrations
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		strictMode: true, // prevent accidental overwrites
	}
}

// RegistryOption configures a Registry instance.
type RegistryOption func(*registryConfig)

// WithStrictMode enables/disables strict mode for duplicate registrations.
// Default is true (fail on duplicates). Disable only for testing or hot-reloading.
func WithStrictMode(enabled bool) RegistryOption {
	return func(c *registryConfig) {
		c.strictMode = enabled
	}
}

// Registry maps runtime names to factories. It is safe for concurrent use.
type Registry struct {
	config    registryConfig
	factories sync.Map // map[string]Factory
}

// NewRegistry creates an empty Registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{config: cfg}
}

// Default returns a registry holding the built-in "javascript" and "lua"
// runtimes with default options.
func Default() *Registry {
	r := NewRegistry()
	_ = r.Register(javascript.Name, func() ports.ScriptRuntime { return javascript.NewRuntime() })
	_ = r.Register(lua.Name, func() ports.ScriptRuntime { return lua.NewRuntime() })
	return r
}

// Register adds a runtime factory under name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("runtime name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("runtime %q has a nil factory", name)
	}
	if r.config.strictMode {
		if _, loaded := r.factories.LoadOrStore(name, factory); loaded {
			return fmt.Errorf("runtime %q already registered", name)
		}
		return nil
	}
	r.factories.Store(name, factory)
	return nil
}

// Lookup creates the runtime registered under name.
func (r *Registry) Lookup(name string) (ports.ScriptRuntime, error) {
	v, ok := r.factories.Load(name)
	if !ok {
		return nil, fmt.Errorf("unknown runtime %q (available: %v)", name, r.List())
	}
	return v.(Factory)(), nil
}

// Has reports whether a runtime is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories.Load(name)
	return ok
}

// List returns all registered runtime names, sorted.
func (r *Registry) List() []string {
	var keys []string
	r.factories.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	sort.Strings(keys)
	return keys
}
