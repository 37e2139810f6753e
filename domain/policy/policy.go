// Package policy resolves host binding names against a script runtime's
// reserved words, deciding for each binding whether it is exposed unchanged,
// renamed, dropped, or rejected.
package policy

import (
	"fmt"
	"strings"

	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/ports"
)

// CollisionPolicy governs bindings whose name is a reserved word.
type CollisionPolicy int

const (
	// Error fails the build with a ReservedIdentifierError.
	Error CollisionPolicy = iota
	// Mangle exposes the binding under a deterministically rewritten name.
	Mangle
	// Skip drops the binding from the script namespace.
	Skip
)

func (p CollisionPolicy) String() string {
	switch p {
	case Error:
		return "error"
	case Mangle:
		return "mangle"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseCollisionPolicy parses "error", "mangle" or "skip" (case-insensitive).
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return Error, nil
	case "mangle":
		return Mangle, nil
	case "skip":
		return Skip, nil
	default:
		return Error, fmt.Errorf("unknown collision policy %q", s)
	}
}

// Resolved pairs the name a binding is declared under in the script with the
// binding itself. Binding.Name stays the original registration name.
type Resolved struct {
	ScriptName string
	Binding    entities.Binding
}

// Resolution is the outcome of resolving a registry against reserved words.
type Resolution struct {
	// Bindings holds the exposed bindings, in registry order.
	Bindings []Resolved

	// Mangled maps original names to their rewritten script names.
	Mangled map[string]string

	// Skipped lists dropped names, in registry order.
	Skipped []string
}

// resolverConfig holds configuration for the Resolver.
type resolverConfig struct {
	mangler naming.Mangler
	handler ports.CollisionHandler
}

func defaultResolverConfig() resolverConfig {
	return resolverConfig{
		mangler: naming.DefaultMangler,
		handler: &SlogCollisionHandler{},
	}
}

// ResolverOption configures the Resolver.
type ResolverOption func(*resolverConfig)

// WithMangler sets the rename rule used under the Mangle policy.
func WithMangler(m naming.Mangler) ResolverOption {
	return func(c *resolverConfig) {
		if m != nil {
			c.mangler = m
		}
	}
}

// WithCollisionHandler sets the handler notified about mangles and skips.
func WithCollisionHandler(h ports.CollisionHandler) ResolverOption {
	return func(c *resolverConfig) {
		if h != nil {
			c.handler = h
		}
	}
}

// Resolver applies a CollisionPolicy. It is stateless and safe for concurrent use.
type Resolver struct {
	config resolverConfig
}

// NewResolver creates a Resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	cfg := defaultResolverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Resolver{config: cfg}
}

// Resolve walks bindings in order and decides the script name of each one.
//
// A mangled name must be a valid identifier, must not itself be reserved, and
// must not equal any other final script name, whether that name is an
// unreserved original or an earlier mangled name. Handlers are notified only
// when resolution succeeds.
func (r *Resolver) Resolve(runtime string, bindings []entities.Binding, reserved naming.ReservedWordSet, p CollisionPolicy) (*Resolution, error) {
	// owner of every script name that is kept unchanged
	taken := make(map[string]string, len(bindings))
	for _, b := range bindings {
		if !reserved.Contains(b.Name) {
			taken[b.Name] = b.Name
		}
	}

	res := &Resolution{
		Bindings: make([]Resolved, 0, len(bindings)),
		Mangled:  make(map[string]string),
	}

	for _, b := range bindings {
		if !reserved.Contains(b.Name) {
			res.Bindings = append(res.Bindings, Resolved{ScriptName: b.Name, Binding: b})
			continue
		}

		switch p {
		case Error:
			return nil, &errors.ReservedIdentifierError{Name: b.Name, Runtime: runtime}

		case Skip:
			res.Skipped = append(res.Skipped, b.Name)

		case Mangle:
			mangled := r.config.mangler.Mangle(b.Name)
			if !naming.IsValidIdentifier(mangled) || reserved.Contains(mangled) {
				return nil, &errors.MangleCollisionError{Original: b.Name, Mangled: mangled}
			}
			if owner, exists := taken[mangled]; exists {
				return nil, &errors.MangleCollisionError{Original: b.Name, Mangled: mangled, ConflictsWith: owner}
			}
			taken[mangled] = b.Name
			res.Mangled[b.Name] = mangled
			res.Bindings = append(res.Bindings, Resolved{ScriptName: mangled, Binding: b})

		default:
			return nil, fmt.Errorf("unhandled collision policy %s", p)
		}
	}

	for _, rb := range res.Bindings {
		if rb.ScriptName != rb.Binding.Name {
			r.config.handler.OnMangle(runtime, rb.Binding.Name, rb.ScriptName)
		}
	}
	for _, name := range res.Skipped {
		r.config.handler.OnSkip(runtime, name)
	}

	return res, nil
}

// Resolve resolves bindings with the default mangler and a no-op handler.
func Resolve(runtime string, bindings []entities.Binding, reserved naming.ReservedWordSet, p CollisionPolicy) (*Resolution, error) {
	return NewResolver(WithCollisionHandler(&NopCollisionHandler{})).Resolve(runtime, bindings, reserved, p)
}
