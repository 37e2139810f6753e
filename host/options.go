package host

import (
	"log/slog"

	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/policy"
	"github.com/reglet-dev/scriptbox/domain/ports"
)

// DefaultTransferSlot is the global the registry is staged under during bootstrap.
const DefaultTransferSlot = "__scriptbox"

// binderConfig holds configuration for the Binder.
type binderConfig struct {
	mangler          naming.Mangler
	handler          ports.CollisionHandler
	logger           *slog.Logger
	slot             string
	reserved         []string
	reservedPatterns []string
	policy           policy.CollisionPolicy
}

func defaultBinderConfig() binderConfig {
	return binderConfig{
		mangler: naming.DefaultMangler,
		slot:    DefaultTransferSlot,
		policy:  policy.Error,
	}
}

// Option defines a functional option for configuring the Binder.
type Option func(*binderConfig)

// WithPolicy sets how bindings named after reserved words are handled.
// Default is policy.Error.
func WithPolicy(p policy.CollisionPolicy) Option {
	return func(c *binderConfig) {
		c.policy = p
	}
}

// WithMangler sets the rename rule used under policy.Mangle.
func WithMangler(m naming.Mangler) Option {
	return func(c *binderConfig) {
		if m != nil {
			c.mangler = m
		}
	}
}

// WithTransferSlot sets the name of the temporary global the registry is
// staged under. It must be a valid identifier and is always treated as reserved.
func WithTransferSlot(slot string) Option {
	return func(c *binderConfig) {
		c.slot = slot
	}
}

// WithReserved adds words to the runtime's reserved set.
func WithReserved(words ...string) Option {
	return func(c *binderConfig) {
		c.reserved = append(c.reserved, words...)
	}
}

// WithReservedPatterns adds glob patterns (doublestar syntax) to the
// runtime's reserved set.
func WithReservedPatterns(patterns ...string) Option {
	return func(c *binderConfig) {
		c.reservedPatterns = append(c.reservedPatterns, patterns...)
	}
}

// WithLogger sets the logger for bind diagnostics and, unless
// WithCollisionHandler is given, for mangle and skip notices.
func WithLogger(logger *slog.Logger) Option {
	return func(c *binderConfig) {
		c.logger = logger
	}
}

// WithCollisionHandler sets the handler notified about mangled and skipped names.
func WithCollisionHandler(h ports.CollisionHandler) Option {
	return func(c *binderConfig) {
		c.handler = h
	}
}
