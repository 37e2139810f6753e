package host

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/scriptbox/application/bootstrap"
	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/policy"
	"github.com/reglet-dev/scriptbox/domain/ports"
)

// Source supplies the bindings to stage. *hostfuncs.Registry implements it.
type Source interface {
	Entries() ([]ports.HostEntry, error)
}

// Plan is the outcome of resolving and generating, before any engine exists.
type Plan struct {
	// Resolution records which names were kept, mangled or skipped.
	Resolution *policy.Resolution

	// Runtime is the target runtime name.
	Runtime string

	// Slot is the transfer slot the bootstrap reads from.
	Slot string

	// Bootstrap is the generated source.
	Bootstrap string

	entries []ports.HostEntry
}

// Binder builds populated engines. It holds no per-bind state and is safe
// for concurrent use.
type Binder struct {
	config binderConfig
}

// NewBinder creates a Binder with the given options.
func NewBinder(opts ...Option) *Binder {
	cfg := defaultBinderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Binder{config: cfg}
}

func (b *Binder) logger() *slog.Logger {
	if b.config.logger != nil {
		return b.config.logger
	}
	return slog.Default()
}

// Reserved returns the effective reserved set for rt: its own words plus the
// transfer slot and any words or patterns added through options.
func (b *Binder) Reserved(rt ports.ScriptRuntime) naming.ReservedWordSet {
	return rt.ReservedWords().
		With(b.config.slot).
		With(b.config.reserved...).
		WithPatterns(b.config.reservedPatterns...)
}

// Plan resolves the source's bindings against rt and generates the bootstrap
// source without creating an engine.
func (b *Binder) Plan(src Source, rt ports.ScriptRuntime) (*Plan, error) {
	entries, err := src.Entries()
	if err != nil {
		return nil, err
	}

	bindings := make([]entities.Binding, len(entries))
	for i, e := range entries {
		bindings[i] = e.Binding
	}

	handler := b.config.handler
	if handler == nil {
		handler = &policy.SlogCollisionHandler{Logger: b.logger()}
	}
	resolver := policy.NewResolver(
		policy.WithMangler(b.config.mangler),
		policy.WithCollisionHandler(handler),
	)

	res, err := resolver.Resolve(rt.Name(), bindings, b.Reserved(rt), b.config.policy)
	if err != nil {
		return nil, err
	}
	if checker, ok := rt.(ports.IdentifierChecker); ok {
		for _, rb := range res.Bindings {
			if !checker.IsIdentifier(rb.ScriptName) {
				return nil, &errors.InvalidIdentifierError{
					Name:   rb.ScriptName,
					Reason: fmt.Sprintf("not a %s variable name", rt.Name()),
				}
			}
		}
	}

	gen, err := bootstrap.NewGenerator(rt.Dialect())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare %s bootstrap: %w", rt.Name(), err)
	}
	source, err := gen.Generate(b.config.slot, res.Bindings)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Resolution: res,
		Runtime:    rt.Name(),
		Slot:       b.config.slot,
		Bootstrap:  source,
		entries:    entries,
	}, nil
}

// Bind creates a fresh engine from rt with every binding of src declared as a
// script variable. Registration and resolution errors are reported before any
// engine is created. A bootstrap failure closes the engine and returns a
// *errors.ScriptExecutionError carrying the generated source.
func (b *Binder) Bind(ctx context.Context, src Source, rt ports.ScriptRuntime) (ports.Engine, error) {
	plan, err := b.Plan(src, rt)
	if err != nil {
		return nil, err
	}

	engine, err := rt.NewEngine(ctx)
	if err != nil {
		var ece *errors.EngineCreationError
		if stdErrors.As(err, &ece) {
			return nil, err
		}
		return nil, &errors.EngineCreationError{Runtime: rt.Name(), Err: err}
	}

	if err := engine.Stage(plan.Slot, plan.entries); err != nil {
		_ = engine.Close()
		return nil, &errors.EngineCreationError{Runtime: rt.Name(), Err: fmt.Errorf("stage %s: %w", plan.Slot, err)}
	}

	if _, err := engine.Eval(ctx, plan.Bootstrap); err != nil {
		_ = engine.Close()
		scriptErr := &errors.ScriptExecutionError{Runtime: rt.Name(), Source: plan.Bootstrap, Err: err}
		b.logger().ErrorContext(ctx, "bootstrap evaluation failed",
			"runtime", rt.Name(),
			"error", err,
			"source", scriptErr.Excerpt(5))
		return nil, scriptErr
	}

	b.logger().DebugContext(ctx, "bindings bound",
		"runtime", rt.Name(),
		"bound", len(plan.Resolution.Bindings),
		"mangled", len(plan.Resolution.Mangled),
		"skipped", len(plan.Resolution.Skipped))

	return engine, nil
}
