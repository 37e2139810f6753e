package ports

import (
	"context"

	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/reglet-dev/scriptbox/domain/naming"
)

// ScriptRuntime is the contract a script engine implementation must satisfy
// to receive host bindings.
type ScriptRuntime interface {
	// Name identifies the runtime (e.g. "javascript", "lua").
	Name() string

	// ReservedWords returns the names unsafe to declare as bare variables:
	// language keywords, built-in globals, and bridge artifacts.
	ReservedWords() naming.ReservedWordSet

	// Dialect returns the statement templates used for bootstrap source.
	Dialect() entities.Dialect

	// NewEngine creates a fresh, isolated engine instance.
	NewEngine(ctx context.Context) (Engine, error)
}

// IdentifierChecker is implemented by runtimes that accept fewer variable
// names than the host identifier rules. The binder rejects a script name the
// runtime refuses before any engine is created.
type IdentifierChecker interface {
	IsIdentifier(name string) bool
}

// HostEntry is one binding staged into an engine's transfer slot.
type HostEntry struct {
	Binding entities.Binding

	// Invoke calls the host callable; nil for scalars.
	Invoke entities.Invoker
}

// Engine is a live script engine handle.
//
// Contract:
//   - Concurrency: engines are single logical execution contexts and are not
//     safe for concurrent use.
//   - Context: Eval and Call must honor cancellation.
//   - Values: results are exported to plain Go values (string, bool, int64,
//     float64, map[string]any, []any, nil).
type Engine interface {
	// Runtime returns the name of the runtime that created the engine.
	Runtime() string

	// Stage sets the engine-scoped slot to a mapping from original
	// registration names to host values.
	Stage(slot string, entries []HostEntry) error

	// Eval evaluates src and returns the exported result.
	Eval(ctx context.Context, src string) (any, error)

	// Get returns the exported value of a global, and whether it is bound.
	Get(name string) (any, bool)

	// Call invokes a global script function by name.
	Call(ctx context.Context, name string, args ...any) (any, error)

	// Close releases engine resources.
	Close() error
}
