package hostfuncs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/reglet-dev/scriptbox/domain/entities"
	sblog "github.com/reglet-dev/scriptbox/log"
)

// HostFuncBundle is a pre-configured set of related host bindings.
// Bundles allow registering multiple bindings at once for common use cases.
type HostFuncBundle interface {
	// Bindings returns the bundle's bindings in registration order.
	Bindings() []entities.Binding
}

// staticBundle implements HostFuncBundle with a fixed set of bindings.
type staticBundle struct {
	bindings []entities.Binding
}

func (b *staticBundle) Bindings() []entities.Binding {
	return b.bindings
}

// ConsoleBundle returns a bundle writing script output to w:
// print(value) and printf(format, args).
//
// printf accepts its arguments as a single array, or a single non-array value.
func ConsoleBundle(w io.Writer) HostFuncBundle {
	if w == nil {
		w = os.Stdout
	}
	return &staticBundle{
		bindings: []entities.Binding{
			{Name: "print", Kind: entities.KindVoid1, Value: entities.Void1(func(a any) {
				_, _ = fmt.Fprintln(w, display(a))
			})},
			{Name: "printf", Kind: entities.KindVoid2, Value: entities.Void2(func(format, args any) {
				_, _ = fmt.Fprintf(w, display(format), spread(args)...)
			})},
		},
	}
}

// LogBundle returns a bundle forwarding script log calls to logger:
// logDebug, logInfo, logWarn and logError, each taking a message and an
// optional object of fields.
func LogBundle(logger *slog.Logger) HostFuncBundle {
	if logger == nil {
		logger = slog.Default()
	}
	logAt := func(level slog.Level) entities.Void2 {
		return func(msg, fields any) {
			logger.LogAttrs(context.Background(), level, display(msg), sblog.AttrsFromScript(fields)...)
		}
	}
	return &staticBundle{
		bindings: []entities.Binding{
			{Name: "logDebug", Kind: entities.KindVoid2, Value: logAt(slog.LevelDebug)},
			{Name: "logInfo", Kind: entities.KindVoid2, Value: logAt(slog.LevelInfo)},
			{Name: "logWarn", Kind: entities.KindVoid2, Value: logAt(slog.LevelWarn)},
			{Name: "logError", Kind: entities.KindVoid2, Value: logAt(slog.LevelError)},
		},
	}
}

// EnvBundle returns a bundle exposing env(name), which returns the value of
// an allowed environment variable, or nil when it is unset or not in allow.
func EnvBundle(allow []string) HostFuncBundle {
	allowed := slices.Clone(allow)
	return &staticBundle{
		bindings: []entities.Binding{
			{Name: "env", Kind: entities.KindFunc1, Value: entities.Func1(func(name any) any {
				key, ok := name.(string)
				if !ok || !slices.Contains(allowed, key) {
					return nil
				}
				if v, set := os.LookupEnv(key); set {
					return v
				}
				return nil
			})},
		},
	}
}

// compositeBundle combines multiple bundles into one.
type compositeBundle struct {
	bundles []HostFuncBundle
}

func (b *compositeBundle) Bindings() []entities.Binding {
	var result []entities.Binding
	for _, bundle := range b.bundles {
		result = append(result, bundle.Bindings()...)
	}
	return result
}

// Compose returns a bundle containing the bindings of all given bundles.
// Later bundles win when names repeat.
func Compose(bundles ...HostFuncBundle) HostFuncBundle {
	return &compositeBundle{bundles: bundles}
}

func display(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

func spread(v any) []any {
	switch args := v.(type) {
	case nil:
		return nil
	case []any:
		return args
	default:
		return []any{args}
	}
}
