package hostfuncs

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/reglet-dev/scriptbox/domain/entities"
)

// Middleware wraps an Invoker to add cross-cutting behavior.
// Middleware executes in FIFO order (first registered wraps first, onion model).
//
// Example usage:
//
//	countingMiddleware := func(next entities.Invoker) entities.Invoker {
//	    return func(ctx context.Context, args []any) (any, error) {
//	        calls++
//	        return next(ctx, args)
//	    }
//	}
type Middleware func(next entities.Invoker) entities.Invoker

func functionName(ctx context.Context) string {
	if hc, ok := ctx.(HostContext); ok {
		return hc.FunctionName()
	}
	return "unknown"
}

// PanicRecoveryMiddleware returns a middleware that catches panics raised by
// host functions and returns them as *PanicError instead of crashing the host.
func PanicRecoveryMiddleware() Middleware {
	return func(next entities.Invoker) entities.Invoker {
		return func(ctx context.Context, args []any) (result any, err error) {
			defer func() {
				if r := recover(); r != nil {
					result = nil
					err = &PanicError{Function: functionName(ctx), Value: r, Stack: debug.Stack()}
				}
			}()
			return next(ctx, args)
		}
	}
}

// LoggingMiddleware returns a middleware that logs host function invocations
// at debug level and failures at warn level. A nil logger uses slog.Default().
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next entities.Invoker) entities.Invoker {
		return func(ctx context.Context, args []any) (any, error) {
			funcName := functionName(ctx)
			start := time.Now()
			logger.DebugContext(ctx, "invoking host function", "function", funcName, "args", len(args))

			result, err := next(ctx, args)
			if err != nil {
				logger.WarnContext(ctx, "host function failed", "function", funcName, "error", err)
				return result, err
			}
			logger.DebugContext(ctx, "host function completed", "function", funcName, "duration", time.Since(start))
			return result, nil
		}
	}
}
