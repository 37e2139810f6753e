// Package typed is a statically typed call surface over a script engine.
//
// Script runtimes export values in their own representation: goja yields
// int64 for integral numbers, gopher-lua yields float64 for every number. The
// helpers here convert those results to the requested Go type, coercing
// between numeric types when no precision is lost, and report anything else
// as a *TypeMismatchError.
//
//	n, err := typed.Eval[int](ctx, engine, "n * 2")
//	msg, err := typed.Call[string](ctx, engine, "greet", "x", "y")
package typed
