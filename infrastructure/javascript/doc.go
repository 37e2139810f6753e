// Package javascript provides the goja-backed JavaScript script runtime.
//
// The runtime exposes host bindings as global variables. Host callables are
// wrapped as native goja functions that export their arguments to plain Go
// values, call through the registry's invoker, and convert the result back.
// An error returned by the invoker is thrown into the script as a GoError.
//
// Example:
//
//	rt := javascript.NewRuntime(javascript.WithFieldNameMapper("json"))
//	engine, err := binder.Bind(ctx, registry, rt)
//	if err != nil {
//	    return err
//	}
//	defer engine.Close()
//
//	v, err := engine.Eval(ctx, `greet("x", "y")`)
package javascript
