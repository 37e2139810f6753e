// Package scriptbox exposes Go values and functions to embedded script
// engines as ordinary script variables.
//
// Values are registered under validated names, resolved against the target
// runtime's reserved words according to a collision policy, and declared in
// a fresh engine by a generated bootstrap script:
//
//	box := scriptbox.Create().
//	    Set("greet").ToFunc1(func(name any) any { return "hello " + fmt.Sprint(name) }).
//	    Set("version").ToValue("1.0")
//
//	engine, err := box.Build(ctx, javascript.NewRuntime())
//	if err != nil {
//	    return err
//	}
//	defer engine.Close()
//
//	v, err := engine.Eval(ctx, `greet("world")`)
//
// Names that are reserved in the runtime fail the build by default; pass
// WithPolicy(Mangle) to rename them or WithPolicy(Skip) to drop them.
package scriptbox
