package scriptbox_test

import (
	"context"
	"fmt"

	"github.com/reglet-dev/scriptbox"
	"github.com/reglet-dev/scriptbox/domain/policy"
	"github.com/reglet-dev/scriptbox/infrastructure/javascript"
	"github.com/reglet-dev/scriptbox/infrastructure/lua"
)

func Example() {
	ctx := context.Background()

	box := scriptbox.Create().
		Set("greet").ToFunc1(func(name any) any { return fmt.Sprintf("hello %v", name) }).
		Set("version").ToValue("1.0")

	engine, err := box.Build(ctx, javascript.NewRuntime())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer engine.Close()

	v, err := engine.Eval(ctx, `greet("world") + " from " + version`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: hello world from 1.0
}

func ExampleBox_Plan() {
	box := scriptbox.Create().
		Set("end").ToValue(true).
		Set("count").ToValue(3)

	plan, err := box.Plan(lua.NewRuntime(),
		scriptbox.WithPolicy(scriptbox.Mangle),
		scriptbox.WithCollisionHandler(&policy.NopCollisionHandler{}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(plan.Bootstrap)
	// Output:
	// end_ = __scriptbox["end"]
	// count = __scriptbox["count"]
	// __scriptbox = nil
}

func ExampleBox_Build_reserved() {
	box := scriptbox.Create().Set("class").ToValue(1)

	_, err := box.Build(context.Background(), javascript.NewRuntime())
	fmt.Println(err)
	// Output: 'class' is a reserved keyword in javascript
}
