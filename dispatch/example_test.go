package dispatch_test

import (
	"context"
	"fmt"

	"github.com/hostlens-dev/hostlens/dispatch"
)

func Example() {
	d := dispatch.New(dispatch.Config{})

	_ = d.Register(dispatch.ToolSpec{
		Name:        "greet",
		Description: "Greets a user by name",
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"name": {Type: dispatch.TypeString},
			},
			Required: []string{"name"},
		},
	}, func(_ context.Context, args map[string]any) (any, error) {
		name, _ := args["name"].(string)
		return "Hello, " + name + "!", nil
	})

	out, err := d.Dispatch(context.Background(), dispatch.Invocation{
		Tool: "greet",
		Args: map[string]any{"name": "World"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Text)
	// Output: Hello, World!
}

func Example_validation() {
	d := dispatch.New(dispatch.Config{})

	_ = d.Register(dispatch.ToolSpec{
		Name: "greet",
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"name": {Type: dispatch.TypeString},
			},
			Required: []string{"name"},
		},
	}, func(_ context.Context, args map[string]any) (any, error) {
		return args["name"], nil
	})

	_, err := d.Dispatch(context.Background(), dispatch.Invocation{
		Tool: "greet",
		Args: map[string]any{},
	})
	fmt.Println(err)
	// Output: greet: missing required property "name"
}
