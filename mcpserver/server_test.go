package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hostlens-dev/hostlens/dispatch"
)

func echoDispatcher(t *testing.T, cfg dispatch.Config) *dispatch.Dispatcher {
	t.Helper()
	d := dispatch.New(cfg)
	err := d.Register(dispatch.ToolSpec{
		Name:        "echo",
		Description: "Return the message argument.",
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"message": {Type: dispatch.TypeString},
			},
			Required: []string{"message"},
		},
	}, func(_ context.Context, args map[string]any) (any, error) {
		return args["message"], nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("result has %d content blocks, want 1", len(res.Content))
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want *mcp.TextContent", res.Content[0])
	}
	return text.Text
}

func TestNew_RequiresDispatcher(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("New error = %v, want ErrConfiguration", err)
	}
}

func TestServer_Call_Sync(t *testing.T) {
	d := echoDispatcher(t, dispatch.Config{})
	s, err := New(Config{Dispatcher: d})
	if err != nil {
		t.Fatal(err)
	}
	spec, _ := d.Spec("echo")

	res, err := s.call(context.Background(), spec, json.RawMessage(`{"message":"hello"}`))
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != "hello" {
		t.Errorf("result = %q", got)
	}
}

func TestServer_Call_ValidationErrorResult(t *testing.T) {
	d := echoDispatcher(t, dispatch.Config{})
	s, err := New(Config{Dispatcher: d})
	if err != nil {
		t.Fatal(err)
	}
	spec, _ := d.Spec("echo")

	res, err := s.call(context.Background(), spec, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("call returned a protocol fault: %v", err)
	}
	if !res.IsError {
		t.Fatal("validation failure not marked as error result")
	}
	got := resultText(t, res)
	if !strings.HasPrefix(got, "validation:") || !strings.Contains(got, "message") {
		t.Errorf("error text = %q", got)
	}
}

func TestServer_Call_MalformedArguments(t *testing.T) {
	d := echoDispatcher(t, dispatch.Config{})
	s, err := New(Config{Dispatcher: d})
	if err != nil {
		t.Fatal(err)
	}
	spec, _ := d.Spec("echo")

	res, err := s.call(context.Background(), spec, json.RawMessage(`not json`))
	if err != nil {
		t.Fatalf("call returned a protocol fault: %v", err)
	}
	if !res.IsError {
		t.Error("malformed arguments not marked as error result")
	}
}

func TestServer_Call_AsyncAwaited(t *testing.T) {
	router := NewRouter()
	d := dispatch.New(dispatch.Config{Completer: router})
	release := make(chan struct{})
	err := d.Register(dispatch.ToolSpec{Name: "bg", Async: true}, func(_ context.Context, _ map[string]any) (any, error) {
		<-release
		return "eventual", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Config{Dispatcher: d, Router: router})
	if err != nil {
		t.Fatal(err)
	}
	spec, _ := d.Spec("bg")

	done := make(chan string, 1)
	go func() {
		res, err := s.call(context.Background(), spec, nil)
		if err != nil {
			done <- "fault: " + err.Error()
			return
		}
		done <- resultText(t, res)
	}()

	select {
	case got := <-done:
		t.Fatalf("call returned %q before the operation completed", got)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case got := <-done:
		if got != "eventual" {
			t.Errorf("awaited result = %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("call never returned")
	}
}

func TestServer_Call_AsyncCancelled(t *testing.T) {
	router := NewRouter()
	d := dispatch.New(dispatch.Config{Completer: router})
	release := make(chan struct{})
	err := d.Register(dispatch.ToolSpec{Name: "bg", Async: true}, func(_ context.Context, _ map[string]any) (any, error) {
		<-release
		return "late", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Config{Dispatcher: d, Router: router})
	if err != nil {
		t.Fatal(err)
	}
	spec, _ := d.Spec("bg")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	defer close(release)

	if _, err := s.call(ctx, spec, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled call error = %v, want context.Canceled", err)
	}
}

func TestRouter_DropsUnexpected(t *testing.T) {
	router := NewRouter()
	// Nothing is waiting; must not block or panic.
	router.Complete(dispatch.Completion{CorrelationID: "orphan"})

	ch, cancel := router.Expect("id-1")
	defer cancel()
	router.Complete(dispatch.Completion{CorrelationID: "id-1", Text: "ok"})

	select {
	case c := <-ch:
		if c.Text != "ok" {
			t.Errorf("Completion = %+v", c)
		}
	default:
		t.Fatal("expected completion not delivered")
	}
}
