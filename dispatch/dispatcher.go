package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Config holds the dispatcher's collaborators.
type Config struct {
	// Confirmer approves gated tools. Optional; when nil, every gated
	// invocation is refused.
	Confirmer Confirmer

	// Completer receives async results. Optional; when nil, async tools
	// execute synchronously instead.
	Completer Completer

	// Logger receives dispatch events. Optional.
	Logger Logger
}

func (c *Config) applyDefaults() {
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
}

// Dispatcher routes invocations to registered tools.
//
// Contract:
// - Concurrency: safe for concurrent Dispatch calls once registration is
//   complete. Register is not safe concurrently with Dispatch.
// - Context: synchronous handlers receive the caller's context; async
//   handlers receive a context detached from the caller's cancellation.
// - Errors: all failures surface as *Error; raw handler faults and
//   panics are normalized, never propagated.
type Dispatcher struct {
	cfg   Config
	order []string
	tools map[string]registration
}

type registration struct {
	spec    ToolSpec
	handler Handler
}

// New creates a dispatcher with the given configuration.
func New(cfg Config) *Dispatcher {
	cfg.applyDefaults()
	return &Dispatcher{
		cfg:   cfg,
		tools: make(map[string]registration),
	}
}

// Register binds a handler to a tool spec. Tool names are unique;
// registering a name twice returns ErrToolExists.
func (d *Dispatcher) Register(spec ToolSpec, handler Handler) error {
	if spec.Name == "" {
		return fmt.Errorf("%w: tool name is empty", ErrConfiguration)
	}
	if handler == nil {
		return fmt.Errorf("%w: tool %q has no handler", ErrConfiguration, spec.Name)
	}
	if _, ok := d.tools[spec.Name]; ok {
		return fmt.Errorf("%w: %q", ErrToolExists, spec.Name)
	}
	d.tools[spec.Name] = registration{spec: spec, handler: handler}
	d.order = append(d.order, spec.Name)
	return nil
}

// Specs returns the registered tool specs in registration order.
func (d *Dispatcher) Specs() []ToolSpec {
	specs := make([]ToolSpec, 0, len(d.order))
	for _, name := range d.order {
		specs = append(specs, d.tools[name].spec)
	}
	return specs
}

// Spec returns the spec registered under name.
func (d *Dispatcher) Spec(name string) (ToolSpec, bool) {
	reg, ok := d.tools[name]
	return reg.spec, ok
}

// Dispatch validates and executes one invocation. Arguments are checked
// against the tool's schema before the handler runs; a rejected
// invocation makes zero calls into the handler. Async tools return an
// Outcome carrying their correlation id and deliver their result through
// the configured completer.
func (d *Dispatcher) Dispatch(ctx context.Context, inv Invocation) (Outcome, error) {
	reg, ok := d.tools[inv.Tool]
	if !ok {
		return Outcome{}, validationError(inv.Tool, "unknown tool %q", inv.Tool)
	}
	args := inv.Args
	if args == nil {
		args = map[string]any{}
	}
	if err := reg.spec.Params.Validate(args); err != nil {
		return Outcome{}, &Error{Kind: KindValidation, Tool: inv.Tool, Message: err.Error(), Err: err}
	}

	if reg.spec.Confirm {
		if err := d.confirm(ctx, reg.spec, args); err != nil {
			return Outcome{}, err
		}
	}

	if reg.spec.Async && d.cfg.Completer != nil {
		return d.dispatchAsync(ctx, reg, args, inv.CorrelationID), nil
	}

	text, derr := d.runTool(ctx, reg, args)
	if derr != nil {
		return Outcome{}, derr
	}
	return Outcome{Text: text}, nil
}

func (d *Dispatcher) confirm(ctx context.Context, spec ToolSpec, args map[string]any) error {
	if d.cfg.Confirmer == nil {
		d.cfg.Logger.Logf("refused gated tool %q: no confirmer configured", spec.Name)
		return &Error{Kind: KindDenied, Tool: spec.Name, Message: "confirmation required but no confirmer is configured"}
	}
	approved, err := d.cfg.Confirmer.Confirm(ctx, spec, args)
	if err != nil {
		return &Error{Kind: KindDenied, Tool: spec.Name, Message: fmt.Sprintf("confirmation failed: %v", err), Err: err}
	}
	if !approved {
		d.cfg.Logger.Logf("operator denied tool %q", spec.Name)
		return &Error{Kind: KindDenied, Tool: spec.Name, Message: "operator denied the invocation"}
	}
	return nil
}

// dispatchAsync starts the handler in its own goroutine and returns
// immediately. The completion is delivered exactly once, tagged with the
// invocation's correlation id.
func (d *Dispatcher) dispatchAsync(ctx context.Context, reg registration, args map[string]any, correlationID string) Outcome {
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	// The caller's turn ends as soon as Dispatch returns, so the
	// background work must not die with the request context.
	bg := context.WithoutCancel(ctx)
	go func() {
		text, derr := d.runTool(bg, reg, args)
		d.cfg.Completer.Complete(Completion{
			CorrelationID: correlationID,
			Tool:          reg.spec.Name,
			Text:          text,
			Err:           derr,
		})
		d.cfg.Logger.Logf("completed async tool %q (correlation %s)", reg.spec.Name, correlationID)
	}()
	return Outcome{Async: true, CorrelationID: correlationID}
}

// runTool executes the handler with panic recovery and encodes its
// result.
func (d *Dispatcher) runTool(ctx context.Context, reg registration, args map[string]any) (text string, derr *Error) {
	defer func() {
		if r := recover(); r != nil {
			derr = &Error{Kind: KindRuntime, Tool: reg.spec.Name, Message: fmt.Sprintf("panic: %v", r)}
		}
	}()
	value, err := reg.handler(ctx, args)
	if err != nil {
		return "", normalizeError(reg.spec.Name, err)
	}
	encoded, err := Encode(value)
	if err != nil {
		return "", &Error{Kind: KindRuntime, Tool: reg.spec.Name, Message: err.Error(), Err: err}
	}
	return encoded, nil
}
