package dispatch

import "context"

// ToolSpec is the static declaration of an invocable operation. Specs
// are created once at startup and immutable afterward.
type ToolSpec struct {
	// Name uniquely identifies the tool within one dispatcher.
	Name string

	// Description is natural-language text consumed only by the calling
	// agent.
	Description string

	// Category groups related tools; informational only.
	Category string

	// Params declares the argument schema. Its zero value accepts an
	// empty argument mapping.
	Params Schema

	// Confirm marks the tool as requiring explicit operator approval
	// before it executes.
	Confirm bool

	// Async marks the tool as returning control immediately and
	// delivering its result through the dispatcher's completer.
	Async bool
}

// Invocation is one request to run a tool. Created per request and
// discarded once the result is delivered.
type Invocation struct {
	// Tool names the tool to run.
	Tool string

	// Args is the decoded argument mapping.
	Args map[string]any

	// CorrelationID links an async invocation to its completion. When
	// empty, the dispatcher assigns one.
	CorrelationID string
}

// Handler is the bound operation of one tool. It receives the validated
// argument mapping and returns a result value that Encode can render,
// or an error. Returning an *Error selects the failure kind; any other
// error is normalized to KindRuntime.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Outcome is what Dispatch returns for an accepted invocation.
type Outcome struct {
	// Text is the encoded result of a synchronous tool. Empty for async
	// tools, whose result arrives through the completer.
	Text string

	// Async reports that the invocation was accepted for background
	// execution.
	Async bool

	// CorrelationID identifies an async invocation's eventual
	// completion. Empty for synchronous tools.
	CorrelationID string
}

// Completion is the out-of-band result of one async invocation.
type Completion struct {
	// CorrelationID is the id of the originating invocation.
	CorrelationID string

	// Tool names the tool that ran.
	Tool string

	// Text is the encoded result when Err is nil.
	Text string

	// Err is the normalized failure, if the operation failed.
	Err *Error
}

// Completer receives async completions. Invoked exactly once per
// accepted async invocation, from the invocation's own goroutine.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Ownership: the Completion is caller-owned after delivery.
type Completer interface {
	// Complete delivers one async result.
	Complete(c Completion)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(c Completion)

// Complete calls f.
func (f CompleterFunc) Complete(c Completion) { f(c) }

// Confirmer obtains operator approval for gated tools. The approval UI
// belongs to the harness; the dispatcher only consults the verdict.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation while awaiting the operator.
// - Errors: a non-nil error means approval could not be obtained and is
//   treated as a denial.
type Confirmer interface {
	// Confirm reports whether the operator approved running spec with
	// the given arguments.
	Confirm(ctx context.Context, spec ToolSpec, args map[string]any) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, spec ToolSpec, args map[string]any) (bool, error)

// Confirm calls f.
func (f ConfirmerFunc) Confirm(ctx context.Context, spec ToolSpec, args map[string]any) (bool, error) {
	return f(ctx, spec, args)
}
