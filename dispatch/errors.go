package dispatch

import (
	"errors"
	"fmt"
)

// Sentinel errors for error classification.
var (
	// ErrConfiguration indicates an invalid or incomplete configuration.
	ErrConfiguration = errors.New("configuration error")

	// ErrToolExists indicates a tool name was registered twice.
	ErrToolExists = errors.New("tool already registered")
)

// ErrorKind classifies a dispatch failure for the calling agent.
type ErrorKind string

const (
	// KindValidation covers unknown tools and arguments rejected by the
	// parameter schema. The handler was never invoked.
	KindValidation ErrorKind = "validation"

	// KindRuntime covers faults raised by the handler itself, including
	// recovered panics.
	KindRuntime ErrorKind = "runtime"

	// KindUnsupported indicates the operation cannot be performed on the
	// given input, such as a source language with no extraction support.
	KindUnsupported ErrorKind = "unsupported"

	// KindDenied indicates a gated tool was refused confirmation.
	KindDenied ErrorKind = "denied"
)

// Error is a classified dispatch failure. Handlers may return an *Error
// directly to choose their own kind; anything else they return is
// normalized to KindRuntime.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Tool is the invoked tool name, when known.
	Tool string

	// Message describes the failure.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error returns the failure message prefixed with the tool name.
func (e *Error) Error() string {
	if e.Tool != "" {
		return fmt.Sprintf("%s: %s", e.Tool, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so call sites
// can match on kind without a sentinel per kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// validationError builds a KindValidation failure for tool.
func validationError(tool, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Tool: tool, Message: fmt.Sprintf(format, args...)}
}

// normalizeError coerces a handler error into an *Error, preserving a
// kind the handler chose itself.
func normalizeError(tool string, err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		if de.Tool == "" {
			de.Tool = tool
		}
		return de
	}
	return &Error{Kind: KindRuntime, Tool: tool, Message: err.Error(), Err: err}
}
