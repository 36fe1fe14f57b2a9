package dispatch

// Logger is an optional interface for observability during dispatch.
// Implementations can log invocations, gating decisions, and async
// completions.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
// - Ownership: format/args are read-only.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}

// nopLogger discards all messages. Used when no Logger is configured.
type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}
