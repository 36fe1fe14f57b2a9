package dispatch

import (
	"context"
	"sync"
)

// mockConfirmer records gating consultations and returns a fixed
// verdict.
type mockConfirmer struct {
	approve bool
	err     error

	mu    sync.Mutex
	calls []string // tool names in consultation order
}

func (m *mockConfirmer) Confirm(_ context.Context, spec ToolSpec, _ map[string]any) (bool, error) {
	m.mu.Lock()
	m.calls = append(m.calls, spec.Name)
	m.mu.Unlock()
	return m.approve, m.err
}

func (m *mockConfirmer) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockCompleter collects completions and signals each delivery.
type mockCompleter struct {
	mu        sync.Mutex
	delivered []Completion
	signal    chan Completion
}

func newMockCompleter() *mockCompleter {
	return &mockCompleter{signal: make(chan Completion, 8)}
}

func (m *mockCompleter) Complete(c Completion) {
	m.mu.Lock()
	m.delivered = append(m.delivered, c)
	m.mu.Unlock()
	m.signal <- c
}

func (m *mockCompleter) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.delivered)
}

// countingHandler tracks invocations of a bound operation.
type countingHandler struct {
	mu     sync.Mutex
	calls  int
	result any
	err    error
}

func (h *countingHandler) handle(_ context.Context, _ map[string]any) (any, error) {
	h.mu.Lock()
	h.calls++
	h.mu.Unlock()
	return h.result, h.err
}

func (h *countingHandler) callCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

// testLogger satisfies Logger for configuration tests.
type testLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *testLogger) Logf(format string, _ ...any) {
	l.mu.Lock()
	l.messages = append(l.messages, format)
	l.mu.Unlock()
}
