package mcpserver

import (
	"sync"

	"github.com/hostlens-dev/hostlens/dispatch"
)

// Router receives async completions and routes each to the protocol
// request awaiting its correlation id. It is the dispatch.Completer the
// server's dispatcher must be configured with.
type Router struct {
	pending sync.Map // map[string]chan dispatch.Completion
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Expect registers interest in one correlation id. The returned channel
// receives the completion; cancel releases the registration when the
// awaiting request gives up.
func (r *Router) Expect(correlationID string) (<-chan dispatch.Completion, func()) {
	ch := make(chan dispatch.Completion, 1)
	r.pending.Store(correlationID, ch)
	cancel := func() { r.pending.Delete(correlationID) }
	return ch, cancel
}

// Complete delivers one completion to its awaiting request. Completions
// nobody is waiting for are dropped; the awaiter may have given up.
func (r *Router) Complete(c dispatch.Completion) {
	v, ok := r.pending.Load(c.CorrelationID)
	if !ok {
		return
	}
	// Buffered; at most one completion per id.
	v.(chan dispatch.Completion) <- c
}
