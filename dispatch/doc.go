// Package dispatch routes named tool invocations to handlers.
//
// A Dispatcher holds a registry of tool specifications. Each invocation
// is validated against the tool's parameter schema before the handler
// runs, gated through an optional confirmer for side-effecting tools,
// and executed either synchronously or as a correlated asynchronous job
// whose result is delivered through a completer.
package dispatch
