// Package host defines the collaborator interfaces and shared value types
// for the live interpreted host environment that hostlens introspects.
//
// The host's symbol table, definition-finding facility, source buffers, and
// evaluation primitive all live outside this module. hostlens components
// never read ambient global state; they receive these capabilities at
// construction so tests can substitute deterministic fixtures.
//
// # Architecture
//
// The package defines four collaborator interfaces:
//
//   - [Registry]: pure existence/kind queries against the symbol table.
//   - [Resolver]: resolves a symbol and kind to a concrete source location.
//   - [Sources]: read access to the text of a source unit.
//   - [Evaluator]: the opaque, explicitly confirmed evaluation primitive.
//
// A [ProviderRegistry] and [Aggregate] combine several [Provider]
// implementations into a single host view, preserving each provider's
// native enumeration order.
//
// # Liveness
//
// Host state is live and may change between calls. Nothing in this package
// caches query results, and callers must not assume snapshot isolation:
// two consecutive queries may observe different symbol tables.
package host
