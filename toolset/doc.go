// Package toolset declares the introspection tools and binds them to a
// dispatcher. Each tool wraps one read-only capability of the host:
// symbol queries, completion, definition extraction, and manual
// navigation, plus the single confirmation-gated evaluation tool.
package toolset
