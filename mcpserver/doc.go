// Package mcpserver exposes a dispatcher's tools over the Model Context
// Protocol. It owns the harness duties the dispatcher delegates: the
// transport, correlation ids for async invocations, and routing of
// async completions back to the awaiting protocol request.
package mcpserver
