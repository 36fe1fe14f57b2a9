package symbols

import "github.com/hostlens-dev/hostlens/host"

// Adapter wraps a host registry with the query surface the toolset needs.
//
// Contract:
// - Concurrency: safe for concurrent use when the underlying registry is.
// - Errors: unresolvable names return negative answers, never errors.
type Adapter struct {
	registry host.Registry
}

// NewAdapter creates an adapter over the given registry.
func NewAdapter(registry host.Registry) *Adapter {
	return &Adapter{registry: registry}
}

// Exists reports whether the named symbol is interned in the host.
func (a *Adapter) Exists(name string) bool {
	return a.registry.Exists(name)
}

// KindOf returns the kind of the named symbol. The second return is false
// when the symbol is absent; callers surface that as an empty result.
func (a *Adapter) KindOf(name string) (host.Kind, bool) {
	return a.registry.KindOf(name)
}
