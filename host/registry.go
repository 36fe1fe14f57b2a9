package host

import (
	"errors"
	"fmt"
	"sync"
)

// ErrProviderExists is returned when registering a duplicate provider.
var ErrProviderExists = errors.New("provider already registered")

// Provider is one source of host symbols. Several providers may feed the
// same host view; an Aggregate combines them in registration order.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: unresolvable names are reported through return values, never errors.
type Provider interface {
	// Name returns the unique instance name for this provider.
	Name() string

	// Enabled reports whether this provider currently contributes symbols.
	Enabled() bool

	// Symbols enumerates the provider's symbol names in its native order.
	Symbols() []string

	// KindOf returns the kind of the named symbol, or false when absent.
	KindOf(name string) (Kind, bool)

	// Resolve maps a symbol name and kind to a definition location.
	Resolve(name string, kind Kind) (Location, bool)
}

// ProviderRegistry manages provider instances. Unlike a plain map it keeps
// registration order, which defines the aggregate's native enumeration
// order.
type ProviderRegistry struct {
	mu        sync.RWMutex
	order     []string
	providers map[string]Provider
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{providers: make(map[string]Provider)}
}

// Register adds a provider to the registry.
func (r *ProviderRegistry) Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("provider is nil")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("provider name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("%w: %s", ErrProviderExists, name)
	}
	r.providers[name] = p
	r.order = append(r.order, name)
	return nil
}

// Unregister removes a provider from the registry.
func (r *ProviderRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; !exists {
		return
	}
	delete(r.providers, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get retrieves a provider by name.
func (r *ProviderRegistry) Get(name string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	return p, ok
}

// List returns all providers in registration order.
func (r *ProviderRegistry) List() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Provider, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.providers[name])
	}
	return out
}

// ListEnabled returns enabled providers only, in registration order.
func (r *ProviderRegistry) ListEnabled() []Provider {
	all := r.List()
	out := make([]Provider, 0, len(all))
	for _, p := range all {
		if p.Enabled() {
			out = append(out, p)
		}
	}
	return out
}

// Names returns provider names in registration order.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
