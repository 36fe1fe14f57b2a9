package host

// Aggregate combines symbols from multiple providers into a single host
// view. It implements Registry, Resolver, and Sources.
//
// Enumeration order is the registry's registration order, then each
// provider's native order. When several providers intern the same name,
// the earliest-registered provider wins.
type Aggregate struct {
	registry *ProviderRegistry
}

// NewAggregate creates an aggregate over the given provider registry.
func NewAggregate(registry *ProviderRegistry) *Aggregate {
	return &Aggregate{registry: registry}
}

// Symbols enumerates all symbols from enabled providers. A name interned
// by several providers appears once, at its first occurrence.
func (a *Aggregate) Symbols() []string {
	var all []string
	seen := make(map[string]bool)
	for _, p := range a.registry.ListEnabled() {
		for _, name := range p.Symbols() {
			if seen[name] {
				continue
			}
			seen[name] = true
			all = append(all, name)
		}
	}
	return all
}

// Exists reports whether any enabled provider interns the name.
func (a *Aggregate) Exists(name string) bool {
	_, ok := a.KindOf(name)
	return ok
}

// KindOf returns the kind from the first enabled provider that knows the
// name.
func (a *Aggregate) KindOf(name string) (Kind, bool) {
	for _, p := range a.registry.ListEnabled() {
		if k, ok := p.KindOf(name); ok {
			return k, true
		}
	}
	return KindUnknown, false
}

// Resolve returns the location from the first enabled provider that can
// resolve the definition.
func (a *Aggregate) Resolve(name string, kind Kind) (Location, bool) {
	for _, p := range a.registry.ListEnabled() {
		if loc, ok := p.Resolve(name, kind); ok {
			return loc, true
		}
	}
	return Location{}, false
}

// Unit returns source text from the first enabled provider that also
// implements Sources and knows the unit.
func (a *Aggregate) Unit(id string) (string, error) {
	for _, p := range a.registry.ListEnabled() {
		src, ok := p.(Sources)
		if !ok {
			continue
		}
		text, err := src.Unit(id)
		if err == nil {
			return text, nil
		}
	}
	return "", ErrUnitNotFound
}
