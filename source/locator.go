package source

import "github.com/hostlens-dev/hostlens/host"

// Locator resolves symbols to definition locations.
//
// Contract:
// - Errors: an unresolvable symbol is ok=false, never an error.
// - Liveness: locations are computed per call and must not be cached.
type Locator struct {
	resolver host.Resolver
}

// NewLocator creates a locator over the host's definition-finding facility.
func NewLocator(resolver host.Resolver) *Locator {
	return &Locator{resolver: resolver}
}

// Locate returns the definition location for the named symbol of the given
// kind. host.KindUnknown matches a definition of any kind.
func (l *Locator) Locate(name string, kind host.Kind) (host.Location, bool) {
	return l.resolver.Resolve(name, kind)
}
