package source

import "github.com/hostlens-dev/hostlens/host"

// mockSources implements host.Sources over a fixed unit map.
type mockSources struct {
	units map[string]string

	unitCalls []string
}

func (m *mockSources) Unit(id string) (string, error) {
	m.unitCalls = append(m.unitCalls, id)
	text, ok := m.units[id]
	if !ok {
		return "", host.ErrUnitNotFound
	}
	return text, nil
}

// mockResolver implements host.Resolver over a fixed location map.
type mockResolver struct {
	locs map[string]host.Location
}

func (m *mockResolver) Resolve(name string, kind host.Kind) (host.Location, bool) {
	loc, ok := m.locs[name]
	return loc, ok
}
