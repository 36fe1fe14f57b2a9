package symbols

import "github.com/hostlens-dev/hostlens/host"

// mockRegistry implements host.Registry with a fixed enumeration order and
// call tracking.
type mockRegistry struct {
	symbols []host.Symbol

	existsCalls []string
	kindCalls   []string
}

func (m *mockRegistry) Exists(name string) bool {
	m.existsCalls = append(m.existsCalls, name)
	_, ok := m.lookup(name)
	return ok
}

func (m *mockRegistry) KindOf(name string) (host.Kind, bool) {
	m.kindCalls = append(m.kindCalls, name)
	return m.lookup(name)
}

func (m *mockRegistry) Symbols() []string {
	out := make([]string, 0, len(m.symbols))
	for _, s := range m.symbols {
		out = append(out, s.Name)
	}
	return out
}

func (m *mockRegistry) lookup(name string) (host.Kind, bool) {
	for _, s := range m.symbols {
		if s.Name == name {
			return s.Kind, true
		}
	}
	return host.KindUnknown, false
}
