package toolset

import (
	"context"
	"sync"

	"github.com/hostlens-dev/hostlens/host"
	"github.com/hostlens-dev/hostlens/manuals"
)

// fakeHost is a deterministic stand-in for a running interpreted host:
// a fixed symbol table, one bracket-structured source unit, and a
// scripted evaluator.
type fakeHost struct {
	mu        sync.Mutex
	evalCalls []string
	evalErr   error
}

const greetUnit = `;;; greet.el

(defvar greet-prefix "Hello, "
  "Prefix for greetings.")

(defun greet-user (name)
  "Greet NAME."
  (concat greet-prefix name))
`

var fakeSymbols = []struct {
	name   string
	kind   host.Kind
	offset int
}{
	{"greet-prefix", host.KindVariable, 14},
	{"greet-user", host.KindFunction, 73},
}

func (f *fakeHost) Exists(name string) bool {
	_, ok := f.KindOf(name)
	return ok
}

func (f *fakeHost) KindOf(name string) (host.Kind, bool) {
	for _, s := range fakeSymbols {
		if s.name == name {
			return s.kind, true
		}
	}
	return "", false
}

func (f *fakeHost) Symbols() []string {
	names := make([]string, 0, len(fakeSymbols))
	for _, s := range fakeSymbols {
		names = append(names, s.name)
	}
	return names
}

func (f *fakeHost) Resolve(name string, kind host.Kind) (host.Location, bool) {
	for _, s := range fakeSymbols {
		if s.name != name {
			continue
		}
		if kind != host.KindUnknown && kind != s.kind {
			continue
		}
		return host.Location{Unit: "greet.el", Offset: s.offset, Language: host.LangBracket}, true
	}
	return host.Location{}, false
}

func (f *fakeHost) Unit(id string) (string, error) {
	if id != "greet.el" {
		return "", host.ErrUnitNotFound
	}
	return greetUnit, nil
}

func (f *fakeHost) Eval(_ context.Context, form string) (string, error) {
	f.mu.Lock()
	f.evalCalls = append(f.evalCalls, form)
	f.mu.Unlock()
	if f.evalErr != nil {
		return "", f.evalErr
	}
	return "42", nil
}

// fixtureStore is an in-memory manuals.Store for navigator wiring.
type fixtureStore struct {
	manuals map[string][]manuals.Node
	order   []string
}

func newFixtureStore() *fixtureStore {
	s := &fixtureStore{manuals: make(map[string][]manuals.Node)}
	s.manuals["elisp"] = []manuals.Node{
		{Manual: "elisp", Name: "Top", Content: "The manual.", Links: []string{"Symbols"}},
		{Manual: "elisp", Name: "Symbols", Content: "About symbols."},
	}
	s.order = []string{"elisp"}
	return s
}

func (s *fixtureStore) Manuals() ([]string, error) { return s.order, nil }

func (s *fixtureStore) Nodes(manual string) ([]string, error) {
	nodes, ok := s.manuals[manual]
	if !ok {
		return nil, manuals.ErrManualNotFound
	}
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	return names, nil
}

func (s *fixtureStore) Node(manual, name string) (manuals.Node, error) {
	nodes, ok := s.manuals[manual]
	if !ok {
		return manuals.Node{}, manuals.ErrManualNotFound
	}
	for _, n := range nodes {
		if n.Name == name {
			return n, nil
		}
	}
	return manuals.Node{}, &manuals.NotFoundError{Manual: manual, Node: name}
}

func testConfig(f *fakeHost) Config {
	return Config{
		Registry:  f,
		Resolver:  f,
		Sources:   f,
		Docs:      manuals.NewNavigator(newFixtureStore()),
		Evaluator: f,
	}
}
