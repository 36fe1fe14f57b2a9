package symbols

import (
	"strings"

	"github.com/hostlens-dev/hostlens/host"
)

// Predicate restricts which symbol names a completion query considers.
// A nil Predicate admits every name.
type Predicate func(name string) bool

// KindPredicate admits names whose symbol kind matches the given kind.
// KindUnknown admits every interned name.
func KindPredicate(registry host.Registry, kind host.Kind) Predicate {
	return func(name string) bool {
		k, ok := registry.KindOf(name)
		if !ok {
			return false
		}
		return kind == host.KindUnknown || k == kind
	}
}

// Filter returns the registry's symbol names matched by query and admitted
// by pred, in the registry's native enumeration order. The output is never
// sorted here: the host owns the order.
//
// The query is split on whitespace and hyphens into components; a name
// matches when every component occurs somewhere in it as a substring, in
// any order and not necessarily contiguously. An empty query matches every
// name, so Filter("", pred) enumerates the full predicate-restricted set.
func Filter(registry host.Registry, query string, pred Predicate) []string {
	components := splitQuery(query)

	out := make([]string, 0)
	for _, name := range registry.Symbols() {
		if pred != nil && !pred(name) {
			continue
		}
		if matchesAll(name, components) {
			out = append(out, name)
		}
	}
	return out
}

// splitQuery breaks a completion query into match components. Both
// whitespace and hyphens separate components, so "find file" and
// "find-file" produce the same query.
func splitQuery(query string) []string {
	return strings.FieldsFunc(query, func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func matchesAll(name string, components []string) bool {
	for _, c := range components {
		if !strings.Contains(name, c) {
			return false
		}
	}
	return true
}
