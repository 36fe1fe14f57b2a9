package symbols

import (
	"testing"

	"github.com/hostlens-dev/hostlens/host"
)

func completionRegistry() *mockRegistry {
	// Deliberately not sorted: output order must follow this enumeration.
	return &mockRegistry{symbols: []host.Symbol{
		{Name: "write-file", Kind: host.KindFunction},
		{Name: "find-file", Kind: host.KindFunction},
		{Name: "find-file-hook", Kind: host.KindVariable},
		{Name: "fill-column", Kind: host.KindVariable},
		{Name: "find-alternate-file", Kind: host.KindFunction},
		{Name: "default-face", Kind: host.KindFace},
	}}
}

func TestFilter_ComponentsMatchInAnyOrder(t *testing.T) {
	reg := completionRegistry()

	tests := []struct {
		query string
		want  []string
	}{
		// Single substring component.
		{"find", []string{"find-file", "find-file-hook", "find-alternate-file"}},
		// Hyphen splits exactly like whitespace.
		{"file find", []string{"find-file", "find-file-hook", "find-alternate-file"}},
		{"file-find", []string{"find-file", "find-file-hook", "find-alternate-file"}},
		// Components need not be contiguous in the name.
		{"find alternate", []string{"find-alternate-file"}},
		{"alternate find", []string{"find-alternate-file"}},
		// Substring, not prefix.
		{"hook", []string{"find-file-hook"}},
		{"no-such-component", []string{}},
	}

	for _, tt := range tests {
		got := Filter(reg, tt.query, nil)
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Filter(%q)[%d] = %q, want %q", tt.query, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFilter_EmptyQueryReturnsFullPredicateSet(t *testing.T) {
	reg := completionRegistry()

	got := Filter(reg, "", nil)
	want := reg.Symbols()
	if len(got) != len(want) {
		t.Fatalf("Filter(\"\") = %d names, want %d", len(got), len(want))
	}
	seen := make(map[string]int)
	for i, name := range got {
		seen[name]++
		if name != want[i] {
			t.Errorf("Filter(\"\")[%d] = %q, want %q (native order)", i, name, want[i])
		}
	}
	for name, n := range seen {
		if n != 1 {
			t.Errorf("name %q appears %d times, want once", name, n)
		}
	}
}

func TestFilter_PredicateRestricts(t *testing.T) {
	reg := completionRegistry()

	got := Filter(reg, "", KindPredicate(reg, host.KindVariable))
	want := []string{"find-file-hook", "fill-column"}
	if len(got) != len(want) {
		t.Fatalf("Filter with variable predicate = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilter_KindPredicateUnknownAdmitsAll(t *testing.T) {
	reg := completionRegistry()

	got := Filter(reg, "", KindPredicate(reg, host.KindUnknown))
	if len(got) != len(reg.symbols) {
		t.Errorf("KindUnknown predicate admitted %d of %d names", len(got), len(reg.symbols))
	}
}

func TestFilter_QueryWithOnlySeparators(t *testing.T) {
	reg := completionRegistry()

	// "- -" splits into zero components, same as an empty query.
	got := Filter(reg, " -  - ", nil)
	if len(got) != len(reg.symbols) {
		t.Errorf("separator-only query matched %d names, want %d", len(got), len(reg.symbols))
	}
}
