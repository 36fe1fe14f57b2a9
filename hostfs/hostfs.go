package hostfs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hostlens-dev/hostlens/host"
)

// Tree scans a source tree for definitions and serves them as a host
// symbol table. It implements host.Provider and host.Sources.
type Tree struct {
	name string
	root string
}

// New creates a provider named name over the source tree rooted at root.
func New(name, root string) *Tree {
	return &Tree{name: name, root: root}
}

// Name returns the provider instance name.
func (t *Tree) Name() string { return t.name }

// Enabled reports whether the root directory is readable.
func (t *Tree) Enabled() bool {
	info, err := os.Stat(t.root)
	return err == nil && info.IsDir()
}

// Symbols enumerates every indexed symbol name. The order is the scan
// order: files in deterministic walk order, definitions in file order.
// A name defined more than once appears at its first definition only.
func (t *Tree) Symbols() []string {
	entries, err := t.scan()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.symbol.Name] {
			continue
		}
		seen[e.symbol.Name] = true
		names = append(names, e.symbol.Name)
	}
	return names
}

// KindOf returns the kind of the named symbol.
func (t *Tree) KindOf(name string) (host.Kind, bool) {
	entries, err := t.scan()
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.symbol.Name == name {
			return e.symbol.Kind, true
		}
	}
	return "", false
}

// Resolve maps a symbol name and kind to its definition location.
func (t *Tree) Resolve(name string, kind host.Kind) (host.Location, bool) {
	entries, err := t.scan()
	if err != nil {
		return host.Location{}, false
	}
	for _, e := range entries {
		if e.symbol.Name != name {
			continue
		}
		if kind != host.KindUnknown && kind != e.symbol.Kind {
			continue
		}
		return e.location, true
	}
	return host.Location{}, false
}

// Unit returns the text of one source unit. Unit ids are slash-separated
// paths relative to the tree root; ids escaping the root are rejected.
func (t *Tree) Unit(id string) (string, error) {
	rel := filepath.FromSlash(id)
	if rel == "" || filepath.IsAbs(rel) || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", host.ErrUnitNotFound, id)
	}
	raw, err := os.ReadFile(filepath.Join(t.root, rel))
	if err != nil {
		return "", fmt.Errorf("%w: %q", host.ErrUnitNotFound, id)
	}
	return string(raw), nil
}

// entry is one indexed definition.
type entry struct {
	symbol   host.Symbol
	location host.Location
}

// scan walks the tree and indexes every definition. WalkDir visits
// entries in lexical order, so repeated scans of an unchanged tree
// produce the same enumeration order.
func (t *Tree) scan() ([]entry, error) {
	var entries []entry
	err := filepath.WalkDir(t.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != t.root {
				return filepath.SkipDir
			}
			return nil
		}
		scanFile := scannerFor(path)
		if scanFile == nil {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(t.root, path)
		if err != nil {
			return err
		}
		found, err := scanFile(filepath.ToSlash(rel), raw)
		if err != nil {
			return err
		}
		entries = append(entries, found...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", t.root, err)
	}
	return entries, nil
}

// scannerFor picks the definition scanner for a file, by extension.
func scannerFor(path string) func(unit string, raw []byte) ([]entry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".el", ".lisp", ".scm":
		return scanLisp
	case ".c", ".h":
		return scanC
	default:
		return nil
	}
}
