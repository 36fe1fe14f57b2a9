package infodir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hostlens-dev/hostlens/manuals"
)

// nodeSeparator delimits nodes in the Info format.
const nodeSeparator = "\x1f"

var (
	headerNodeRe = regexp.MustCompile(`(?m)^File:\s*[^,]+,\s+Node:\s*([^,\n]+)`)
	menuEntryRe  = regexp.MustCompile(`(?m)^\* ([^:\n]+)::`)
	menuLabelRe  = regexp.MustCompile(`(?m)^\* [^:\n]+:\s*([^.,:\n]+)[.,]`)
	noteRe       = regexp.MustCompile(`(?i)\*note\s+([^:,.\n]+)::`)
	noteLabelRe  = regexp.MustCompile(`(?i)\*note\s+[^:,.\n]+:\s*([^.,:\n]+)[.,]`)
)

// Store reads manuals from *.info files directly under a root directory.
// Files are re-read on every call, so a regenerated manual needs no
// restart to be picked up.
type Store struct {
	root string
}

// New creates a store over dir. The directory is not required to exist
// yet; an empty or missing directory is simply an empty corpus.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Manuals returns the manual ids, one per *.info file, in lexical order.
func (s *Store) Manuals() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manual directory: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".info") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".info"))
	}
	return ids, nil
}

// Nodes returns the node names of one manual in file order.
func (s *Store) Nodes(manual string) ([]string, error) {
	nodes, err := s.parse(manual)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	return names, nil
}

// Node fetches one node by name.
func (s *Store) Node(manual, name string) (manuals.Node, error) {
	nodes, err := s.parse(manual)
	if err != nil {
		return manuals.Node{}, err
	}
	for _, n := range nodes {
		if n.Name == name {
			return n, nil
		}
	}
	return manuals.Node{}, &manuals.NotFoundError{Manual: manual, Node: name}
}

func (s *Store) parse(manual string) ([]manuals.Node, error) {
	if manual != filepath.Base(manual) || manual == "." || manual == ".." {
		return nil, manuals.ErrManualNotFound
	}
	raw, err := os.ReadFile(filepath.Join(s.root, manual+".info"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, manuals.ErrManualNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read manual %q: %w", manual, err)
	}
	return parseNodes(manual, string(raw)), nil
}

// parseNodes splits an Info file into its nodes. The preamble before the
// first separator and any section without a node header are skipped.
func parseNodes(manual, text string) []manuals.Node {
	var nodes []manuals.Node
	for _, section := range strings.Split(text, nodeSeparator) {
		section = strings.TrimLeft(section, "\n")
		m := headerNodeRe.FindStringSubmatch(section)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		// Content starts after the header line.
		content := section
		if i := strings.IndexByte(section, '\n'); i >= 0 {
			content = section[i+1:]
		} else {
			content = ""
		}
		content = strings.Trim(content, "\n")
		nodes = append(nodes, manuals.Node{
			Manual:  manual,
			Name:    name,
			Content: content,
			Links:   parseLinks(content),
		})
	}
	return nodes
}

// parseLinks collects outgoing references: menu entries and inline
// *Note cross-references, deduplicated in order of first appearance.
func parseLinks(content string) []string {
	var links []string
	seen := make(map[string]bool)
	add := func(target string) {
		target = strings.TrimSpace(target)
		if target == "" || seen[target] {
			return
		}
		seen[target] = true
		links = append(links, target)
	}
	for _, re := range []*regexp.Regexp{menuEntryRe, menuLabelRe, noteRe, noteLabelRe} {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			add(m[1])
		}
	}
	return links
}
