package manuals

import (
	"errors"
	"fmt"
)

// ErrManualNotFound is returned by a Store when a manual id is not in the
// corpus. Navigators absorb it; it never reaches a caller as a fault.
var ErrManualNotFound = errors.New("manual not found")

// Node is an addressable section of a manual: content plus outgoing
// cross-reference links. Owned by the external documentation store; this
// package only reads it.
type Node struct {
	Manual  string
	Name    string
	Content string
	Links   []string
}

// NotFoundError is the user-level condition a Store raises when a node is
// absent. It carries the human-readable message that the Navigator
// surfaces as ordinary content.
type NotFoundError struct {
	Manual string
	Node   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no node %q in manual %q", e.Node, e.Manual)
}

// Is reports whether target is another not-found condition, so call sites
// can use errors.Is without a shared sentinel.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// Store is the external documentation corpus.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: an absent manual returns ErrManualNotFound; an absent node
//   returns *NotFoundError. Anything else is a real fault.
// - Liveness: the corpus may change between calls; no caching is implied.
type Store interface {
	// Manuals returns the ids of the manuals in the corpus.
	Manuals() ([]string, error)

	// Nodes returns the node names of one manual, in corpus order.
	Nodes(manual string) ([]string, error)

	// Node fetches one node with its content and outgoing links.
	Node(manual, name string) (Node, error)
}
