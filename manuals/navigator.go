package manuals

import "errors"

// Navigator reads the documentation corpus on behalf of a non-interactive
// agent. Not-found conditions are absorbed here: the agent always receives
// textual content or an empty list, never a fault, for anything that is
// merely missing.
type Navigator struct {
	store Store
}

// NewNavigator creates a navigator over the given store.
func NewNavigator(store Store) *Navigator {
	return &Navigator{store: store}
}

// Manuals returns the ids of the manuals the navigator considers
// available: those the store lists and can actually enumerate nodes for.
func (n *Navigator) Manuals() ([]string, error) {
	ids, err := n.store.Manuals()
	if err != nil {
		return nil, err
	}
	available := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := n.store.Nodes(id); err != nil {
			continue
		}
		available = append(available, id)
	}
	return available, nil
}

// Nodes returns the node names of one manual. A manual absent from the
// store yields an empty list, not an error.
func (n *Navigator) Nodes(manual string) ([]string, error) {
	names, err := n.store.Nodes(manual)
	if errors.Is(err, ErrManualNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return names, nil
}

// NodeContent returns the content of one node. When the store raises a
// node-not-found condition, its message is returned as the content: the
// calling agent can only reason over text results.
func (n *Navigator) NodeContent(manual, name string) (string, error) {
	node, err := n.store.Node(manual, name)
	if err == nil {
		return node.Content, nil
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error(), nil
	}
	if errors.Is(err, ErrManualNotFound) {
		return (&NotFoundError{Manual: manual, Node: name}).Error(), nil
	}
	return "", err
}

// NodeLinks returns the outgoing cross-reference links of one node. A
// missing node or manual yields an empty list.
func (n *Navigator) NodeLinks(manual, name string) ([]string, error) {
	node, err := n.store.Node(manual, name)
	if err == nil {
		return node.Links, nil
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) || errors.Is(err, ErrManualNotFound) {
		return []string{}, nil
	}
	return nil, err
}
