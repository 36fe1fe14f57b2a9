package hostfs

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"

	"github.com/hostlens-dev/hostlens/host"
)

// scanC indexes the top-level function definitions of one C unit. Only
// functions are indexed: C variable declarations have no brace-delimited
// body, so block extraction does not apply to them. The location offset
// is the start of the definition, return type included.
func scanC(unit string, raw []byte) ([]entry, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(c.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, raw)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var entries []entry
	root := tree.RootNode()
	for i := 0; i < int(root.ChildCount()); i++ {
		node := root.Child(i)
		if node.Type() != "function_definition" {
			continue
		}
		name := functionName(node, raw)
		if name == "" {
			continue
		}
		entries = append(entries, entry{
			symbol: host.Symbol{Name: name, Kind: host.KindFunction},
			location: host.Location{
				Unit:     unit,
				Offset:   int(node.StartByte()),
				Language: host.LangBlock,
			},
		})
	}
	return entries, nil
}

// functionName digs the identifier out of a function definition's
// declarator, unwrapping pointer declarators for functions returning
// pointers.
func functionName(node *sitter.Node, raw []byte) string {
	decl := node.ChildByFieldName("declarator")
	for decl != nil {
		switch decl.Type() {
		case "function_declarator":
			decl = decl.ChildByFieldName("declarator")
		case "pointer_declarator":
			decl = decl.ChildByFieldName("declarator")
		case "identifier":
			return decl.Content(raw)
		default:
			return ""
		}
	}
	return ""
}
