package toolset

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/jonwraymond/toolfoundation/model"

	"github.com/hostlens-dev/hostlens/dispatch"
)

// Namespace is the discovery namespace all introspection tools live in.
const Namespace = "hostlens"

// ToolID returns the discovery id of a tool name, "hostlens:name".
func ToolID(name string) string {
	return Namespace + ":" + name
}

// Catalog publishes dispatcher specs into a discovery index and doc
// store, so agents can search for tools and read their documentation
// before invoking them.
func Catalog(specs []dispatch.ToolSpec, idx index.Index, docs *tooldoc.InMemoryStore) error {
	titler := cases.Title(language.English)
	for _, spec := range specs {
		tool := model.Tool{
			Tool: mcp.Tool{
				Name:        spec.Name,
				Description: spec.Description,
				InputSchema: spec.Params.JSONSchema(),
			},
			Namespace: Namespace,
			Tags:      model.NormalizeTags(catalogTags(spec)),
		}
		if err := idx.RegisterTool(tool, model.NewLocalBackend(spec.Name)); err != nil {
			return fmt.Errorf("catalog tool %q: %w", spec.Name, err)
		}
		if docs == nil {
			continue
		}
		display := titler.String(strings.ReplaceAll(spec.Name, "_", " "))
		if err := docs.RegisterDoc(ToolID(spec.Name), tooldoc.DocEntry{
			Summary: display + ": " + spec.Description,
			Notes:   catalogNotes(spec),
		}); err != nil {
			return fmt.Errorf("catalog doc %q: %w", spec.Name, err)
		}
	}
	return nil
}

func catalogTags(spec dispatch.ToolSpec) []string {
	tags := []string{spec.Category}
	if spec.Confirm {
		tags = append(tags, "gated")
	}
	if spec.Async {
		tags = append(tags, "async")
	} else {
		tags = append(tags, "read-only")
	}
	return tags
}

func catalogNotes(spec dispatch.ToolSpec) string {
	var notes []string
	if spec.Confirm {
		notes = append(notes, "Requires explicit operator confirmation before it runs.")
	}
	if spec.Async {
		notes = append(notes, "Runs in the background; the result arrives as a correlated completion.")
	} else {
		notes = append(notes, "Synchronous and side-effect free.")
	}
	return strings.Join(notes, " ")
}
