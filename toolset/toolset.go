package toolset

import (
	"context"
	"errors"

	"github.com/hostlens-dev/hostlens/dispatch"
	"github.com/hostlens-dev/hostlens/host"
	"github.com/hostlens-dev/hostlens/source"
	"github.com/hostlens-dev/hostlens/symbols"
)

// Tool categories, informational for the calling agent.
const (
	CategorySymbols = "symbols"
	CategorySource  = "source"
	CategoryManuals = "manuals"
	CategoryEval    = "eval"
)

// kindEnum lists the kind values tools accept. "unknown" matches any kind.
var kindEnum = []string{
	string(host.KindFunction),
	string(host.KindVariable),
	string(host.KindFace),
	string(host.KindUnknown),
}

// Register declares every introspection tool on d. The evaluation tool
// is registered only when cfg carries an Evaluator; everything else is
// read-only and always present.
func Register(d *dispatch.Dispatcher, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.applyDefaults()

	adapter := symbols.NewAdapter(cfg.Registry)
	locator := source.NewLocator(cfg.Resolver)
	extractor := source.NewExtractor(cfg.Sources)

	regs := []struct {
		spec    dispatch.ToolSpec
		handler dispatch.Handler
	}{
		{symbolExistsSpec(), symbolExistsHandler(adapter)},
		{symbolKindSpec(), symbolKindHandler(adapter)},
		{completeSymbolsSpec(), completeSymbolsHandler(cfg.Registry)},
		{symbolSourceSpec(), symbolSourceHandler(locator, extractor)},
		{listManualsSpec(), listManualsHandler(cfg)},
		{manualNodesSpec(), manualNodesHandler(cfg)},
		{manualNodeContentSpec(), manualNodeContentHandler(cfg)},
		{manualNodeLinksSpec(), manualNodeLinksHandler(cfg)},
	}
	if cfg.Evaluator != nil {
		regs = append(regs, struct {
			spec    dispatch.ToolSpec
			handler dispatch.Handler
		}{evalFormSpec(), evalFormHandler(cfg)})
	}

	for _, r := range regs {
		if err := d.Register(r.spec, r.handler); err != nil {
			return err
		}
	}
	cfg.Logger.Logf("registered %d tools", len(regs))
	return nil
}

func symbolExistsSpec() dispatch.ToolSpec {
	return dispatch.ToolSpec{
		Name:        "symbol_exists",
		Description: "Check whether a symbol is interned in the running host.",
		Category:    CategorySymbols,
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"name": {Type: dispatch.TypeString, Description: "Symbol name to look up."},
			},
			Required: []string{"name"},
		},
	}
}

func symbolExistsHandler(adapter *symbols.Adapter) dispatch.Handler {
	return func(_ context.Context, args map[string]any) (any, error) {
		name, _ := args["name"].(string)
		return adapter.Exists(name), nil
	}
}

func symbolKindSpec() dispatch.ToolSpec {
	return dispatch.ToolSpec{
		Name:        "symbol_kind",
		Description: "Classify a symbol as function, variable, or face. Empty result means the symbol is absent.",
		Category:    CategorySymbols,
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"name": {Type: dispatch.TypeString, Description: "Symbol name to classify."},
			},
			Required: []string{"name"},
		},
	}
}

func symbolKindHandler(adapter *symbols.Adapter) dispatch.Handler {
	return func(_ context.Context, args map[string]any) (any, error) {
		name, _ := args["name"].(string)
		kind, ok := adapter.KindOf(name)
		if !ok {
			// Absence is an empty successful result, not a fault.
			return "", nil
		}
		return string(kind), nil
	}
}

func completeSymbolsSpec() dispatch.ToolSpec {
	return dispatch.ToolSpec{
		Name:        "complete_symbols",
		Description: "List symbol names matching a fuzzy query. Query components split on whitespace and hyphens; each must occur somewhere in the name.",
		Category:    CategorySymbols,
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"query": {Type: dispatch.TypeString, Description: "Fuzzy query. Empty matches every name."},
				"kind":  {Type: dispatch.TypeEnum, Enum: kindEnum, Description: "Restrict matches to one symbol kind."},
			},
			Required: []string{"query"},
		},
	}
}

func completeSymbolsHandler(registry host.Registry) dispatch.Handler {
	return func(_ context.Context, args map[string]any) (any, error) {
		query, _ := args["query"].(string)
		var pred symbols.Predicate
		if k, ok := args["kind"].(string); ok {
			pred = symbols.KindPredicate(registry, host.Kind(k))
		}
		return symbols.Filter(registry, query, pred), nil
	}
}

func symbolSourceSpec() dispatch.ToolSpec {
	return dispatch.ToolSpec{
		Name:        "symbol_source",
		Description: "Fetch the exact source text of a symbol's definition. Empty result means no definition was found.",
		Category:    CategorySource,
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"name": {Type: dispatch.TypeString, Description: "Symbol whose definition to fetch."},
				"kind": {Type: dispatch.TypeEnum, Enum: kindEnum, Description: "Definition kind to resolve. Defaults to any."},
			},
			Required: []string{"name"},
		},
	}
}

func symbolSourceHandler(locator *source.Locator, extractor *source.Extractor) dispatch.Handler {
	return func(_ context.Context, args map[string]any) (any, error) {
		name, _ := args["name"].(string)
		kind := host.KindUnknown
		if k, ok := args["kind"].(string); ok {
			kind = host.Kind(k)
		}
		loc, ok := locator.Locate(name, kind)
		if !ok {
			return "", nil
		}
		text, err := extractor.Extract(loc)
		if errors.Is(err, host.ErrUnitNotFound) {
			// The unit vanished between resolution and read; treat the
			// definition as absent.
			return "", nil
		}
		if errors.Is(err, source.ErrUnsupportedLanguage) {
			return nil, &dispatch.Error{
				Kind:    dispatch.KindUnsupported,
				Message: "no extraction rule for unit " + loc.Unit,
				Err:     err,
			}
		}
		if err != nil {
			return nil, err
		}
		return text, nil
	}
}

func listManualsSpec() dispatch.ToolSpec {
	return dispatch.ToolSpec{
		Name:        "list_manuals",
		Description: "List the available documentation manuals.",
		Category:    CategoryManuals,
		Params:      dispatch.Schema{Type: dispatch.TypeObject},
	}
}

func listManualsHandler(cfg Config) dispatch.Handler {
	return func(_ context.Context, _ map[string]any) (any, error) {
		return cfg.Docs.Manuals()
	}
}

func manualNodesSpec() dispatch.ToolSpec {
	return dispatch.ToolSpec{
		Name:        "manual_nodes",
		Description: "List the nodes of one manual. An unknown manual yields an empty list.",
		Category:    CategoryManuals,
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"manual": {Type: dispatch.TypeString, Description: "Manual id."},
			},
			Required: []string{"manual"},
		},
	}
}

func manualNodesHandler(cfg Config) dispatch.Handler {
	return func(_ context.Context, args map[string]any) (any, error) {
		manual, _ := args["manual"].(string)
		return cfg.Docs.Nodes(manual)
	}
}

func manualNodeContentSpec() dispatch.ToolSpec {
	return dispatch.ToolSpec{
		Name:        "manual_node_content",
		Description: "Fetch the content of one manual node. A missing node yields a descriptive message instead of content.",
		Category:    CategoryManuals,
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"manual": {Type: dispatch.TypeString, Description: "Manual id."},
				"node":   {Type: dispatch.TypeString, Description: "Node name within the manual."},
			},
			Required: []string{"manual", "node"},
		},
	}
}

func manualNodeContentHandler(cfg Config) dispatch.Handler {
	return func(_ context.Context, args map[string]any) (any, error) {
		manual, _ := args["manual"].(string)
		node, _ := args["node"].(string)
		return cfg.Docs.NodeContent(manual, node)
	}
}

func manualNodeLinksSpec() dispatch.ToolSpec {
	return dispatch.ToolSpec{
		Name:        "manual_node_links",
		Description: "List the outgoing cross-reference links of one manual node.",
		Category:    CategoryManuals,
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"manual": {Type: dispatch.TypeString, Description: "Manual id."},
				"node":   {Type: dispatch.TypeString, Description: "Node name within the manual."},
			},
			Required: []string{"manual", "node"},
		},
	}
}

func manualNodeLinksHandler(cfg Config) dispatch.Handler {
	return func(_ context.Context, args map[string]any) (any, error) {
		manual, _ := args["manual"].(string)
		node, _ := args["node"].(string)
		return cfg.Docs.NodeLinks(manual, node)
	}
}

func evalFormSpec() dispatch.ToolSpec {
	return dispatch.ToolSpec{
		Name:        "eval_form",
		Description: "Evaluate an expression in the running host and return its printed result. Requires operator confirmation; runs in the background.",
		Category:    CategoryEval,
		Params: dispatch.Schema{
			Type: dispatch.TypeObject,
			Properties: map[string]dispatch.Schema{
				"form": {Type: dispatch.TypeString, Description: "Expression to evaluate."},
			},
			Required: []string{"form"},
		},
		Confirm: true,
		Async:   true,
	}
}

func evalFormHandler(cfg Config) dispatch.Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		form, _ := args["form"].(string)
		cfg.Logger.Logf("evaluating confirmed form (%d bytes)", len(form))
		return cfg.Evaluator.Eval(ctx, form)
	}
}
