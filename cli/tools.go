package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/search"
	"github.com/jonwraymond/tooldiscovery/tooldoc"

	"github.com/hostlens-dev/hostlens/dispatch"
	"github.com/hostlens-dev/hostlens/host"
	"github.com/hostlens-dev/hostlens/hostfs"
	"github.com/hostlens-dev/hostlens/manuals"
	"github.com/hostlens-dev/hostlens/toolset"
)

func RunTools(cmd *cobra.Command, args []string) error {
	query, err := cmd.Flags().GetString("search")
	if err != nil {
		return fmt.Errorf("failed to read --search flag: %w", err)
	}

	specs, err := declaredSpecs()
	if err != nil {
		return err
	}

	if query == "" {
		for _, spec := range specs {
			flags := ""
			if spec.Confirm {
				flags += " [confirm]"
			}
			if spec.Async {
				flags += " [async]"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s%s\n", spec.Name, spec.Description, flags)
		}
		return nil
	}

	idx := index.NewInMemoryIndex(index.IndexOptions{
		Searcher: search.NewBM25Searcher(search.BM25Config{}),
	})
	docs := tooldoc.NewInMemoryStore(tooldoc.StoreOptions{Index: idx})
	if err := toolset.Catalog(specs, idx, docs); err != nil {
		return err
	}
	results, err := idx.Search(query, 10)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", r.ID, r.ShortDescription)
	}
	return nil
}

// declaredSpecs builds the full tool set against an inert host, just to
// enumerate what a server would advertise.
func declaredSpecs() ([]dispatch.ToolSpec, error) {
	tree := hostfs.New("tree", ".")
	registry := host.NewProviderRegistry()
	if err := registry.Register(tree); err != nil {
		return nil, err
	}
	aggregate := host.NewAggregate(registry)

	d := dispatch.New(dispatch.Config{})
	err := toolset.Register(d, toolset.Config{
		Registry: aggregate,
		Resolver: aggregate,
		Sources:  aggregate,
		Docs:     manuals.NewNavigator(emptyStore{}),
	})
	if err != nil {
		return nil, err
	}
	return d.Specs(), nil
}
