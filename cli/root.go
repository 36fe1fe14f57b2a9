package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the hostlens command tree.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hostlens",
		Short: "Read-only introspection tools for a live source tree",
		Long: `Hostlens serves the symbol table, definition sources, and manuals of
an interpreted host to language-model agents over the Model Context
Protocol. Every tool is read-only except eval_form, which is gated
behind explicit operator confirmation.`,
		Version: version,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the introspection tools over stdio",
		RunE:  RunServe,
	}
	serveCmd.Flags().String("root", ".", "Source tree to index")
	serveCmd.Flags().String("manuals", "", "Directory of .info manuals (optional)")

	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server would advertise",
		RunE:  RunTools,
	}
	toolsCmd.Flags().String("search", "", "Search the tool catalog instead of listing everything")

	describeCmd := &cobra.Command{
		Use:   "describe <symbol>",
		Short: "Print the source definition of one symbol",
		Args:  cobra.ExactArgs(1),
		RunE:  RunDescribe,
	}
	describeCmd.Flags().String("root", ".", "Source tree to index")
	describeCmd.Flags().String("kind", "unknown", "Definition kind: function|variable|face|unknown")

	rootCmd.AddCommand(serveCmd, toolsCmd, describeCmd)
	return rootCmd
}
