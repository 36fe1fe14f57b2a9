package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hostlens-dev/hostlens/dispatch"
	"github.com/hostlens-dev/hostlens/host"
	"github.com/hostlens-dev/hostlens/hostfs"
	"github.com/hostlens-dev/hostlens/manuals"
	"github.com/hostlens-dev/hostlens/manuals/infodir"
	"github.com/hostlens-dev/hostlens/mcpserver"
	"github.com/hostlens-dev/hostlens/toolset"
)

// stdLogger adapts the standard library logger to the Logf interface the
// packages share.
type stdLogger struct {
	l *log.Logger
}

func newStdLogger() *stdLogger {
	// Stdout carries the protocol; diagnostics go to stderr.
	return &stdLogger{l: log.New(os.Stderr, "hostlens: ", log.LstdFlags)}
}

func (s *stdLogger) Logf(format string, args ...any) {
	s.l.Printf(format, args...)
}

func RunServe(cmd *cobra.Command, args []string) error {
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return fmt.Errorf("failed to read --root flag: %w", err)
	}
	manualDir, err := cmd.Flags().GetString("manuals")
	if err != nil {
		return fmt.Errorf("failed to read --manuals flag: %w", err)
	}

	rootPath, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve path %q: %w", root, err)
	}
	info, err := os.Stat(rootPath)
	if err != nil {
		return fmt.Errorf("failed to access path %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory", root)
	}

	logger := newStdLogger()
	server, err := buildServer(rootPath, manualDir, cmd.Root().Version, logger)
	if err != nil {
		return err
	}
	logger.Logf("indexing %s", rootPath)
	return server.Run(cmd.Context())
}

// buildServer wires the source tree, manuals, dispatcher, and protocol
// server together.
func buildServer(rootPath, manualDir, version string, logger mcpserver.Logger) (*mcpserver.Server, error) {
	tree := hostfs.New("tree", rootPath)
	registry := host.NewProviderRegistry()
	if err := registry.Register(tree); err != nil {
		return nil, err
	}
	aggregate := host.NewAggregate(registry)

	var store manuals.Store = infodir.New(manualDir)
	if manualDir == "" {
		store = emptyStore{}
	}

	router := mcpserver.NewRouter()
	d := dispatch.New(dispatch.Config{
		Completer: router,
		Logger:    logger,
	})
	err := toolset.Register(d, toolset.Config{
		Registry: aggregate,
		Resolver: aggregate,
		Sources:  aggregate,
		Docs:     manuals.NewNavigator(store),
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return mcpserver.New(mcpserver.Config{
		Dispatcher: d,
		Router:     router,
		Name:       "hostlens",
		Version:    version,
		Logger:     logger,
	})
}

// emptyStore is the manuals corpus when no directory is configured.
type emptyStore struct{}

func (emptyStore) Manuals() ([]string, error) { return []string{}, nil }

func (emptyStore) Nodes(string) ([]string, error) {
	return nil, manuals.ErrManualNotFound
}

func (emptyStore) Node(manual, name string) (manuals.Node, error) {
	return manuals.Node{}, manuals.ErrManualNotFound
}
