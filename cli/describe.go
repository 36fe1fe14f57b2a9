package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hostlens-dev/hostlens/host"
	"github.com/hostlens-dev/hostlens/hostfs"
	"github.com/hostlens-dev/hostlens/source"
)

func RunDescribe(cmd *cobra.Command, args []string) error {
	symbol := args[0]
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return fmt.Errorf("failed to read --root flag: %w", err)
	}
	kindName, err := cmd.Flags().GetString("kind")
	if err != nil {
		return fmt.Errorf("failed to read --kind flag: %w", err)
	}
	kind, err := parseKind(kindName)
	if err != nil {
		return err
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

	text, unit, err := describeSymbol(rootPath, symbol, kind)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "; %s\n%s\n", unit, text)
	return nil
}

// describeSymbol locates and extracts one definition from the tree.
func describeSymbol(rootPath, symbol string, kind host.Kind) (text, unit string, err error) {
	tree := hostfs.New("tree", rootPath)
	loc, ok := source.NewLocator(tree).Locate(symbol, kind)
	if !ok {
		return "", "", fmt.Errorf("no %s definition of %q under %s", kind, symbol, rootPath)
	}
	text, err = source.NewExtractor(tree).Extract(loc)
	if err != nil {
		return "", "", err
	}
	return text, loc.Unit, nil
}

func parseKind(name string) (host.Kind, error) {
	switch host.Kind(name) {
	case host.KindFunction, host.KindVariable, host.KindFace, host.KindUnknown:
		return host.Kind(name), nil
	}
	return "", fmt.Errorf("unrecognized kind %q (use function, variable, face, or unknown)", name)
}
