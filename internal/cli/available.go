package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/gopu-inc/initpkg/pkg/model"
	"github.com/spf13/cobra"
)

// NewAvailableCmd creates the available command.
func NewAvailableCmd() *cobra.Command {
	var cachedOnly bool

	cmd := &cobra.Command{
		Use:   "available",
		Short: "List packages available in the repository",
		Long: `List all packages published in the repository index.

By default the index is fetched from the network, falling back to the
cached copy when the repository is unreachable. Use --cached to skip
the network and read the cached index directly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAvailable(cmd, cachedOnly)
		},
	}

	cmd.Flags().BoolVar(&cachedOnly, "cached", false, "Use the cached index without contacting the repository")

	return cmd
}

func runAvailable(cmd *cobra.Command, cachedOnly bool) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	var idx model.Index
	if cachedOnly {
		idx, err = app.cache.Cached()
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	} else {
		idx = app.cache.Fetch(cmd.Context(), app.store.Repository())
	}

	if len(idx) == 0 {
		fmt.Println("No packages available")
		return nil
	}

	fmt.Printf("%-30s %-15s %s\n", "PACKAGE NAME", "VERSION", "DESCRIPTION")
	fmt.Println(strings.Repeat("-", 70))
	for _, name := range idx.Names() {
		record := idx[name]
		fmt.Printf("%-30s %-15s %s\n", name, record.Version, record.Description)
	}

	return nil
}
