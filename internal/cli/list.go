package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed packages",
		Long: `List all installed packages with name, version and source.

Use --name to filter packages by name.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(nameFilter)
		},
	}

	cmd.Flags().StringVar(&nameFilter, "name", "", "Filter packages by name (partial match)")

	return cmd
}

func runList(nameFilter string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	names := app.store.InstalledNames()
	if nameFilter != "" {
		filtered := names[:0]
		for _, name := range names {
			if strings.Contains(name, nameFilter) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}

	if len(names) == 0 {
		fmt.Println("No packages installed")
		return nil
	}

	fmt.Printf("%-30s %-15s %s\n", "PACKAGE NAME", "VERSION", "SOURCE")
	fmt.Println(strings.Repeat("-", 60))
	for _, name := range names {
		entry, _ := app.store.Get(name)
		fmt.Printf("%-30s %-15s %s\n", name, entry.Version, entry.Source)
	}

	return nil
}
