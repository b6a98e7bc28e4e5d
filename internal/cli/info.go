package cli

import (
	"fmt"
	"strings"

	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info PACKAGE",
		Short: "Show details for a package",
		Long: `Show the repository metadata for a package together with its local
installation status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0])
		},
	}

	return cmd
}

func runInfo(cmd *cobra.Command, name string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	idx := app.cache.Fetch(cmd.Context(), app.store.Repository())
	record, inIndex := idx[name]
	entry, installed := app.store.Get(name)

	if !inIndex && !installed {
		return errors.ErrPackageNotFound(name, idx.Names())
	}

	fmt.Printf("Name:         %s\n", name)
	if inIndex {
		fmt.Printf("Version:      %s\n", record.Version)
		if record.Description != "" {
			fmt.Printf("Description:  %s\n", record.Description)
		}
		if record.Author != "" {
			fmt.Printf("Author:       %s\n", record.Author)
		}
		if record.License != "" {
			fmt.Printf("License:      %s\n", record.License)
		}
		if len(record.Dependencies) > 0 {
			fmt.Printf("Dependencies: %s\n", strings.Join(record.Dependencies, ", "))
		}
		if len(record.Keywords) > 0 {
			fmt.Printf("Keywords:     %s\n", strings.Join(record.Keywords, ", "))
		}
	}

	if installed {
		fmt.Printf("Installed:    yes (%s, %s)\n", entry.Version, entry.Source)
		fmt.Printf("Path:         %s\n", entry.Path)
		if entry.InstalledAt != "" {
			fmt.Printf("Installed at: %s\n", entry.InstalledAt)
		}
	} else {
		fmt.Println("Installed:    no")
	}

	return nil
}
