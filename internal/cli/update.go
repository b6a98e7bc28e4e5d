package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update installed packages to their latest versions",
		Long: `Refresh the repository index and reinstall every repository-sourced
package whose index version is newer than the installed one. Locally
installed packages are never touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdate(cmd)
		},
	}

	return cmd
}

func runUpdate(cmd *cobra.Command) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	updated, err := app.inst.Update(cmd.Context())
	if err != nil {
		return err
	}

	if len(updated) == 0 {
		fmt.Println("All packages are up to date")
		return nil
	}
	fmt.Printf("Updated %d package(s):\n", len(updated))
	for _, name := range updated {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
