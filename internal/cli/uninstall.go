package cli

import (
	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the uninstall command.
func NewUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uninstall PACKAGE [PACKAGE...]",
		Aliases: []string{"remove"},
		Short:   "Uninstall packages",
		Long: `Remove one or more installed packages: the package directory is
deleted and the package is dropped from the installed set. Unknown
names are reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			return app.inst.Uninstall(args)
		},
	}

	return cmd
}
