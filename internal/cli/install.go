package cli

import (
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install PACKAGE [PACKAGE...]",
		Short: "Install packages from the repository",
		Long: `Install one or more packages from the configured repository.
Dependencies listed in the package index are resolved and installed
alongside the requested packages.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			return app.inst.Install(cmd.Context(), args)
		},
	}

	return cmd
}
