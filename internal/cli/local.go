package cli

import (
	"github.com/spf13/cobra"
)

// NewInstallLocalCmd creates the install-local command.
func NewInstallLocalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install-local PATH",
		Short: "Install a package from a local directory or archive",
		Long: `Install a package from a local source instead of the repository.
PATH may be a package directory containing main.init, or a .tar.gz/.zip
archive of one. The package name is taken from package.json when
present, otherwise from the directory name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			_, err = app.inst.InstallLocal(cmd.Context(), args[0])
			return err
		},
	}

	return cmd
}
