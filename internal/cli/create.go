package cli

import (
	"os"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/gopu-inc/initpkg/pkg/model"
	"github.com/gopu-inc/initpkg/pkg/scaffold"
	"github.com/spf13/cobra"
)

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	var (
		dir     string
		version string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Scaffold a new package",
		Long: `Create a package skeleton in the current directory: a main.init with
starter code and a package.json with default metadata. An existing
main.init is preserved; package.json is rewritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCreate(args[0], dir, version)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Parent directory for the new package (default: current directory)")
	cmd.Flags().StringVar(&version, "version", model.DefaultLocalVersion, "Initial package version")

	return cmd
}

func runCreate(name, dir, version string) error {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = cwd
	}

	pkgDir, err := scaffold.Create(dir, name, version)
	if err != nil {
		return err
	}

	logger.Successf("created package '%s' at %s", name, pkgDir)
	return nil
}
