package cli

import (
	"fmt"
	"os"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/gopu-inc/initpkg/pkg/archive"
	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/spf13/cobra"
)

// NewPackCmd creates the pack command.
func NewPackCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pack NAME",
		Short: "Archive an installed package",
		Long: `Create a .tar.gz archive of an installed package directory, suitable
for install-local on another machine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output archive path (default: NAME-VERSION.tar.gz)")

	return cmd
}

func runPack(cmd *cobra.Command, name, output string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	entry, ok := app.store.Get(name)
	if !ok {
		return errors.Wrapf(errors.ErrNotInstalled, "package '%s'", name)
	}
	srcDir := entry.Path
	if srcDir == "" {
		srcDir = app.env.PackageDir(name)
	}
	if _, err := os.Stat(srcDir); err != nil {
		return errors.Wrapf(errors.ErrNotInstalled, "package directory for '%s' is missing", name)
	}

	if output == "" {
		output = fmt.Sprintf("%s-%s%s", name, entry.Version, archive.Extension)
	}

	if err := archive.Pack(cmd.Context(), srcDir, output); err != nil {
		return err
	}

	logger.Successf("packed '%s' into %s", name, output)
	return nil
}
