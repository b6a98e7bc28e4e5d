package cli

import (
	"fmt"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command with subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the index cache",
	}

	cmd.AddCommand(
		newCacheCleanCmd(),
		newCacheDirCmd(),
	)

	return cmd
}

func newCacheCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete the cached package index",
		Long: `Remove the cached index file. The next command that needs the index
will fetch a fresh copy from the repository.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			if err := app.cache.Invalidate(); err != nil {
				return err
			}
			logger.Successf("index cache cleared")
			return nil
		},
	}

	return cmd
}

func newCacheDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Show the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			fmt.Println(app.env.CacheDir)
			return nil
		},
	}

	return cmd
}
