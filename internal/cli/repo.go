package cli

import (
	"fmt"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/spf13/cobra"
)

// NewRepoCmd creates the repo command.
func NewRepoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo [URL]",
		Short: "Show or set the repository URL",
		Long: `Without arguments, print the repository base URL currently recorded
in the state file. With a URL argument, record it as the new repository
and invalidate the cached index.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runRepoShow()
			}
			return runRepoSet(args[0])
		},
	}

	return cmd
}

func runRepoShow() error {
	app, err := newApp()
	if err != nil {
		return err
	}
	fmt.Println(app.store.Repository())
	return nil
}

func runRepoSet(url string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	app.store.SetRepository(url)
	if err := app.store.Save(); err != nil {
		return err
	}
	if err := app.cache.Invalidate(); err != nil {
		logger.Warnf("could not invalidate index cache: %v", err)
	}

	logger.Successf("repository set to %s", url)
	return nil
}
