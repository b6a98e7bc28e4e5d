package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gopu-inc/initpkg/internal/cli"
	"github.com/spf13/cobra"
)

var (
	logLevel     string
	outputFormat string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initpkg",
		Short: "Package manager for the INITLANG language",
		Long: `initpkg installs and manages INITLANG packages:
- install, uninstall and update packages from the package repository
- create and install packages from local directories or archives
- search and inspect the published package index`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (text, json)")

	// Set up CLI pkg variables
	cli.LogLevel = &logLevel
	cli.OutputFormat = &outputFormat

	// Add subcommands
	cmd.AddCommand(
		cli.NewInstallCmd(),
		cli.NewUninstallCmd(),
		cli.NewInstallLocalCmd(),
		cli.NewCreateCmd(),
		cli.NewListCmd(),
		cli.NewAvailableCmd(),
		cli.NewSearchCmd(),
		cli.NewInfoCmd(),
		cli.NewUpdateCmd(),
		cli.NewPackCmd(),
		cli.NewRepoCmd(),
		cli.NewCacheCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
