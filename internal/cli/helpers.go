package cli

import (
	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/gopu-inc/initpkg/pkg/config"
	"github.com/gopu-inc/initpkg/pkg/env"
	"github.com/gopu-inc/initpkg/pkg/fetch"
	"github.com/gopu-inc/initpkg/pkg/hooks"
	"github.com/gopu-inc/initpkg/pkg/index"
	"github.com/gopu-inc/initpkg/pkg/installer"
	"github.com/gopu-inc/initpkg/pkg/state"
)

// These variables will be set by the main package
var (
	LogLevel     *string
	OutputFormat *string
)

// app bundles the shared runtime every command needs: the resolved
// environment, loaded settings, the state store and a wired installer.
type app struct {
	env     *env.Environment
	cfg     *config.Config
	store   *state.Store
	cache   *index.Cache
	fetcher *fetch.Fetcher
	inst    *installer.Installer
}

func newApp() (*app, error) {
	environment, err := env.New()
	if err != nil {
		return nil, err
	}
	if err := environment.EnsureDirs(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(environment.ConfigFile)
	if err != nil {
		return nil, err
	}

	// Override config with CLI flags if provided
	if LogLevel != nil && *LogLevel != "" {
		cfg.Settings.LogLevel = *LogLevel
	}
	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	logger.InitLogger(cfg.Settings.LogLevel)

	store := state.NewStore(environment.StateFile)
	store.Load()

	cache := index.NewCache(environment.IndexCacheFile(), cfg.Settings.HTTPTimeout)
	fetcher := fetch.NewFetcher(cfg.Settings.HTTPTimeout)

	return &app{
		env:     environment,
		cfg:     cfg,
		store:   store,
		cache:   cache,
		fetcher: fetcher,
		inst:    installer.New(environment, store, cache, fetcher, hooks.NewExecutor()),
	}, nil
}
