package cli

import (
	"github.com/spf13/cobra"

	"github.com/teamcutter/brewer/internal/brew"
	"github.com/teamcutter/brewer/internal/config"
	"github.com/teamcutter/brewer/internal/engine"
	"github.com/teamcutter/brewer/internal/store"
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:           "brewer",
		Short:         "Fast Homebrew catalog cache and query tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newWhichCmd(),
		newListCmd(),
		newSearchCmd(),
		newInfoCmd(),
		newUpdateCmd(),
		newInstallCmd(),
		newUninstallCmd(),
		newVersionCmd(),
	)
	return rootCmd.Execute()
}

// app wires the configured store, brew adapter and engine together
// for one command invocation.
type app struct {
	cfg    *config.Config
	store  *store.Store
	brew   *brew.Brew
	engine *engine.Engine
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	policy, err := cfg.Cache.Policy()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	b := brew.New(brew.Config{
		Path:           cfg.BrewPath,
		Prefix:         cfg.BrewPrefix,
		ExecutablesURL: cfg.ExecutablesURL,
		AnalyticsURL:   cfg.AnalyticsURL,
	})

	return &app{
		cfg:   cfg,
		store: st,
		brew:  b,
		engine: engine.New(engine.Config{
			Store:  st,
			Brew:   b,
			Policy: policy,
		}),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
