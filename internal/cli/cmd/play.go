package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/arrangement"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/theme"
)

var playNoWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Arrange demo panels interactively",
	Long: `Open a terminal host for an arrangement store with a set of demo panels.

Select a panel with the arrow keys, then dock it with H/J/K/L/c, float it
with f, or start a drag with g and drop it beside another panel with the
dock keys. Press ? for every binding.

The config file is watched: palette edits apply while the host is open.
Logs go to the log file since the terminal belongs to the UI.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playNoWatch, "no-watch", false, "do not reload the config file on change")
}

func runPlay(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(logging.WithComponent(app.Ctx(), "play"))
	defer cancel()

	store := app.NewStore()
	m := model.NewPlayModel(ctx, store, model.PlayConfig{Themes: []string{theme.Dark, theme.Light}})
	defer m.Close()

	if !playNoWatch {
		watchConfig(ctx, app, store)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run play: %w", err)
	}
	return nil
}

// watchConfig re-applies palettes on config changes. The store keeps its
// current theme name, so a theme toggled in the UI survives a reload.
func watchConfig(ctx context.Context, app *cli.App, store *arrangement.Store) {
	log := logging.FromContext(ctx)
	if app.ConfigMgr == nil || app.ConfigErr != nil {
		log.Debug().Msg("config watch disabled, defaults in use")
		return
	}

	app.ConfigMgr.OnConfigChange(func(cfg *config.Config) {
		app.Themes.Update(cfg)
		store.SetTheme(ctx, store.Snapshot().Theme.Name)
	})
	if err := app.ConfigMgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}
}
