package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc leaves a game and returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard (r toggles round results)
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db --difficulty hard`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for every game")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, logCloser := openLogger()
	defer logCloser.Close()

	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	opts := tui.RunOptions{
		Runtime: runtimeConfig(),
		Driver: tui.DriverOptions{
			Store:  store,
			Logger: logger,
			Raster: tui.ParseRasterMode(flagRaster),
			Config: config.Options{Preset: config.ParsePreset(flagDifficulty)},
		},
	}

	if err := tui.RunSession(opts); err != nil {
		fail("%v", err)
	}
}
