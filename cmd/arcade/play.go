package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Pong       W/S left paddle, Up/Down right paddle (when not CPU)
  Breakout   A/D move the paddle
  Invaders   A/D move, Space fires
  Snake      W/A/S/D or arrows steer
  TicTacToe  Arrows and Enter, or click a tile

  P          - Pause
  R          - Restart
  Esc/Q      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Config files in ~/.arcade/configs and ./configs are watched; edits apply
from the next round.

Examples:
  arcade play pong
  arcade play breakout --difficulty easy
  arcade play snake --difficulty fixed
  arcade play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", true, "Reload config files when they change")
}

func runPlay(_ *cobra.Command, args []string) {
	game := mustGame(args[0])

	logger, logCloser := openLogger()
	defer logCloser.Close()

	// Continue without storage - game still works
	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	opts := tui.RunOptions{
		Runtime: runtimeConfig(),
		Watch:   flagWatch,
		Driver: tui.DriverOptions{
			Store:  store,
			Logger: logger,
			Raster: tui.ParseRasterMode(flagRaster),
			Config: config.Options{
				Path:   flagConfig,
				Preset: config.ParsePreset(flagDifficulty),
			},
		},
	}

	if err := tui.Run(game, opts); err != nil {
		logger.Error("game crashed", "game", game.ID(), "error", err)
		fail("running game: %v", err)
	}
}
