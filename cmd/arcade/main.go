// arcade is a TUI arcade platform for playing retro-style games in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade results <game>    - Show recent round results for a game
//	arcade snapshot <game>   - Run a game headless and save a PNG frame
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.arcade/scores.db)
//	--raster <mode>  - braille or halfblock terminal output
//	--log <path>     - Log file (default: ~/.arcade/arcade.log, "none" disables)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/quad-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/quad-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/quad-arcade/internal/games/pong"
	_ "github.com/vovakirdan/quad-arcade/internal/games/snake"
	_ "github.com/vovakirdan/quad-arcade/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagRaster   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Quad Arcade - Play retro games in your terminal",
	Long: `Quad Arcade plays classic pixel games in the terminal. Every game
draws colored rectangles which are packed into Braille or half-block cells.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  results   - View round results of two-player games
  snapshot  - Save a frame of a game as PNG

Examples:
  arcade list
  arcade play pong
  arcade menu
  arcade serve --ssh :2222
  arcade scores breakout
  arcade snapshot invaders --frames 120 -o invaders.png`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagRaster, "raster", "braille", "Terminal output: braille or halfblock")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/arcade.log", `Log file ("none" disables logging)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(snapshotCmd)
}
