package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/platform/offscreen"
	"github.com/vovakirdan/quad-arcade/internal/registry"
)

var (
	flagFrames   int
	flagDT       float64
	flagOutput   string
	flagScale    float64
	flagNoStart  bool
	flagSnapConf string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <game>",
	Short: "Run a game headless and save its last frame as PNG",
	Long: `Run a game without a terminal for a number of fixed-size frames and
write the final frame as a PNG at the game's own pixel size.

A start key (Space) is pressed on the first frame unless --no-start is
given, so games that wait for input begin playing.

Examples:
  arcade snapshot pong
  arcade snapshot breakout --frames 300 --seed 7 -o breakout.png
  arcade snapshot invaders --scale 0.5`,
	Args: cobra.ExactArgs(1),
	Run:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&flagFrames, "frames", 60, "Frames to simulate")
	snapshotCmd.Flags().Float64Var(&flagDT, "dt", offscreen.DefaultDT, "Seconds per frame")
	snapshotCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output PNG path (default <game>.png)")
	snapshotCmd.Flags().Float64Var(&flagScale, "scale", 1, "Image pixels per game pixel")
	snapshotCmd.Flags().BoolVar(&flagNoStart, "no-start", false, "Do not press Space on the first frame")
	snapshotCmd.Flags().StringVar(&flagSnapConf, "config", "", "Path to custom game config YAML")
}

func runSnapshot(_ *cobra.Command, args []string) {
	game := mustGame(args[0])

	if c, ok := game.(registry.Configurable); ok {
		if err := c.Configure(config.Options{Path: flagSnapConf}); err != nil {
			fail("loading config: %v", err)
		}
	}

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed

	var script offscreen.Script
	if !flagNoStart {
		script.Tap(0, core.KeySpace)
	}

	path := flagOutput
	if path == "" {
		path = game.ID() + ".png"
	}

	r := offscreen.NewRunner(game, runtime, flagDT)
	if err := offscreen.Snapshot(r, flagFrames, script, path, offscreen.WithScale(flagScale)); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Wrote %s after %d frames\n", path, r.Frame())
}
