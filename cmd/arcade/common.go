package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/platform/tui"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

// fail prints an error the way every subcommand reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// mustGame exits unless gameID is registered.
func mustGame(gameID string) registry.Game {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	return game
}

// runtimeConfig sizes the game to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStoreOrWarn opens the scores database; games still run without it.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openLogger returns the file logger for interactive commands.
func openLogger() (*log.Logger, io.Closer) {
	path := flagLogPath
	if path == "none" {
		path = ""
	}
	logger, closer, err := tui.NewFileLogger(path, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return tui.NewDiscardLogger(), io.NopCloser(nil)
	}
	return logger, closer
}
