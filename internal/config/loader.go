package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigDir is searched relative to the working directory.
const localConfigDir = "configs"

// Load loads the configuration for gameID.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Every source is decoded over fallback(), so a file only needs the keys it changes.
// Only an explicit customPath can fail; broken files elsewhere are skipped.
func Load[T any](gameID, customPath string, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, dir := range SearchDirs() {
		if cfg, ok := tryFile(filepath.Join(dir, filename), fallback); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if data := DefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

func tryFile[T any](path string, fallback func() T) (T, bool) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback(), false
	}
	return cfg, true
}

// SearchDirs returns the directories scanned for <id>.yaml, in priority order.
func SearchDirs() []string {
	dirs := make([]string, 0, 2)
	if userDir := userConfigDir(); userDir != "" {
		dirs = append(dirs, userDir)
	}
	return append(dirs, localConfigDir)
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}

// LoadPong loads Pong configuration and applies the preset.
func LoadPong(opts Options) (PongConfig, error) {
	cfg, err := Load("pong", opts.Path, DefaultPongConfig)
	ApplyPongPreset(&cfg, opts.Preset)
	return cfg, err
}

// LoadBreakout loads Breakout configuration and applies the preset.
func LoadBreakout(opts Options) (BreakoutConfig, error) {
	cfg, err := Load("breakout", opts.Path, DefaultBreakoutConfig)
	ApplyBreakoutPreset(&cfg, opts.Preset)
	return cfg, err
}

// LoadInvaders loads Invaders configuration and applies the preset.
func LoadInvaders(opts Options) (InvadersConfig, error) {
	cfg, err := Load("invaders", opts.Path, DefaultInvadersConfig)
	ApplyInvadersPreset(&cfg, opts.Preset)
	return cfg, err
}

// LoadSnake loads Snake configuration and applies the preset.
func LoadSnake(opts Options) (SnakeConfig, error) {
	cfg, err := Load("snake", opts.Path, DefaultSnakeConfig)
	ApplySnakePreset(&cfg, opts.Preset)
	return cfg, err
}

// LoadTicTacToe loads Tic-Tac-Toe configuration. Presets do not apply.
func LoadTicTacToe(opts Options) (TicTacToeConfig, error) {
	return Load("tictactoe", opts.Path, DefaultTicTacToeConfig)
}

// applyProgression sets up the difficulty block for a preset.
func applyProgression(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyProgression(&cfg.Difficulty, preset)
	f := SpeedFactorForPreset(preset)
	cfg.Ball.Speed *= f
	cfg.Paddle.Speed *= f
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyProgression(&cfg.Difficulty, preset)
	f := SpeedFactorForPreset(preset)
	cfg.Ball.VelocityX *= f
	cfg.Ball.VelocityY *= f

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width *= 1.25
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.75
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyProgression(&cfg.Difficulty, preset)
	cfg.Enemies.StepInterval /= SpeedFactorForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 5
	case DifficultyHard:
		cfg.Player.Health = 2
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyProgression(&cfg.Difficulty, preset)
	cfg.StepInterval /= SpeedFactorForPreset(preset)
}
