package config

import (
	"embed"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// DefaultYAML returns the embedded default YAML for a game, or nil.
func DefaultYAML(gameID string) []byte {
	data, err := defaultFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}

// defaultDifficulty is shared by the action games.
func defaultDifficulty(maxAt float64) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  "score",
			MaxAt: maxAt,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier: 0.5,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field:  FieldConfig{Width: 1600, Height: 900},
		Paddle: BoxConfig{Width: 50, Height: 200, Speed: 700},
		Ball:   BoxConfig{Width: 50, Height: 50, Speed: 700},
		Rules: PongRules{
			WinScore:        2,
			ScoreTimeout:    1.0,
			GameOverTimeout: 3.0,
			RightAI:         true,
		},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "none"},
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field:  FieldConfig{Width: 1600, Height: 900},
		Paddle: BoxConfig{Width: 200, Height: 50, Speed: 2000},
		Ball:   BreakoutBall{Size: 50, VelocityX: 300, VelocityY: 300},
		Blocks: BreakoutBlocks{Size: 50, Padding: 2, Rows: 3},
		Gameplay: BreakoutGameplay{
			Lives:          3,
			PointsPerBlock: 10,
		},
		Difficulty: defaultDifficulty(500),
	}
}

// DefaultInvadersConfig returns the default Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{Width: 1600, Height: 900},
		Player: InvadersPlayer{
			BoxConfig: BoxConfig{Width: 60, Height: 32, Speed: 1000},
			Health:    3,
		},
		Enemies: InvadersEnemies{
			Rows:          5,
			Cols:          11,
			Width:         40,
			Height:        32,
			StepInterval:  1.0,
			StepSize:      50,
			LeftLimit:     -250,
			RightLimit:    250,
			SplatDuration: 0.2,
			PointsPerKill: 10,
		},
		Bullet: BoxConfig{Width: 5, Height: 10, Speed: 1000},
		Bunkers: InvadersBunkers{
			Count:   4,
			Width:   80,
			Height:  64,
			Spacing: 240,
		},
		Difficulty: defaultDifficulty(550),
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:         SnakeGrid{Cols: 32, Rows: 18, Cell: 50},
		StepInterval: 0.2,
		Difficulty:   defaultDifficulty(30),
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Field:     FieldConfig{Width: 1600, Height: 900},
		AIEnabled: true,
	}
}
