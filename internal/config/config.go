// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// Options selects where a game's config comes from and how it is tuned.
// The zero value means the default search order and no preset.
type Options struct {
	Path   string           // Custom YAML path; empty searches the standard locations
	Preset DifficultyPreset // Empty leaves the loaded values untouched
}

// FieldConfig is a game's logical pixel space.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BoxConfig is a moving entity's size and speed.
type BoxConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Pixels per second
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     BoxConfig        `yaml:"paddle"`
	Ball       BoxConfig        `yaml:"ball"`
	Rules      PongRules        `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongRules defines scoring and opponent settings for Pong.
type PongRules struct {
	WinScore        int     `yaml:"win_score"`
	ScoreTimeout    float64 `yaml:"score_timeout"`     // Seconds shown after a point
	GameOverTimeout float64 `yaml:"game_over_timeout"` // Seconds before returning to start
	RightAI         bool    `yaml:"right_ai"`          // CPU drives the right paddle
}

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     BoxConfig        `yaml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball"`
	Blocks     BreakoutBlocks   `yaml:"blocks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutBall defines ball parameters for Breakout.
type BreakoutBall struct {
	Size      float64 `yaml:"size"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

// BreakoutBlocks defines the block grid for Breakout.
// Layout rows use '#' for a block, '1'-'9' for a worth multiplier, 'H' for a
// two-hit block and '.' for a gap. When empty, Rows full rows are used.
type BreakoutBlocks struct {
	Size    float64  `yaml:"size"`
	Padding float64  `yaml:"padding"`
	Rows    int      `yaml:"rows"`
	Layout  []string `yaml:"layout"`
}

// BreakoutGameplay defines scoring and lives for Breakout.
type BreakoutGameplay struct {
	Lives          int `yaml:"lives"`
	PointsPerBlock int `yaml:"points_per_block"`
}

// InvadersConfig contains all configuration for the Invaders game.
type InvadersConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     InvadersPlayer   `yaml:"player"`
	Enemies    InvadersEnemies  `yaml:"enemies"`
	Bullet     BoxConfig        `yaml:"bullet"`
	Bunkers    InvadersBunkers  `yaml:"bunkers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersPlayer defines the player's ship.
type InvadersPlayer struct {
	BoxConfig `yaml:",inline"`
	Health    int `yaml:"health"`
}

// InvadersEnemies defines the marching formation.
type InvadersEnemies struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	StepInterval  float64 `yaml:"step_interval"` // Seconds between formation steps
	StepSize      float64 `yaml:"step_size"`
	LeftLimit     float64 `yaml:"left_limit"`  // Formation offset that turns it right
	RightLimit    float64 `yaml:"right_limit"` // Formation offset that drops it and turns left
	SplatDuration float64 `yaml:"splat_duration"`
	PointsPerKill int     `yaml:"points_per_kill"`
}

// InvadersBunkers defines the shields above the player.
type InvadersBunkers struct {
	Count   int     `yaml:"count"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid         SnakeGrid        `yaml:"grid"`
	StepInterval float64          `yaml:"step_interval"` // Seconds per tile
	Difficulty   DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the board for Snake.
type SnakeGrid struct {
	Cols int     `yaml:"cols"`
	Rows int     `yaml:"rows"`
	Cell float64 `yaml:"cell"`
}

// TicTacToeConfig contains all configuration for the Tic-Tac-Toe game.
type TicTacToeConfig struct {
	Field     FieldConfig `yaml:"field"`
	AIEnabled bool        `yaml:"ai_enabled"` // CPU plays O
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines how much parameters change at max difficulty.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed grows to base * (1 + this)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// SpeedFactorForPreset returns the multiplier applied to base speeds.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
