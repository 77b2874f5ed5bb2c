package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games simulate in their own fixed pixel space; the screen size is only
// used by the platform to fit that space into the terminal.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Side identifies a player in two-sided games.
type Side int

const (
	SideNone Side = iota
	SideLeft      // Pong left paddle, Tic-Tac-Toe X
	SideRight     // Pong right paddle, Tic-Tac-Toe O
)

// String returns the name stored with round results.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// GameStatus is what the platform needs to know about a running game.
type GameStatus struct {
	Score    int  // Current score of the human player
	GameOver bool // Round has ended (win, loss or draw)
	Paused   bool

	// Two-sided games fill these in.
	Winner     Side
	Draw       bool
	LeftScore  int
	RightScore int
}
