package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	CoinX    int
	CoinY    int
	Timer    float64
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Score:    g.score,
		SnakeLen: len(g.snake),
		HeadX:    g.snake[0].X,
		HeadY:    g.snake[0].Y,
		Dir:      g.direction,
		CoinX:    g.coin.X,
		CoinY:    g.coin.Y,
		Timer:    g.timer,
		State:    state,
	}
}
