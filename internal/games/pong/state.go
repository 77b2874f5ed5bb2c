package pong

import "github.com/vovakirdan/quad-arcade/internal/core"

// State is one phase of a Pong match.
type State interface {
	isState()
}

// Start waits for any key with the entities at their serve positions.
type Start struct{}

// Playing runs paddles, ball and scoring.
type Playing struct{}

// Paused freezes play; Left and Right step the ball one frame back or forward.
type Paused struct{}

// ScoreUpdate adds the deltas to each side, then resumes or ends the match.
type ScoreUpdate struct {
	Left, Right int
}

// GameOver shows the winner until its timeout returns to Start.
type GameOver struct {
	Winner core.Side
}

func (Start) isState()       {}
func (Playing) isState()     {}
func (Paused) isState()      {}
func (ScoreUpdate) isState() {}
func (GameOver) isState()    {}

// stateName is used in snapshots.
func stateName(s State) string {
	switch s.(type) {
	case Start:
		return "start"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case ScoreUpdate:
		return "score_update"
	case GameOver:
		return "game_over"
	default:
		panic("pong: unreachable state")
	}
}
