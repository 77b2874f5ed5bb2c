package breakout

import (
	"math"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

// Snapshot contains the complete game state for replay and determinism tests.
type Snapshot struct {
	State   string
	Paused  bool
	Paddle  core.Vec2
	Ball    core.Vec2
	BallVel core.Vec2
	Score   int
	Lives   int

	// Live blocks, each as 3 values: X, Y, HP
	BlockData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	data := make([]float64, 0, len(g.blocks)*3)
	for _, b := range g.blocks {
		data = append(data, b.Pos.X, b.Pos.Y, float64(b.HP))
	}
	return Snapshot{
		State:     g.machine.State(),
		Paused:    g.paused,
		Paddle:    g.paddle.Pos,
		Ball:      g.ball.Pos,
		BallVel:   g.ball.Vel,
		Score:     g.score,
		Lives:     g.lives,
		BlockData: data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(len(snap.State))
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	for _, v := range []float64{
		snap.Paddle.X, snap.Paddle.Y,
		snap.Ball.X, snap.Ball.Y,
		snap.BallVel.X, snap.BallVel.Y,
		float64(snap.Score), float64(snap.Lives),
	} {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}
	if snap.Paused {
		h = h*31 + 1
	}
	return h
}

// SetBall places the ball, for tests that stage a specific collision.
func (g *Game) SetBall(pos, vel core.Vec2) {
	g.ball.Pos = pos
	g.ball.Vel = vel
}
