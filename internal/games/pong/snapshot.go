package pong

import "github.com/vovakirdan/quad-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	State      string
	Pending    bool // A timeout is counting down
	Left       core.Vec2
	Right      core.Vec2
	Ball       core.Vec2
	BallVel    core.Vec2
	LeftScore  int
	RightScore int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:      stateName(g.machine.State()),
		Pending:    g.machine.Pending() != nil,
		Left:       g.left.Pos,
		Right:      g.right.Pos,
		Ball:       g.ball.Pos,
		BallVel:    g.ball.Vel,
		LeftScore:  g.leftScore,
		RightScore: g.rightScore,
	}
}

// SetBall places the ball, for tests that stage a specific collision.
func (g *Game) SetBall(pos, vel core.Vec2) {
	g.ball.Pos = pos
	g.ball.Vel = vel
}
