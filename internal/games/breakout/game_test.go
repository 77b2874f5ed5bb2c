package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

const frame = 1.0 / 60.0

// newGame starts a round with the given block layout, or full rows when empty.
func newGame(layout ...string) *Game {
	g := New()
	g.next.Blocks.Layout = layout
	g.Reset(core.DefaultConfig())
	return g
}

func step(g *Game, in *core.InputState, dt float64) {
	g.Update(in, dt)
	in.ResetTransitions()
}

func press(g *Game, in *core.InputState, key core.KeyID, dt float64) {
	in.SetKey(key, true)
	step(g, in, dt)
	in.SetKey(key, false)
	in.ResetTransitions()
}

func TestFullRows(t *testing.T) {
	g := New()
	blocks := g.Blocks()
	if len(blocks) != 96 {
		t.Fatalf("expected 3 rows of 32 blocks, got %d", len(blocks))
	}
	first := blocks[0]
	if first.Pos != core.V(2, 2) || first.Size != core.V(48, 48) {
		t.Errorf("first block = %v %v", first.Pos, first.Size)
	}
	last := blocks[len(blocks)-1]
	if last.Pos != core.V(31*50+2, 2*50+2) {
		t.Errorf("last block at %v", last.Pos)
	}
}

func TestParseLayout(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Blocks
	blocks := ParseLayout([]string{"#.2", ".H"}, cfg, 10)

	tests := []struct {
		pos    core.Vec2
		points int
		hp     int
	}{
		{core.V(2, 2), 10, 1},
		{core.V(102, 2), 20, 1},
		{core.V(52, 52), 20, 2},
	}
	if len(blocks) != len(tests) {
		t.Fatalf("got %d blocks, expected %d", len(blocks), len(tests))
	}
	for i, tc := range tests {
		b := blocks[i]
		if b.Pos != tc.pos || b.Points != tc.points || b.HP != tc.hp {
			t.Errorf("block %d = %v pts=%d hp=%d, expected %v pts=%d hp=%d",
				i, b.Pos, b.Points, b.HP, tc.pos, tc.points, tc.hp)
		}
	}
	if !blocks[2].Hard() || blocks[0].Hard() {
		t.Error("only H blocks are hard")
	}
}

func TestSideWallBackSolve(t *testing.T) {
	g := newGame("#")
	in := core.NewInputState()
	g.SetBall(core.V(1545, 450), core.V(1000, 0))

	step(g, in, 0.01)

	snap := g.Snapshot()
	if snap.BallVel.X != -1000 {
		t.Errorf("vx = %v, expected -1000", snap.BallVel.X)
	}
	if snap.Ball.X > 1550 {
		t.Errorf("ball ended past the wall at %v", snap.Ball.X)
	}
	if math.Abs(snap.Ball.X-1545) > 1e-9 {
		t.Errorf("ball x = %v, expected 1545 after reapplying the remainder", snap.Ball.X)
	}
}

func TestTopWallPlainFlip(t *testing.T) {
	g := newGame("#")
	in := core.NewInputState()
	g.SetBall(core.V(800, 2), core.V(0, -300))

	step(g, in, frame)

	snap := g.Snapshot()
	if snap.BallVel.Y != 300 {
		t.Errorf("vy = %v, expected 300", snap.BallVel.Y)
	}
	// No back-solve: the ball keeps its overshoot this frame
	if snap.Ball.Y >= 0 {
		t.Errorf("ball y = %v, expected the raw overshoot", snap.Ball.Y)
	}
}

func TestBlockHitKillsAndFilters(t *testing.T) {
	g := newGame("#.#")
	in := core.NewInputState()
	g.SetBall(core.V(10, 56), core.V(0, -300))

	step(g, in, 1.0/30.0)

	if got := len(g.Blocks()); got != 1 {
		t.Fatalf("expected the hit block filtered out, %d left", got)
	}
	if g.Blocks()[0].Pos != core.V(102, 2) {
		t.Errorf("wrong block removed, left %v", g.Blocks()[0].Pos)
	}
	if g.State().Score != 10 {
		t.Errorf("score = %d, expected 10", g.State().Score)
	}
	if g.Snapshot().BallVel.Y <= 0 {
		t.Error("ball moving toward the block should reflect")
	}

	list := render.NewList()
	g.Render(list)
	for _, cmd := range list.Commands() {
		if cmd.X == 2 && cmd.Y == 2 && cmd.W == 48 {
			t.Fatal("dead block still rendered")
		}
	}
}

func TestHardBlockTakesTwoHits(t *testing.T) {
	g := newGame("H.#")
	in := core.NewInputState()

	g.SetBall(core.V(10, 56), core.V(0, -300))
	step(g, in, 1.0/30.0)
	if len(g.Blocks()) != 2 || g.Blocks()[0].HP != 1 {
		t.Fatalf("hard block should survive one hit: %+v", g.Blocks())
	}

	g.SetBall(core.V(10, 56), core.V(0, -300))
	step(g, in, 1.0/30.0)
	if len(g.Blocks()) != 1 {
		t.Fatal("hard block should die on the second hit")
	}
	if g.State().Score != 20 {
		t.Errorf("score = %d, expected 20", g.State().Score)
	}
}

func TestGlancingContactIsOneHit(t *testing.T) {
	g := newGame(".H")
	in := core.NewInputState()
	g.SetBall(core.V(5, 42), core.V(300, -300))

	step(g, in, frame)
	if len(g.Blocks()) != 1 || g.Blocks()[0].HP != 1 {
		t.Fatalf("first contact should cost one hit: %+v", g.Blocks())
	}
	if g.Snapshot().BallVel.X != -300 {
		t.Fatalf("vx = %v, expected -300 off the block's left face", g.Snapshot().BallVel.X)
	}

	// Still overlapping while moving away
	step(g, in, frame)
	if len(g.Blocks()) != 1 || g.Blocks()[0].HP != 1 {
		t.Errorf("overlap while leaving should not strike again: %+v", g.Blocks())
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d, expected 0", g.State().Score)
	}
}

func TestPaddleFlipsOnlyDownward(t *testing.T) {
	tests := []struct {
		name     string
		vy       float64
		expectVY float64
	}{
		{"falling", 300, -300},
		{"rising", -300, -300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame("#")
			in := core.NewInputState()
			g.SetBall(core.V(780, 810), core.V(0, tc.vy))
			step(g, in, frame)
			if got := g.Snapshot().BallVel.Y; got != tc.expectVY {
				t.Errorf("vy = %v, expected %v", got, tc.expectVY)
			}
		})
	}
}

func TestPaddleClamped(t *testing.T) {
	g := newGame("#")
	in := core.NewInputState()
	in.SetKey(core.KeyD, true)
	for i := 0; i < 60; i++ {
		g.SetBall(core.V(800, 450), core.V(0, 0))
		step(g, in, frame)
	}
	if x := g.Snapshot().Paddle.X; x != 1400 {
		t.Errorf("paddle x = %v, expected 1400", x)
	}
}

func TestLostBallServesAfterDelay(t *testing.T) {
	g := newGame("#")
	in := core.NewInputState()
	g.SetBall(core.V(800, 899), core.V(0, 300))

	step(g, in, frame)
	snap := g.Snapshot()
	if snap.Lives != 2 || snap.State != StateServe {
		t.Fatalf("lives=%d state=%s, expected 2 serve", snap.Lives, snap.State)
	}
	if snap.Ball != core.V(800, 450) {
		t.Errorf("ball should return to center, at %v", snap.Ball)
	}

	step(g, in, 0.6)
	if g.Snapshot().Ball != snap.Ball {
		t.Error("ball moved during the serve delay")
	}
	step(g, in, 0.6)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state = %s, expected playing", g.Snapshot().State)
	}
}

func TestGameOverWaitsForNewRound(t *testing.T) {
	g := newGame("#")
	in := core.NewInputState()
	g.lives = 1
	g.SetBall(core.V(800, 899), core.V(0, 300))
	step(g, in, frame)

	if !g.State().GameOver {
		t.Fatal("expected game over at zero lives")
	}

	press(g, in, core.KeyD, frame)
	if !g.State().GameOver {
		t.Error("terminal state should ignore steering")
	}
	press(g, in, core.KeyP, frame)
	if g.State().Paused {
		t.Error("terminal state cannot be paused")
	}

	press(g, in, core.KeyEnter, frame)
	if g.State().GameOver || g.Snapshot().Lives != 3 {
		t.Errorf("Enter should start a new round: %+v", g.Snapshot())
	}
}

func TestClearingBlocksWins(t *testing.T) {
	g := newGame("#")
	in := core.NewInputState()
	g.SetBall(core.V(10, 56), core.V(0, -300))
	step(g, in, 1.0/30.0)

	if g.Snapshot().State != StateWin || !g.State().GameOver {
		t.Errorf("expected win, got %+v", g.Snapshot())
	}
}

func TestPauseFreezes(t *testing.T) {
	g := New()
	in := core.NewInputState()
	press(g, in, core.KeyP, frame)
	before := g.Snapshot()

	for i := 0; i < 10; i++ {
		step(g, in, frame)
	}
	after := g.Snapshot()
	if after.Hash() != before.Hash() {
		t.Error("state changed while paused")
	}

	press(g, in, core.KeyP, frame)
	if g.State().Paused {
		t.Error("P should unpause")
	}
}

func TestRestartEqualsFresh(t *testing.T) {
	g := New()
	in := core.NewInputState()
	in.SetKey(core.KeyA, true)
	for i := 0; i < 90; i++ {
		step(g, in, frame)
	}
	in.SetKey(core.KeyA, false)

	// Restart also cancels a pending serve
	g.SetBall(core.V(800, 899), core.V(0, 300))
	step(g, in, frame)
	press(g, in, core.KeyR, frame)

	got, fresh := g.Snapshot(), New().Snapshot()
	if got.Hash() != fresh.Hash() {
		t.Errorf("after restart %+v\nfresh %+v", got, fresh)
	}
	if g.machine.Pending() != nil {
		t.Error("restart should drop the pending timeout")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		in := core.NewInputState()
		for i := 0; i < 600; i++ {
			in.SetKey(core.KeyD, i%50 < 25)
			in.SetKey(core.KeyA, i%50 >= 25)
			step(g, in, frame)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("determinism failed: %d vs %d", s1.Hash(), s2.Hash())
	}
}
