package pong

import (
	"testing"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

const frame = 1.0 / 60.0

// step runs one frame and clears this frame's transitions.
func step(g *Game, in *core.InputState, dt float64) {
	g.Update(in, dt)
	in.ResetTransitions()
}

// press taps a key for exactly one frame.
func press(g *Game, in *core.InputState, key core.KeyID, dt float64) {
	in.SetKey(key, true)
	step(g, in, dt)
	in.SetKey(key, false)
	in.ResetTransitions()
}

func startedGame(t *testing.T) (*Game, *core.InputState) {
	t.Helper()
	g := New()
	in := core.NewInputState()
	press(g, in, core.KeySpace, frame)
	if _, ok := g.Phase().(Playing); !ok {
		t.Fatalf("expected Playing after a key, got %T", g.Phase())
	}
	return g, in
}

func TestStartWaitsForKey(t *testing.T) {
	g := New()
	in := core.NewInputState()
	for i := 0; i < 10; i++ {
		step(g, in, frame)
	}
	if _, ok := g.Phase().(Start); !ok {
		t.Fatalf("expected Start without input, got %T", g.Phase())
	}

	snap := g.Snapshot()
	if snap.Left != core.V(0, 350) || snap.Right != core.V(1550, 350) {
		t.Errorf("paddles at %v / %v", snap.Left, snap.Right)
	}
	if snap.Ball != core.V(775, 425) {
		t.Errorf("ball at %v, expected field center", snap.Ball)
	}
	if snap.BallVel.X >= 0 {
		t.Errorf("serve should head left, vel %v", snap.BallVel)
	}
}

func TestScoreTimeoutThenResume(t *testing.T) {
	g, in := startedGame(t)
	g.SetBall(core.V(-10, 400), core.V(-700, 0))

	step(g, in, frame)
	if s, ok := g.Phase().(ScoreUpdate); !ok || s.Right != 1 {
		t.Fatalf("expected ScoreUpdate{Right:1}, got %#v", g.Phase())
	}
	if g.Snapshot().BallVel.X <= 0 {
		t.Error("ball should be sent back toward the scorer")
	}

	step(g, in, frame)
	if g.rightScore != 1 || g.leftScore != 0 {
		t.Fatalf("score %d - %d", g.leftScore, g.rightScore)
	}
	if g.machine.Pending() == nil {
		t.Fatal("score should schedule a resume timeout")
	}

	// Input is ignored while the timeout counts down
	ball := g.Snapshot().Ball
	step(g, in, 0.6)
	if g.Snapshot().Ball != ball {
		t.Error("ball moved during the score timeout")
	}
	step(g, in, 0.6)
	if _, ok := g.Phase().(Playing); !ok {
		t.Fatalf("expected Playing after the timeout, got %T", g.Phase())
	}
	if g.rightScore != 1 {
		t.Errorf("score applied twice: %d", g.rightScore)
	}
}

func TestWinEndsMatchAndReturnsToStart(t *testing.T) {
	g, in := startedGame(t)

	for point := 0; point < 2; point++ {
		g.SetBall(core.V(1590, 400), core.V(700, 0))
		step(g, in, frame) // ScoreUpdate
		step(g, in, frame) // apply
		if point == 0 {
			step(g, in, 2) // resume
		}
	}

	status := g.State()
	if !status.GameOver || status.Winner != core.SideLeft {
		t.Fatalf("expected left to win, got %+v", status)
	}

	list := render.NewList()
	g.Render(list)
	if list.Len() <= 3 {
		t.Error("game over banner not rendered")
	}

	step(g, in, frame) // schedules the 3s timeout
	for i := 0; i < 3; i++ {
		step(g, in, 1)
		if _, ok := g.Phase().(GameOver); !ok {
			t.Fatalf("left GameOver early at %ds", i+1)
		}
	}
	step(g, in, 1)
	if _, ok := g.Phase().(Start); !ok {
		t.Fatalf("expected Start after game over, got %T", g.Phase())
	}
	if g.leftScore != 0 || g.rightScore != 0 {
		t.Error("Start should clear scores")
	}
}

func TestPaddleReflectsOnlyTowardIt(t *testing.T) {
	tests := []struct {
		name     string
		vel      core.Vec2
		expectVX float64
	}{
		{"moving toward", core.V(-700, 0), 700},
		{"moving away", core.V(700, 0), 700},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, in := startedGame(t)
			g.SetBall(core.V(30, 400), tc.vel)
			step(g, in, frame)
			if got := g.Snapshot().BallVel.X; got != tc.expectVX {
				t.Errorf("vx = %v, expected %v", got, tc.expectVX)
			}
		})
	}
}

func TestTopWallReflects(t *testing.T) {
	g, in := startedGame(t)
	g.SetBall(core.V(800, -5), core.V(-100, -100))
	step(g, in, frame)
	if got := g.Snapshot().BallVel.Y; got != 100 {
		t.Errorf("vy = %v, expected 100", got)
	}
}

func TestPaddlesClampedToField(t *testing.T) {
	g, in := startedGame(t)
	in.SetKey(core.KeyW, true)
	for i := 0; i < 120; i++ {
		step(g, in, frame)
	}
	if y := g.Snapshot().Left.Y; y != 0 {
		t.Errorf("left paddle y = %v, expected clamped to 0", y)
	}
}

func TestPauseStepsBall(t *testing.T) {
	g, in := startedGame(t)
	press(g, in, core.KeyP, frame)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.Snapshot()
	step(g, in, frame)
	if g.Snapshot().Ball != before.Ball {
		t.Error("ball moved while paused")
	}

	press(g, in, core.KeyRight, 0.1)
	after := g.Snapshot()
	expected := before.Ball.Add(before.BallVel.Scale(0.1))
	if after.Ball != expected {
		t.Errorf("step forward: ball %v, expected %v", after.Ball, expected)
	}

	press(g, in, core.KeyP, frame)
	if _, ok := g.Phase().(Playing); !ok {
		t.Errorf("P should unpause, got %T", g.Phase())
	}
}

func TestRestartEqualsFresh(t *testing.T) {
	g, in := startedGame(t)
	in.SetKey(core.KeyS, true)
	for i := 0; i < 50; i++ {
		step(g, in, frame)
	}
	in.SetKey(core.KeyS, false)
	press(g, in, core.KeyR, frame)

	if got, expected := g.Snapshot(), New().Snapshot(); got != expected {
		t.Errorf("after restart %+v\nfresh %+v", got, expected)
	}
}

func TestDeterminism(t *testing.T) {
	g1, in1 := startedGame(t)
	g2, in2 := startedGame(t)

	for i := 0; i < 300; i++ {
		down := i%40 < 20
		in1.SetKey(core.KeyW, down)
		in2.SetKey(core.KeyW, down)
		step(g1, in1, frame)
		step(g2, in2, frame)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestRenderEntitiesLast(t *testing.T) {
	g := New()
	list := render.NewList()
	g.Render(list)

	cmds := list.Commands()
	if len(cmds) < 3 {
		t.Fatalf("only %d commands", len(cmds))
	}
	ball := cmds[len(cmds)-1]
	if ball.X != 775 || ball.Y != 425 || ball.W != 50 || ball.H != 50 {
		t.Errorf("ball command = %+v", ball)
	}
	if ball.Fill() != core.ColorWhite {
		t.Errorf("entities should be white quads, got %+v", ball.Fill())
	}
}
