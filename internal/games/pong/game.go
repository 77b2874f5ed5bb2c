// Package pong implements a classic Pong game with CPU opponent.
// Player 1 controls the left paddle, CPU controls the right paddle.
package pong

import (
	"fmt"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

// Text layout
const (
	bannerY = 100
)

// Game implements the Pong game logic.
type Game struct {
	cfg  config.PongConfig // Active for the current round
	next config.PongConfig // Applied at the next Reset

	machine core.Machine[State]
	left    core.Entity
	right   core.Entity
	ball    core.Entity

	leftScore  int
	rightScore int
	elapsed    float64

	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
}

// New creates a new Pong game instance.
func New() *Game {
	cfg := config.DefaultPongConfig()
	g := &Game{cfg: cfg, next: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Size returns the playfield in pixels.
func (g *Game) Size() core.Vec2 {
	return core.V(g.cfg.Field.Width, g.cfg.Field.Height)
}

// Configure loads YAML config for the next round.
func (g *Game) Configure(opts config.Options) error {
	cfg, err := config.LoadPong(opts)
	g.next = cfg
	return err
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.next
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.machine = core.NewMachine[State](Start{})
	g.serve()
}

// serve places paddles and ball at their start positions and clears scores.
func (g *Game) serve() {
	f := g.cfg.Field
	pw, ph := g.cfg.Paddle.Width, g.cfg.Paddle.Height
	paddleY := f.Height/2 - ph/2

	g.left = core.NewEntity(core.V(0, paddleY), core.V(pw, ph))
	g.right = core.NewEntity(core.V(f.Width-pw, paddleY), core.V(pw, ph))

	g.ball = core.NewEntity(g.ballHome(), core.V(g.cfg.Ball.Width, g.cfg.Ball.Height))
	g.ball.Vel = core.V(-3, 1).Normalize().Scale(g.cfg.Ball.Speed)

	g.leftScore = 0
	g.rightScore = 0
	g.elapsed = 0
}

func (g *Game) ballHome() core.Vec2 {
	return core.V(
		g.cfg.Field.Width/2-g.cfg.Ball.Width/2,
		g.cfg.Field.Height/2-g.cfg.Ball.Height/2,
	)
}

// Update advances the game by dt seconds.
func (g *Game) Update(in *core.InputState, dt float64) {
	if in.WasKeyPressed(core.KeyR) {
		g.Reset(g.runtime)
		return
	}

	// A pending timeout owns the frame until it elapses.
	if !g.machine.Advance(dt) {
		return
	}

	switch s := g.machine.State().(type) {
	case Start:
		g.serve()
		if in.WasKeyPressed(core.KeyAny) {
			g.machine.Set(Playing{})
		}

	case Paused:
		if in.WasKeyPressed(core.KeyP) {
			g.machine.Set(Playing{})
		}
		if in.WasKeyPressed(core.KeyRight) {
			g.ball.Integrate(dt)
		}
		if in.WasKeyPressed(core.KeyLeft) {
			g.ball.Integrate(-dt)
		}

	case ScoreUpdate:
		g.leftScore += s.Left
		g.rightScore += s.Right
		switch win := g.cfg.Rules.WinScore; {
		case g.leftScore >= win:
			g.machine.Set(GameOver{Winner: core.SideLeft})
		case g.rightScore >= win:
			g.machine.Set(GameOver{Winner: core.SideRight})
		default:
			g.machine.After(g.cfg.Rules.ScoreTimeout, Playing{})
		}

	case GameOver:
		g.machine.After(g.cfg.Rules.GameOverTimeout, Start{})

	case Playing:
		if in.WasKeyPressed(core.KeyP) {
			g.machine.Set(Paused{})
			return
		}
		g.elapsed += dt
		g.play(in, dt)

	default:
		panic(fmt.Sprintf("pong: unreachable state %T", s))
	}
}

// play runs one frame of paddles, ball and scoring.
func (g *Game) play(in *core.InputState, dt float64) {
	speed := g.cfg.Paddle.Speed
	f := g.cfg.Field

	g.left.Vel = core.Vec2{}
	if in.IsKeyDown(core.KeyW) {
		g.left.Vel.Y = -speed
	}
	if in.IsKeyDown(core.KeyS) {
		g.left.Vel.Y = speed
	}

	g.right.Vel = core.Vec2{}
	if g.cfg.Rules.RightAI {
		if g.ball.Pos.Y < g.right.Pos.Y {
			g.right.Vel.Y = -speed
		} else {
			g.right.Vel.Y = speed
		}
	} else {
		if in.IsKeyDown(core.KeyUp) {
			g.right.Vel.Y = -speed
		}
		if in.IsKeyDown(core.KeyDown) {
			g.right.Vel.Y = speed
		}
	}

	// Ball leaving a side scores for the other one
	if g.ball.Vel.X < 0 && g.ball.Pos.X < 0 {
		g.rebound()
		g.machine.Set(ScoreUpdate{Right: 1})
	}
	if g.ball.Vel.X > 0 && g.ball.Pos.X+g.ball.Size.X > f.Width {
		g.rebound()
		g.machine.Set(ScoreUpdate{Left: 1})
	}

	// Paddles only reflect a ball moving toward them
	if g.ball.Vel.X < 0 && g.ball.Collides(g.left) {
		g.ball.Vel.X = -g.ball.Vel.X
	}
	if g.ball.Vel.X > 0 && g.ball.Collides(g.right) {
		g.ball.Vel.X = -g.ball.Vel.X
	}

	// Top and bottom walls, plain reflection
	if (g.ball.Vel.Y < 0 && g.ball.Pos.Y < 0) ||
		(g.ball.Vel.Y > 0 && g.ball.Pos.Y+g.ball.Size.Y > f.Height) {
		g.ball.Vel.Y = -g.ball.Vel.Y
	}

	g.ball.Integrate(dt)
	for _, p := range []*core.Entity{&g.left, &g.right} {
		p.Integrate(dt)
		p.Pos.Y = core.ClampF(p.Pos.Y, 0, f.Height-p.Size.Y)
	}
}

// rebound recenters the ball and sends it back toward the side that scored.
func (g *Game) rebound() {
	g.ball.Pos = g.ballHome()
	speed := g.difficulty.Speed(g.cfg.Ball.Speed, g.leftScore+g.rightScore, g.elapsed)
	g.ball.Vel = g.ball.Vel.Normalize().Scale(speed)
	g.ball.Vel.X = -g.ball.Vel.X
}

// Render draws the banner for the current state and every entity.
func (g *Game) Render(dst *render.List) {
	cx := g.cfg.Field.Width / 2
	st := render.DefaultTextStyle()

	switch s := g.machine.State().(type) {
	case Start:
		dst.PushStringCentered("Press a key to start", cx, bannerY, st)
	case GameOver:
		dst.PushStringCentered(fmt.Sprintf("Player %d won", playerNumber(s.Winner)), cx, bannerY, st)
	default:
		dst.PushStringCentered(fmt.Sprintf("%d - %d", g.leftScore, g.rightScore), cx, bannerY, st)
	}

	for _, e := range []core.Entity{g.left, g.right, g.ball} {
		dst.PushRect(e.Rect())
	}
}

func playerNumber(s core.Side) int {
	if s == core.SideRight {
		return 2
	}
	return 1
}

// State returns the current game state.
func (g *Game) State() core.GameStatus {
	status := core.GameStatus{
		Score:      g.leftScore,
		LeftScore:  g.leftScore,
		RightScore: g.rightScore,
	}
	switch s := g.machine.State().(type) {
	case Paused:
		status.Paused = true
	case GameOver:
		status.GameOver = true
		status.Winner = s.Winner
	}
	return status
}

// Phase returns the active state.
func (g *Game) Phase() State {
	return g.machine.State()
}

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
