package breakout

import (
	"fmt"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

// GameState constants
const (
	StateServe    = "serve"    // Ball waiting at center after a miss
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Every block cleared
)

// serveDelay is the pause after a lost ball, in seconds.
const serveDelay = 1.0

// HUD layout
const (
	hudPixel = 4
	hudX     = 10
)

// Game implements the Breakout game logic.
type Game struct {
	cfg  config.BreakoutConfig
	next config.BreakoutConfig

	machine core.Machine[string]
	paused  bool

	paddle core.Entity
	ball   core.Entity
	blocks []Block

	score   int
	lives   int
	elapsed float64

	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
}

// New creates a new Breakout game instance.
func New() *Game {
	cfg := config.DefaultBreakoutConfig()
	g := &Game{cfg: cfg, next: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Size returns the playfield in pixels.
func (g *Game) Size() core.Vec2 {
	return core.V(g.cfg.Field.Width, g.cfg.Field.Height)
}

// Configure loads YAML config for the next round.
func (g *Game) Configure(opts config.Options) error {
	cfg, err := config.LoadBreakout(opts)
	g.next = cfg
	return err
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.next
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	f := g.cfg.Field
	pw, ph := g.cfg.Paddle.Width, g.cfg.Paddle.Height
	g.paddle = core.NewEntity(core.V(f.Width/2-pw/2, f.Height-ph), core.V(pw, ph))
	g.placeBall()
	g.blocks = buildBlocks(g.cfg)

	g.machine = core.NewMachine(StatePlaying)
	g.paused = false
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.elapsed = 0
}

// placeBall puts the ball at the field center with its serve velocity.
func (g *Game) placeBall() {
	size := g.cfg.Ball.Size
	g.ball = core.NewEntity(core.V(g.cfg.Field.Width/2, g.cfg.Field.Height/2), core.V(size, size))
	g.ball.Vel = core.V(g.cfg.Ball.VelocityX, g.cfg.Ball.VelocityY)
	g.applySpeed()
}

// applySpeed rescales the ball to the current difficulty without changing direction.
func (g *Game) applySpeed() {
	base := core.V(g.cfg.Ball.VelocityX, g.cfg.Ball.VelocityY).Len()
	speed := g.difficulty.Speed(base, g.score, g.elapsed)
	g.ball.Vel = g.ball.Vel.Normalize().Scale(speed)
}

func (g *Game) terminal() bool {
	s := g.machine.State()
	return s == StateGameOver || s == StateWin
}

// Update advances the game by dt seconds.
func (g *Game) Update(in *core.InputState, dt float64) {
	if in.WasKeyPressed(core.KeyR) {
		g.Reset(g.runtime)
		return
	}

	if in.WasKeyPressed(core.KeyP) && !g.terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	if g.terminal() {
		if in.WasKeyPressed(core.KeyEnter) || in.WasKeyPressed(core.KeySpace) {
			g.Reset(g.runtime)
		}
		return
	}

	if !g.machine.Advance(dt) {
		return
	}
	g.elapsed += dt

	g.updatePaddle(in, dt)
	g.updateBall(dt)

	g.blocks = compact(g.blocks)
	if len(g.blocks) == 0 {
		g.machine.Set(StateWin)
	}
}

func (g *Game) updatePaddle(in *core.InputState, dt float64) {
	speed := g.cfg.Paddle.Speed
	g.paddle.Vel = core.Vec2{}
	if in.IsKeyDown(core.KeyA) {
		g.paddle.Vel.X -= speed
	}
	if in.IsKeyDown(core.KeyD) {
		g.paddle.Vel.X += speed
	}
	g.paddle.Integrate(dt)
	g.paddle.Pos.X = core.ClampF(g.paddle.Pos.X, 0, g.cfg.Field.Width-g.paddle.Size.X)
}

func (g *Game) updateBall(dt float64) {
	f := g.cfg.Field
	b := &g.ball

	// Side walls back-solve the crossing; top and bottom do not
	b.Pos.X, b.Vel.X, _ = core.Reflect1D(b.Pos.X, b.Vel.X, dt, 0, f.Width-b.Size.X)

	b.Pos.Y += b.Vel.Y * dt
	if b.Vel.Y < 0 && b.Pos.Y <= 0 {
		b.Vel.Y = -b.Vel.Y
	}
	if b.Pos.Y >= f.Height {
		g.loseBall()
		return
	}

	if b.Vel.Y > 0 && b.Collides(g.paddle) {
		b.Vel.Y = -b.Vel.Y
	}

	for i := range g.blocks {
		blk := &g.blocks[i]
		if !bounceOffBlock(b, blk.Entity) {
			continue
		}
		blk.HP--
		if blk.HP <= 0 {
			blk.Alive = false
			g.score += blk.Points
			g.applySpeed()
		}
	}
}

func (g *Game) loseBall() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.machine.Set(StateGameOver)
		return
	}
	g.placeBall()
	g.machine.Set(StateServe)
	g.machine.After(serveDelay, StatePlaying)
}

// Render draws blocks, paddle, ball and the HUD.
func (g *Game) Render(dst *render.List) {
	for _, blk := range g.blocks {
		if blk.Hard() {
			dst.PushRectColor(blk.Rect(), core.ColorLightGrey)
		} else {
			dst.PushRect(blk.Rect())
		}
	}
	dst.PushRectColor(g.paddle.Rect(), core.ColorWhite)
	dst.PushRectColor(g.ball.Rect(), core.ColorWhite)

	hud := render.TextStyle{PixelSize: hudPixel, Color: core.ColorGrey}
	hudY := float64(g.cfg.Blocks.Rows)*g.cfg.Blocks.Size + 20
	dst.PushString(fmt.Sprintf("Score %d  Lives %d", g.score, g.lives), core.V(hudX, hudY), hud)

	cx, cy := g.cfg.Field.Width/2, g.cfg.Field.Height/2-100
	banner := render.DefaultTextStyle()
	banner.Outline = true
	switch {
	case g.machine.State() == StateWin:
		dst.PushStringCentered("You win", cx, cy, banner)
	case g.machine.State() == StateGameOver:
		dst.PushStringCentered("Game over", cx, cy, banner)
	case g.paused:
		dst.PushStringCentered("Paused", cx, cy, banner)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameStatus {
	return core.GameStatus{
		Score:    g.score,
		GameOver: g.terminal(),
		Paused:   g.paused,
	}
}

// Blocks returns the live blocks.
func (g *Game) Blocks() []Block {
	return g.blocks
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
