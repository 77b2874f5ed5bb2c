// Package invaders implements a Space Invaders style shooter.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

// Visual constants
var (
	background  = core.RGB8(28, 28, 28)
	playerColor = core.ColorGreen
	splatColor  = core.ColorLightGrey
)

// altShrink narrows enemies on their second animation frame.
const altShrink = 8

// Splat marks a killed enemy for a short time. Pos is formation-relative.
type Splat struct {
	Pos       core.Vec2
	Size      core.Vec2
	Remaining float64
}

// Game implements the Invaders game logic.
type Game struct {
	cfg  config.InvadersConfig
	next config.InvadersConfig

	rng     *rand.Rand
	paused  bool
	player  core.Entity
	health  int
	score   int
	elapsed float64

	formation Formation
	bullets   []core.Entity
	bunkers   []core.Entity
	splats    []Splat

	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
}

// New creates a new Invaders game instance.
func New() *Game {
	cfg := config.DefaultInvadersConfig()
	g := &Game{cfg: cfg, next: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Size returns the playfield in pixels.
func (g *Game) Size() core.Vec2 {
	return core.V(g.cfg.Field.Width, g.cfg.Field.Height)
}

// Configure loads YAML config for the next round.
func (g *Game) Configure(opts config.Options) error {
	cfg, err := config.LoadInvaders(opts)
	g.next = cfg
	return err
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.next
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	f, p := g.cfg.Field, g.cfg.Player
	size := core.V(p.Width, p.Height)
	g.player = core.NewEntity(core.V(f.Width/2, f.Height-2*p.Height).Sub(size.Scale(0.5)), size)
	g.health = p.Health
	g.score = 0
	g.elapsed = 0
	g.paused = false

	g.formation = newFormation(g.cfg)
	g.bullets = g.bullets[:0]
	g.splats = g.splats[:0]
	g.bunkers = g.placeBunkers()
}

func (g *Game) placeBunkers() []core.Entity {
	b := g.cfg.Bunkers
	size := core.V(b.Width, b.Height)
	startX := g.cfg.Field.Width/2 - b.Spacing*float64(b.Count)/2 + b.Spacing/2
	y := g.cfg.Field.Height - b.Height*3

	bunkers := make([]core.Entity, 0, b.Count)
	for i := 0; i < b.Count; i++ {
		center := core.V(startX+float64(i)*b.Spacing, y)
		bunkers = append(bunkers, core.NewEntity(center.Sub(size.Scale(0.5)), size))
	}
	return bunkers
}

// Won reports whether every enemy is dead.
func (g *Game) Won() bool {
	return g.formation.Alive() == 0
}

// Lost reports whether the player is out of health or overrun.
func (g *Game) Lost() bool {
	return g.health <= 0 || g.formation.Bottom() >= g.player.Pos.Y
}

// Update advances the game by dt seconds.
func (g *Game) Update(in *core.InputState, dt float64) {
	if in.WasKeyPressed(core.KeyR) {
		g.Reset(g.runtime)
		return
	}

	terminal := g.Won() || g.Lost()
	if in.WasKeyPressed(core.KeyP) && !terminal {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}
	if terminal {
		if in.WasKeyPressed(core.KeyEnter) {
			g.Reset(g.runtime)
		}
		return
	}
	g.elapsed += dt

	g.player.Vel = core.Vec2{}
	if in.IsKeyDown(core.KeyA) {
		g.player.Vel.X = -g.cfg.Player.Speed
	}
	if in.IsKeyDown(core.KeyD) {
		g.player.Vel.X = g.cfg.Player.Speed
	}
	if in.WasKeyPressed(core.KeySpace) {
		g.fire(g.player.Center(), -g.cfg.Bullet.Speed)
	}

	e := g.cfg.Enemies
	interval := g.difficulty.Interval(e.StepInterval, g.score, g.elapsed)
	if g.formation.Advance(dt, interval) {
		g.formation.March(e.StepSize, e.LeftLimit, e.RightLimit)
		g.enemyFire()
	}

	g.decaySplats(dt)

	g.player.Integrate(dt)
	g.player.Pos.X = core.ClampF(g.player.Pos.X, 0, g.cfg.Field.Width-g.player.Size.X)
	for i := range g.bullets {
		g.bullets[i].Integrate(dt)
	}

	g.resolveHits()
	g.sweep()
}

// fire spawns a bullet centered on origin.
func (g *Game) fire(origin core.Vec2, vy float64) {
	size := core.V(g.cfg.Bullet.Width, g.cfg.Bullet.Height)
	b := core.NewEntity(origin.Sub(size.Scale(0.5)), size)
	b.Vel = core.V(0, vy)
	g.bullets = append(g.bullets, b)
}

// enemyFire shoots from a random live enemy.
func (g *Game) enemyFire() {
	alive := g.formation.Alive()
	if alive == 0 {
		return
	}
	n := g.rng.Intn(alive)
	for _, e := range g.formation.Enemies {
		if !e.Alive {
			continue
		}
		if n == 0 {
			g.fire(g.formation.Rect(e).Center(), g.cfg.Bullet.Speed)
			return
		}
		n--
	}
}

func (g *Game) decaySplats(dt float64) {
	kept := g.splats[:0]
	for _, s := range g.splats {
		s.Remaining -= dt
		if s.Remaining > 0 {
			kept = append(kept, s)
		}
	}
	g.splats = kept
}

func (g *Game) resolveHits() {
	// Bunkers absorb bullets from both sides
	for _, bunker := range g.bunkers {
		for i := range g.bullets {
			if g.bullets[i].Collides(bunker) {
				g.bullets[i].Alive = false
			}
		}
	}

	for ei := range g.formation.Enemies {
		enemy := &g.formation.Enemies[ei]
		if !enemy.Alive {
			continue
		}
		rect := g.formation.Rect(*enemy)
		for bi := range g.bullets {
			b := &g.bullets[bi]
			if !b.Alive || b.Vel.Y >= 0 || !rect.Collides(b.Rect()) {
				continue
			}
			enemy.Alive = false
			b.Alive = false
			g.score += g.cfg.Enemies.PointsPerKill
			g.splats = append(g.splats, Splat{
				Pos:       enemy.Pos,
				Size:      enemy.Size,
				Remaining: g.cfg.Enemies.SplatDuration,
			})
			break
		}
	}

	for bi := range g.bullets {
		b := &g.bullets[bi]
		if b.Vel.Y > 0 && b.Collides(g.player) {
			g.health--
			b.Alive = false
		}
	}
}

// sweep removes dead enemies plus dead or off-field bullets.
func (g *Game) sweep() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		cy := b.Center().Y
		if b.Alive && cy > 0 && cy < g.cfg.Field.Height {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
	g.formation.compact()
}

// Render draws the field. Enemies and bullets are hidden once the round ends.
func (g *Game) Render(dst *render.List) {
	dst.SetBackground(background)
	dst.PushRectColor(g.player.Rect(), playerColor)
	for _, b := range g.bunkers {
		dst.PushRectColor(b.Rect(), playerColor)
	}

	// Remaining lives as small ships along the bottom
	p := g.cfg.Player
	icon := core.V(p.Width*0.8, p.Height*0.8)
	for i := 0; i < g.health; i++ {
		center := core.V(p.Width+float64(i)*p.Width*1.3, g.cfg.Field.Height-icon.Y/2)
		dst.PushRectColor(core.CenterExtent(center, icon), playerColor)
	}

	banner := render.TextStyle{PixelSize: render.DefaultPixelSize, Color: core.ColorOrange}
	cx, cy := g.cfg.Field.Width/2, g.cfg.Field.Height/2-100
	switch {
	case g.Lost():
		dst.PushStringCentered("Game Over", cx, cy, banner)
		return
	case g.Won():
		dst.PushStringCentered("Victory", cx, cy, banner)
		return
	}

	for _, b := range g.bullets {
		dst.PushRect(b.Rect())
	}
	for _, e := range g.formation.Enemies {
		r := g.formation.Rect(e)
		if g.formation.AltFrame {
			r = core.CenterExtent(r.Center(), r.Extent.Sub(core.V(altShrink, 0)))
		}
		dst.PushRectColor(r, rowColor(e.Row))
	}
	for _, s := range g.splats {
		dst.PushRectColor(core.OffsetExtent(s.Pos.Add(g.formation.Offset), s.Size), splatColor)
	}

	if g.paused {
		dst.PushStringCentered("Paused", cx, cy, render.DefaultTextStyle())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameStatus {
	return core.GameStatus{
		Score:    g.score,
		GameOver: g.Won() || g.Lost(),
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
