// Package snake implements the classic Snake game on a fixed grid.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a grid cell.
type Point struct {
	X, Y int // Column, row
}

// Colors
var (
	background = core.RGB8(0x1d, 0x1f, 0x21)
	snakeColor = core.ColorGreen
	coinColor  = core.ColorYellow
)

// Game implements the Snake game.
type Game struct {
	cfg  config.SnakeConfig
	next config.SnakeConfig

	rng     *rand.Rand
	score   int
	timer   float64 // Seconds since the last move
	elapsed float64

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	coin      Point

	gameOver bool
	won      bool // Board filled
	paused   bool

	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
}

// New creates a new Snake game instance.
func New() *Game {
	cfg := config.DefaultSnakeConfig()
	g := &Game{cfg: cfg, next: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Snake"
}

// Size returns the playfield in pixels.
func (g *Game) Size() core.Vec2 {
	c := g.cfg.Grid.Cell
	return core.V(float64(g.cfg.Grid.Cols)*c, float64(g.cfg.Grid.Rows)*c)
}

// Configure loads YAML config for the next round.
func (g *Game) Configure(opts config.Options) error {
	cfg, err := config.LoadSnake(opts)
	g.next = cfg
	return err
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.next
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.score = 0
	g.timer = 0
	g.elapsed = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.initSnake()
	g.spawnCoin()
}

// initSnake places a three-segment snake in the middle row heading left.
func (g *Game) initSnake() {
	row := g.cfg.Grid.Rows / 2
	col := g.cfg.Grid.Cols / 2
	g.snake = []Point{{X: col, Y: row}, {X: col + 1, Y: row}, {X: col + 2, Y: row}}
	g.direction = DirLeft
	g.nextDir = DirLeft
}

// spawnCoin puts the coin on a random free cell. A full board wins.
func (g *Game) spawnCoin() {
	var emptyCells []Point
	for y := 0; y < g.cfg.Grid.Rows; y++ {
		for x := 0; x < g.cfg.Grid.Cols; x++ {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		g.coin = Point{X: -1, Y: -1}
		g.won = true
		return
	}

	g.coin = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

func (g *Game) inBounds(p Point) bool {
	return p.X >= 0 && p.X < g.cfg.Grid.Cols && p.Y >= 0 && p.Y < g.cfg.Grid.Rows
}

// Update advances the game by dt seconds.
func (g *Game) Update(in *core.InputState, dt float64) {
	if in.WasKeyPressed(core.KeyR) {
		g.Reset(g.runtime)
		return
	}

	terminal := g.gameOver || g.won
	if in.WasKeyPressed(core.KeyP) && !terminal {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}
	if terminal {
		if in.WasKeyPressed(core.KeyEnter) || in.WasKeyPressed(core.KeySpace) {
			g.Reset(g.runtime)
		}
		return
	}
	g.elapsed += dt

	g.processInput(in)

	interval := g.difficulty.Interval(g.cfg.StepInterval, g.score, g.elapsed)
	g.timer += dt
	if g.timer >= interval {
		g.timer -= interval
		g.moveSnake()
	}
}

// processInput buffers a direction change for the next move.
func (g *Game) processInput(in *core.InputState) {
	newDir := g.nextDir

	switch {
	case in.IsKeyDown(core.KeyW) || in.IsKeyDown(core.KeyUp):
		newDir = DirUp
	case in.IsKeyDown(core.KeyS) || in.IsKeyDown(core.KeyDown):
		newDir = DirDown
	case in.IsKeyDown(core.KeyA) || in.IsKeyDown(core.KeyLeft):
		newDir = DirLeft
	case in.IsKeyDown(core.KeyD) || in.IsKeyDown(core.KeyRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake moves the snake one cell in the current direction.
func (g *Game) moveSnake() {
	g.direction = g.nextDir

	head := g.snake[0]
	newHead := head
	switch g.direction {
	case DirUp:
		newHead.Y--
	case DirDown:
		newHead.Y++
	case DirLeft:
		newHead.X--
	case DirRight:
		newHead.X++
	default:
		panic(fmt.Sprintf("snake: unknown direction %d", g.direction))
	}

	if !g.inBounds(newHead) {
		g.gameOver = true
		return
	}

	// The whole body counts, tail included, even though it moves this step
	for _, p := range g.snake {
		if p == newHead {
			g.gameOver = true
			return
		}
	}

	growing := newHead == g.coin

	g.snake = append([]Point{newHead}, g.snake...)
	if growing {
		g.score++
		g.spawnCoin()
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

func (g *Game) cellRect(p Point) core.Rect {
	c := g.cfg.Grid.Cell
	return core.OffsetExtent(core.V(float64(p.X)*c, float64(p.Y)*c), core.V(c, c))
}

// Render draws the coin, the snake and the HUD.
func (g *Game) Render(dst *render.List) {
	dst.SetBackground(background)

	terminal := g.gameOver || g.won
	if !terminal {
		dst.PushRectColor(g.cellRect(g.coin), coinColor)
	}
	for _, seg := range g.snake {
		dst.PushRectColor(g.cellRect(seg), snakeColor)
	}

	hud := render.TextStyle{PixelSize: 4, Color: core.ColorLightGrey}
	dst.PushString(fmt.Sprintf("Score %d", g.score), core.V(10, 10), hud)

	size := g.Size()
	banner := render.TextStyle{PixelSize: render.DefaultPixelSize, Color: core.ColorLightGrey, Outline: true}
	switch {
	case g.won:
		dst.PushStringCentered("You win!", size.X/2, size.Y/2, banner)
	case g.gameOver:
		dst.PushStringCentered("Game Over!", size.X/2, size.Y/2, banner)
	case g.paused:
		dst.PushStringCentered("Paused", size.X/2, size.Y/2, banner)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameStatus {
	return core.GameStatus{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
