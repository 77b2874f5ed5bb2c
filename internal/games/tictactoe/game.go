package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

// Outcome of a round.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Draw
)

// Piece colors
var pieceColor = map[Cell]core.Color{
	X: core.ColorWhite,
	O: core.ColorRed,
}

const (
	tileFill   = 0.8  // Tile edge as a fraction of a grid square
	barFill    = 0.05 // Bar thickness as a fraction of a grid square
	titlePixel = 15
	hintPixel  = 8
)

// Game implements Tic-Tac-Toe.
type Game struct {
	cfg  config.TicTacToeConfig
	next config.TicTacToeConfig

	board   Board
	turn    Cell
	outcome Outcome
	winner  Cell
	cursor  int // Keyboard-selected tile

	// Session tallies, kept across rounds until a restart
	xWins int
	oWins int

	runtime core.RuntimeConfig
}

// New creates a new Tic-Tac-Toe game instance.
func New() *Game {
	cfg := config.DefaultTicTacToeConfig()
	g := &Game{cfg: cfg, next: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Size returns the playfield in pixels.
func (g *Game) Size() core.Vec2 {
	return core.V(g.cfg.Field.Width, g.cfg.Field.Height)
}

// Configure loads YAML config for the next round.
func (g *Game) Configure(opts config.Options) error {
	cfg, err := config.LoadTicTacToe(opts)
	g.next = cfg
	return err
}

// Reset starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.next
	g.xWins = 0
	g.oWins = 0
	g.newRound()
}

func (g *Game) newRound() {
	g.board = Board{}
	g.turn = X
	g.outcome = Playing
	g.winner = Empty
	g.cursor = 4
}

// square is the edge of one grid square.
func (g *Game) square() float64 {
	return g.cfg.Field.Height / 3
}

// TileRect returns the clickable area of tile idx.
func (g *Game) TileRect(idx int) core.Rect {
	if idx < 0 || idx >= len(g.board) {
		panic(fmt.Sprintf("tictactoe: tile %d out of range", idx))
	}
	sq := g.square()
	row, col := float64(idx/3), float64(idx%3)
	center := core.V(
		g.cfg.Field.Width/2-sq+col*sq,
		g.cfg.Field.Height/2-sq+row*sq,
	)
	return core.CenterExtent(center, core.V(tileFill*sq, tileFill*sq))
}

// Update advances the game. Tic-Tac-Toe ignores dt.
func (g *Game) Update(in *core.InputState, _ float64) {
	if in.WasKeyPressed(core.KeyR) {
		g.Reset(g.runtime)
		return
	}

	if g.outcome != Playing {
		if in.WasKeyPressed(core.KeyAny) {
			g.newRound()
		}
		return
	}

	if g.turn == O && g.cfg.AIEnabled {
		g.place(ChooseMove(g.board, O))
		return
	}

	g.moveCursor(in)

	if in.WasButtonPressed(core.ButtonLeft) {
		pos := in.Button(core.ButtonLeft).Pos
		for idx := range g.board {
			if g.board[idx] == Empty && g.TileRect(idx).Contains(pos) {
				g.cursor = idx
				g.place(idx)
				return
			}
		}
	}

	if (in.WasKeyPressed(core.KeyEnter) || in.WasKeyPressed(core.KeySpace)) && g.board[g.cursor] == Empty {
		g.place(g.cursor)
	}
}

func (g *Game) moveCursor(in *core.InputState) {
	row, col := g.cursor/3, g.cursor%3
	switch {
	case in.WasKeyPressed(core.KeyUp):
		row--
	case in.WasKeyPressed(core.KeyDown):
		row++
	case in.WasKeyPressed(core.KeyLeft):
		col--
	case in.WasKeyPressed(core.KeyRight):
		col++
	}
	g.cursor = core.Clamp(row, 0, 2)*3 + core.Clamp(col, 0, 2)
}

// place puts the current player's piece on idx, then checks the result.
func (g *Game) place(idx int) {
	if g.board[idx] != Empty {
		panic(fmt.Sprintf("tictactoe: tile %d already taken", idx))
	}
	g.board[idx] = g.turn
	g.turn = g.turn.Other()

	if w := g.board.Winner(); w != Empty {
		g.outcome = Won
		g.winner = w
		if w == X {
			g.xWins++
		} else {
			g.oWins++
		}
		return
	}
	if g.board.Full() {
		g.outcome = Draw
	}
}

// Render draws the grid and pieces, or the round result.
func (g *Game) Render(dst *render.List) {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	switch g.outcome {
	case Won:
		g.renderResult(dst, fmt.Sprintf("Player %d Won!", playerNumber(g.winner)))
		return
	case Draw:
		g.renderResult(dst, "Draw!")
		return
	}

	sq := g.square()
	cx, cy := w/2, h/2
	bar := barFill * sq

	// Cursor highlight sits under the grid
	dst.PushRectColor(g.TileRect(g.cursor), core.ColorDarkGrey)

	dst.PushRect(core.CenterExtent(core.V(cx, cy-sq/2), core.V(3*sq, bar)))
	dst.PushRect(core.CenterExtent(core.V(cx, cy+sq/2), core.V(3*sq, bar)))
	dst.PushRect(core.CenterExtent(core.V(cx-sq/2, cy), core.V(bar, 3*sq)))
	dst.PushRect(core.CenterExtent(core.V(cx+sq/2, cy), core.V(bar, 3*sq)))

	for idx, c := range g.board {
		if c != Empty {
			dst.PushRectColor(g.TileRect(idx), pieceColor[c])
		}
	}
}

func (g *Game) renderResult(dst *render.List, title string) {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	dst.PushStringCentered(title, w/2, h/2-150, render.TextStyle{PixelSize: titlePixel, Color: core.ColorWhite})
	dst.PushStringCentered("Press any key to start", w/2, h/2+100, render.TextStyle{PixelSize: hintPixel, Color: core.ColorWhite})
}

func playerNumber(c Cell) int {
	if c == O {
		return 2
	}
	return 1
}

// State returns the current game state.
func (g *Game) State() core.GameStatus {
	status := core.GameStatus{
		GameOver:   g.outcome != Playing,
		Draw:       g.outcome == Draw,
		LeftScore:  g.xWins,
		RightScore: g.oWins,
		Score:      g.xWins,
	}
	switch g.winner {
	case X:
		status.Winner = core.SideLeft
	case O:
		status.Winner = core.SideRight
	}
	return status
}

// WinnerLabel names a side the way round results store it.
func (g *Game) WinnerLabel(s core.Side) string {
	switch s {
	case core.SideLeft:
		return X.String()
	case core.SideRight:
		return O.String()
	default:
		return "none"
	}
}

// Board returns a copy of the tiles.
func (g *Game) Board() Board {
	return g.board
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}
