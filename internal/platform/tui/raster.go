package tui

import (
	"math"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

// RasterMode selects how render commands map onto terminal cells.
type RasterMode int

const (
	// RasterBraille packs 2x4 dots per cell. Each cell has one color.
	RasterBraille RasterMode = iota
	// RasterHalfBlock packs 1x2 pixels per cell, each with its own color.
	RasterHalfBlock
)

// String returns the flag value for the mode.
func (m RasterMode) String() string {
	if m == RasterHalfBlock {
		return "halfblock"
	}
	return "braille"
}

// ParseRasterMode accepts "braille" or "halfblock"; anything else is braille.
func ParseRasterMode(s string) RasterMode {
	if s == "halfblock" || s == "half" {
		return RasterHalfBlock
	}
	return RasterBraille
}

// dots per cell for each mode
func (m RasterMode) cellDots() (w, h int) {
	if m == RasterHalfBlock {
		return 1, 2
	}
	return 2, 4
}

// Braille dot bits indexed by [row][col] inside a cell.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const (
	brailleBase = 0x2800
	upperHalf   = '▀'
)

// Layout fits a game's pixel space into a grid of dots, keeping aspect
// ratio and centering the result.
type Layout struct {
	Mode       RasterMode
	Cols, Rows int
	Scale      float64 // Dots per game pixel
	OffX, OffY float64 // Dot offset of the game origin
}

// NewLayout computes the fit of a game of size game into cols x rows cells.
func NewLayout(mode RasterMode, cols, rows int, game core.Vec2) Layout {
	cw, ch := mode.cellDots()
	dotsW, dotsH := float64(cols*cw), float64(rows*ch)
	l := Layout{Mode: mode, Cols: cols, Rows: rows}
	if game.X <= 0 || game.Y <= 0 || cols <= 0 || rows <= 0 {
		return l
	}
	l.Scale = math.Min(dotsW/game.X, dotsH/game.Y)
	l.OffX = (dotsW - game.X*l.Scale) / 2
	l.OffY = (dotsH - game.Y*l.Scale) / 2
	return l
}

// ToGame maps the center of a terminal cell to game pixels.
func (l Layout) ToGame(col, row int) core.Vec2 {
	if l.Scale == 0 {
		return core.Vec2{}
	}
	cw, ch := l.Mode.cellDots()
	dx := (float64(col)+0.5)*float64(cw) - l.OffX
	dy := (float64(row)+0.5)*float64(ch) - l.OffY
	return core.V(dx/l.Scale, dy/l.Scale)
}

// dotSpan returns the dots whose centers fall in [lo, hi) game pixels.
func (l Layout) dotSpan(lo, hi, off float64, limit int) (int, int) {
	from := int(math.Ceil(lo*l.Scale + off - 0.5))
	to := int(math.Ceil(hi*l.Scale + off - 0.5))
	if from < 0 {
		from = 0
	}
	if to > limit {
		to = limit
	}
	return from, to
}

// Rasterizer turns a render list into screen cells. Its buffer is reused
// between frames.
type Rasterizer struct {
	layout Layout
	dots   []int32 // Command index + 1 of the last command covering each dot
	dotsW  int
	dotsH  int
}

// NewRasterizer returns a rasterizer for the given layout.
func NewRasterizer(l Layout) *Rasterizer {
	r := &Rasterizer{}
	r.SetLayout(l)
	return r
}

// SetLayout changes the target grid, e.g. after a terminal resize.
func (r *Rasterizer) SetLayout(l Layout) {
	cw, ch := l.Mode.cellDots()
	r.layout = l
	r.dotsW, r.dotsH = l.Cols*cw, l.Rows*ch
	if n := r.dotsW * r.dotsH; cap(r.dots) < n {
		r.dots = make([]int32, n)
	} else {
		r.dots = r.dots[:n]
	}
}

// Layout returns the current layout.
func (r *Rasterizer) Layout() Layout {
	return r.layout
}

// Draw rasterizes every command of list into dst. The last command covering
// a dot decides its color; uncovered dots show the list's background.
func (r *Rasterizer) Draw(list *render.List, dst *core.Screen) {
	l := r.layout
	dst.Resize(l.Cols, l.Rows)
	bg, _ := list.Background()
	dst.SetBackground(bg)
	dst.Clear()

	clear(r.dots)
	cmds := list.Commands()
	for i, c := range cmds {
		x0, x1 := l.dotSpan(c.X, c.X+c.W, l.OffX, r.dotsW)
		y0, y1 := l.dotSpan(c.Y, c.Y+c.H, l.OffY, r.dotsH)
		for y := y0; y < y1; y++ {
			row := r.dots[y*r.dotsW : (y+1)*r.dotsW]
			for x := x0; x < x1; x++ {
				row[x] = int32(i + 1)
			}
		}
	}

	if l.Mode == RasterHalfBlock {
		r.halfBlocks(cmds, bg, dst)
	} else {
		r.braille(cmds, bg, dst)
	}
}

func (r *Rasterizer) colorAt(cmds []render.Command, x, y int, bg core.Color) (core.Color, int32) {
	idx := r.dots[y*r.dotsW+x]
	if idx == 0 {
		return bg, 0
	}
	return cmds[idx-1].Fill(), idx
}

func (r *Rasterizer) halfBlocks(cmds []render.Command, bg core.Color, dst *core.Screen) {
	for row := 0; row < r.layout.Rows; row++ {
		for col := 0; col < r.layout.Cols; col++ {
			top, ti := r.colorAt(cmds, col, row*2, bg)
			bottom, bi := r.colorAt(cmds, col, row*2+1, bg)
			if ti == 0 && bi == 0 {
				continue
			}
			dst.Set(col, row, core.Cell{Rune: upperHalf, FG: top, BG: bottom})
		}
	}
}

func (r *Rasterizer) braille(cmds []render.Command, bg core.Color, dst *core.Screen) {
	for row := 0; row < r.layout.Rows; row++ {
		for col := 0; col < r.layout.Cols; col++ {
			var bits rune
			var top int32
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					idx := r.dots[(row*4+dy)*r.dotsW+col*2+dx]
					if idx == 0 {
						continue
					}
					bits |= brailleBits[dy][dx]
					top = max(top, idx)
				}
			}
			if bits == 0 {
				continue
			}
			fg := cmds[top-1].Fill()
			if bits == 0xFF {
				// Solid cells paint the background too so no gaps show between dots
				dst.Set(col, row, core.Cell{Rune: brailleBase + bits, FG: fg, BG: fg})
				continue
			}
			dst.Set(col, row, core.Cell{Rune: brailleBase + bits, FG: fg, BG: bg})
		}
	}
}
