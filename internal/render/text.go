package render

import (
	"fmt"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

// DefaultPixelSize is the edge of one glyph pixel in game pixels.
const DefaultPixelSize = 10

// outlineGrow is how much larger each outline quad is than its pixel.
const outlineGrow = 4

// TextStyle controls how glyphs are pushed.
type TextStyle struct {
	PixelSize float64
	Color     core.Color
	Outline   bool // Inverted-color halo drawn under every lit pixel
}

// DefaultTextStyle returns white text at DefaultPixelSize.
func DefaultTextStyle() TextStyle {
	return TextStyle{PixelSize: DefaultPixelSize, Color: core.ColorWhite}
}

// GlyphFor returns the bitmap for c. c must be printable ASCII.
func GlyphFor(c rune) Glyph {
	if c < ' ' || c > '~' {
		panic(fmt.Sprintf("render: no glyph for %q", c))
	}
	return glyphs[c-' ']
}

// TextWidth returns the advance of s at the given pixel size.
func TextWidth(s string, pixelSize float64) float64 {
	return float64(len(s)) * pixelSize * (glyphCols + 1)
}

// PushChar pushes the quads for one character with its top-left at origin.
func (l *List) PushChar(c rune, origin core.Vec2, st TextStyle) {
	g := GlyphFor(c)
	if st.Outline {
		l.pushGlyph(g, origin, st.PixelSize, st.PixelSize+outlineGrow, st.Color.Invert())
	}
	l.pushGlyph(g, origin, st.PixelSize, st.PixelSize, st.Color)
}

func (l *List) pushGlyph(g Glyph, origin core.Vec2, step, size float64, c core.Color) {
	for row := 0; row < glyphRows; row++ {
		for col := 0; col < glyphCols; col++ {
			if g[row][col] != '#' {
				continue
			}
			l.Push(ColoredQuad(origin.X+step*float64(col), origin.Y+step*float64(row), size, size, c))
		}
	}
}

// PushString pushes s left-aligned at origin, advancing six pixels per char.
// Outlines for the whole string go first so no halo covers a neighbor.
func (l *List) PushString(s string, origin core.Vec2, st TextStyle) {
	for _, c := range s {
		GlyphFor(c)
	}
	adv := st.PixelSize * (glyphCols + 1)
	if st.Outline {
		inv := st.Color.Invert()
		for i, c := range []rune(s) {
			o := core.V(origin.X+float64(i)*adv, origin.Y)
			l.pushGlyph(glyphs[c-' '], o, st.PixelSize, st.PixelSize+outlineGrow, inv)
		}
	}
	for i, c := range []rune(s) {
		o := core.V(origin.X+float64(i)*adv, origin.Y)
		l.pushGlyph(glyphs[c-' '], o, st.PixelSize, st.PixelSize, st.Color)
	}
}

// PushStringCentered pushes s horizontally centered on centerX at height y.
func (l *List) PushStringCentered(s string, centerX, y float64, st TextStyle) {
	x := centerX - TextWidth(s, st.PixelSize)/2
	l.PushString(s, core.V(x, y), st)
}
