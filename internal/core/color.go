package core

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGB8 returns an opaque color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// Palette used by the games.
var (
	ColorBlack     = RGB(0, 0, 0)
	ColorWhite     = RGB(1, 1, 1)
	ColorRed       = RGB(1, 0, 0)
	ColorGreen     = RGB(0, 1, 0)
	ColorBlue      = RGB(0, 0, 1)
	ColorYellow    = RGB(1, 1, 0)
	ColorOrange    = RGB(1, 0.5, 0)
	ColorCyan      = RGB(0, 0.5, 0.5)
	ColorGrey      = RGB(0.5, 0.5, 0.5)
	ColorDarkGrey  = RGB(0.2, 0.2, 0.2)
	ColorLightGrey = RGB(0.6, 0.6, 0.6)
	ColorDarkGreen = RGB(0, 0.5, 0)
	ColorDarkBlue  = RGB(0, 0, 0.5)
	ColorBrown     = RGB(0.5, 0.25, 0)
)

// Invert returns the color with RGB flipped, alpha kept.
func (c Color) Invert() Color {
	return Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B, A: c.A}
}

// RGBA8 converts to 8-bit components, clamping out-of-range values.
func (c Color) RGBA8() (r, g, b, a uint8) {
	conv := func(v float64) uint8 {
		return uint8(ClampF(v, 0, 1)*255 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B), conv(c.A)
}
