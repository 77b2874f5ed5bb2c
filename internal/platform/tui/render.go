package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

type cellColors struct {
	fg, bg core.Color
}

// styleCache keeps one lipgloss style per color pair seen so far.
// SSH sessions render concurrently, so access is locked.
type styleCache struct {
	mu     sync.Mutex
	styles map[cellColors]lipgloss.Style
}

func (c *styleCache) get(fg, bg core.Color) lipgloss.Style {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cellColors{fg, bg}
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(fg))).
		Background(lipgloss.Color(hexColor(bg)))
	c.styles[key] = s
	return s
}

// hexColor formats a color as #rrggbb for lipgloss.
func hexColor(c core.Color) string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

var styles = &styleCache{styles: make(map[cellColors]lipgloss.Style)}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
