package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		c    core.Color
		want string
	}{
		{core.ColorBlack, "#000000"},
		{core.ColorWhite, "#ffffff"},
		{core.ColorOrange, "#ff8000"},
		{core.RGB8(0x1d, 0x1f, 0x21), "#1d1f21"},
	}
	for _, tc := range tests {
		if got := hexColor(tc.c); got != tc.want {
			t.Errorf("hexColor(%+v) = %s, expected %s", tc.c, got, tc.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz", core.ColorWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for i, want := range []string{"abcd  ", "xyz   "} {
		if got := stripANSI(lines[i]); got != want {
			t.Errorf("line %d = %q, expected %q", i, got, want)
		}
		if w := lipgloss.Width(lines[i]); w != 6 {
			t.Errorf("line %d width = %d, expected 6", i, w)
		}
	}
}

// stripANSI drops CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
