package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want core.KeyID
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, true},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.KeyW, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}}, core.KeyW, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			got, ok := MapKey(tc.msg)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tea.KeyMsg{Type: tea.KeyCtrlC}) {
		t.Error("ctrl+c should quit")
	}
	if !IsQuitKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}) {
		t.Error("q should quit")
	}
	if IsQuitKey(tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Error("esc is handled by the game model, not as a quit key")
	}
}

func TestKeyTrackerHoldAndRelease(t *testing.T) {
	in := core.NewInputState()
	kt := NewKeyTracker(150 * time.Millisecond)
	t0 := time.Unix(0, 0)

	kt.Press(in, core.KeyW, t0)
	if !in.WasKeyPressed(core.KeyW) || !in.IsKeyDown(core.KeyW) {
		t.Fatal("first press should go down with a transition")
	}
	in.ResetTransitions()

	// Auto-repeat keeps it held without a new press
	kt.Press(in, core.KeyW, t0.Add(100*time.Millisecond))
	if in.WasKeyPressed(core.KeyW) {
		t.Error("repeat should not be a new press")
	}

	kt.Expire(in, t0.Add(200*time.Millisecond))
	if !in.IsKeyDown(core.KeyW) || !kt.Held(core.KeyW) {
		t.Error("repeat should have extended the hold")
	}

	kt.Expire(in, t0.Add(260*time.Millisecond))
	if in.IsKeyDown(core.KeyW) || !in.WasKeyReleased(core.KeyW) {
		t.Error("key should release once the hold window passes")
	}
	if kt.Held(core.KeyW) {
		t.Error("tracker still holds released key")
	}
}

func TestKeyTrackerReleaseAll(t *testing.T) {
	in := core.NewInputState()
	kt := NewKeyTracker(0)
	now := time.Now()
	kt.Press(in, core.KeyA, now)
	kt.Press(in, core.KeyD, now)

	kt.ReleaseAll(in)
	if in.IsKeyDown(core.KeyA) || in.IsKeyDown(core.KeyD) {
		t.Error("ReleaseAll left keys down")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, MenuActionNone},
	}
	for _, tc := range tests {
		if got := MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
