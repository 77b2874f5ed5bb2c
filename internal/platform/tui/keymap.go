package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press
// event. Terminal auto-repeat refreshes it while the key stays down.
const DefaultHoldWindow = 150 * time.Millisecond

// gameKeys maps Bubble Tea key strings to logical keys.
var gameKeys = map[string]core.KeyID{
	"esc":   core.KeyEsc,
	"enter": core.KeyEnter,
	" ":     core.KeySpace,
	"space": core.KeySpace,
	"a":     core.KeyA,
	"A":     core.KeyA,
	"d":     core.KeyD,
	"D":     core.KeyD,
	"m":     core.KeyM,
	"M":     core.KeyM,
	"p":     core.KeyP,
	"P":     core.KeyP,
	"r":     core.KeyR,
	"R":     core.KeyR,
	"s":     core.KeyS,
	"S":     core.KeyS,
	"w":     core.KeyW,
	"W":     core.KeyW,
	"up":    core.KeyUp,
	"down":  core.KeyDown,
	"left":  core.KeyLeft,
	"right": core.KeyRight,
}

// MapKey translates a key message to a logical key.
func MapKey(msg tea.KeyMsg) (core.KeyID, bool) {
	id, ok := gameKeys[msg.String()]
	return id, ok
}

// IsQuitKey reports whether the key always leaves the game.
func IsQuitKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// KeyTracker turns press-only terminal key events into down/up
// transitions on an InputState. A key is released once no press event
// refreshed it for the hold window.
type KeyTracker struct {
	hold     time.Duration
	deadline map[core.KeyID]time.Time
}

// NewKeyTracker returns a tracker with the given hold window.
// A non-positive window uses DefaultHoldWindow.
func NewKeyTracker(hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyTracker{hold: hold, deadline: make(map[core.KeyID]time.Time)}
}

// Press records a key event at now. Auto-repeat of a held key only
// extends the hold.
func (t *KeyTracker) Press(in *core.InputState, id core.KeyID, now time.Time) {
	if _, held := t.deadline[id]; !held {
		in.SetKey(id, true)
	}
	t.deadline[id] = now.Add(t.hold)
}

// Expire releases every key whose hold window ended before now.
func (t *KeyTracker) Expire(in *core.InputState, now time.Time) {
	for id, until := range t.deadline {
		if now.Before(until) {
			continue
		}
		delete(t.deadline, id)
		in.SetKey(id, false)
	}
}

// Held reports whether the tracker considers the key down.
func (t *KeyTracker) Held(id core.KeyID) bool {
	_, ok := t.deadline[id]
	return ok
}

// ReleaseAll lifts every held key, e.g. when leaving a game.
func (t *KeyTracker) ReleaseAll(in *core.InputState) {
	for id := range t.deadline {
		delete(t.deadline, id)
		in.SetKey(id, false)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
