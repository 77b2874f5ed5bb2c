package core

import "fmt"

// KeyID is a logical key, abstracted from terminal key strings.
type KeyID int

const (
	KeyAny KeyID = iota // Set together with every other key
	KeyEsc
	KeyEnter
	KeySpace
	KeyA
	KeyD
	KeyM
	KeyP
	KeyR
	KeyS
	KeyW
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	keyCount
)

var keyNames = [keyCount]string{
	"Any", "Esc", "Enter", "Space", "A", "D", "M", "P", "R", "S", "W",
	"Up", "Down", "Left", "Right",
}

// String returns a human-readable name for the key.
func (k KeyID) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// ButtonID is a logical pointer button.
type ButtonID int

const (
	ButtonAny ButtonID = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
	buttonCount
)

// KeyState tracks one key for the current frame.
type KeyState struct {
	Down            bool
	HalfTransitions int
}

// ButtonState tracks one pointer button and where it last changed.
type ButtonState struct {
	Down            bool
	HalfTransitions int
	Pos             Vec2
}

// InputState is the per-frame input snapshot queried by game logic.
// The platform writes it between frames; games only read it.
type InputState struct {
	keys    [keyCount]KeyState
	buttons [buttonCount]ButtonState
	pointer Vec2
}

// NewInputState returns an empty snapshot with every key up.
func NewInputState() *InputState {
	return &InputState{}
}

func mustKey(id KeyID) {
	if id < 0 || id >= keyCount {
		panic(fmt.Sprintf("core: key id %d out of range", id))
	}
}

func mustButton(id ButtonID) {
	if id < 0 || id >= buttonCount {
		panic(fmt.Sprintf("core: button id %d out of range", id))
	}
}

// ResetTransitions clears transition counts; call once per frame after Update.
func (s *InputState) ResetTransitions() {
	for i := range s.keys {
		s.keys[i].HalfTransitions = 0
	}
	for i := range s.buttons {
		s.buttons[i].HalfTransitions = 0
	}
}

// SetKey records a key changing to down or up. KeyAny mirrors every change.
func (s *InputState) SetKey(id KeyID, down bool) {
	mustKey(id)
	setKey(&s.keys[id], down)
	if id != KeyAny {
		setKey(&s.keys[KeyAny], down)
	}
}

func setKey(k *KeyState, down bool) {
	if k.Down != down {
		k.HalfTransitions++
	}
	k.Down = down
}

// SetButton records a pointer button change at pixel position pos.
func (s *InputState) SetButton(id ButtonID, down bool, pos Vec2) {
	mustButton(id)
	setButton(&s.buttons[id], down, pos)
	if id != ButtonAny {
		setButton(&s.buttons[ButtonAny], down, pos)
	}
	s.pointer = pos
}

func setButton(b *ButtonState, down bool, pos Vec2) {
	if b.Down != down {
		b.HalfTransitions++
	}
	b.Down = down
	b.Pos = pos
}

// SetPointer records pointer motion without a button change.
func (s *InputState) SetPointer(pos Vec2) {
	s.pointer = pos
}

// Pointer returns the last known pointer position.
func (s *InputState) Pointer() Vec2 {
	return s.pointer
}

// Key returns the raw state of a key.
func (s *InputState) Key(id KeyID) KeyState {
	mustKey(id)
	return s.keys[id]
}

// Button returns the raw state of a button.
func (s *InputState) Button(id ButtonID) ButtonState {
	mustButton(id)
	return s.buttons[id]
}

// IsKeyDown reports whether the key is currently held.
func (s *InputState) IsKeyDown(id KeyID) bool {
	return s.Key(id).Down
}

// WasKeyPressed reports whether the key went down during this frame.
func (s *InputState) WasKeyPressed(id KeyID) bool {
	k := s.Key(id)
	return k.Down && k.HalfTransitions >= 1
}

// WasKeyReleased reports whether the key went up during this frame.
func (s *InputState) WasKeyReleased(id KeyID) bool {
	k := s.Key(id)
	return !k.Down && k.HalfTransitions >= 1
}

// IsButtonDown reports whether the button is currently held.
func (s *InputState) IsButtonDown(id ButtonID) bool {
	return s.Button(id).Down
}

// WasButtonPressed reports whether the button went down during this frame.
func (s *InputState) WasButtonPressed(id ButtonID) bool {
	b := s.Button(id)
	return b.Down && b.HalfTransitions >= 1
}

// WasButtonReleased reports whether the button went up during this frame.
func (s *InputState) WasButtonReleased(id ButtonID) bool {
	b := s.Button(id)
	return !b.Down && b.HalfTransitions >= 1
}
