// Package render holds the immediate-mode command list that games fill each
// frame and platforms consume. It has no terminal or image dependencies.
package render

import "github.com/vovakirdan/quad-arcade/internal/core"

// Kind tags a render command variant.
type Kind int

const (
	KindQuad        Kind = iota // Filled rect in the default color
	KindColoredQuad             // Filled rect in its own color
)

// DefaultColor is used for plain quads.
var DefaultColor = core.ColorWhite

// Command is one primitive for one frame.
type Command struct {
	Kind       Kind
	X, Y, W, H float64
	Color      core.Color // Only meaningful for KindColoredQuad
}

// Quad returns an uncolored quad command.
func Quad(x, y, w, h float64) Command {
	return Command{Kind: KindQuad, X: x, Y: y, W: w, H: h}
}

// ColoredQuad returns a quad command with an explicit color.
func ColoredQuad(x, y, w, h float64, c core.Color) Command {
	return Command{Kind: KindColoredQuad, X: x, Y: y, W: w, H: h, Color: c}
}

// Rect returns the command's geometry.
func (c Command) Rect() core.Rect {
	return core.OffsetExtent(core.V(c.X, c.Y), core.V(c.W, c.H))
}

// Fill returns the color this command paints with.
func (c Command) Fill() core.Color {
	if c.Kind == KindColoredQuad {
		return c.Color
	}
	return DefaultColor
}

// List is an ordered command list. Later commands draw on top.
type List struct {
	cmds []Command
	bg   *core.Color
}

// NewList returns an empty list.
func NewList() *List {
	return &List{cmds: make([]Command, 0, 256)}
}

// Reset drops every command and the background, keeping capacity.
func (l *List) Reset() {
	l.cmds = l.cmds[:0]
	l.bg = nil
}

// Push appends a raw command.
func (l *List) Push(c Command) {
	l.cmds = append(l.cmds, c)
}

// PushRect appends a default-colored quad for r.
func (l *List) PushRect(r core.Rect) {
	l.Push(Quad(r.Offset.X, r.Offset.Y, r.Extent.X, r.Extent.Y))
}

// PushRectColor appends a colored quad for r.
func (l *List) PushRectColor(r core.Rect, c core.Color) {
	l.Push(ColoredQuad(r.Offset.X, r.Offset.Y, r.Extent.X, r.Extent.Y, c))
}

// SetBackground sets the clear color for this frame.
func (l *List) SetBackground(c core.Color) {
	l.bg = &c
}

// Background returns the frame's clear color and whether one was set.
func (l *List) Background() (core.Color, bool) {
	if l.bg == nil {
		return core.ColorBlack, false
	}
	return *l.bg, true
}

// Commands returns the commands in submission order.
// The slice is only valid until the next Reset.
func (l *List) Commands() []Command {
	return l.cmds
}

// Len returns the number of commands.
func (l *List) Len() int {
	return len(l.cmds)
}
