// Package offscreen runs games without a terminal and exports their frames
// as PNG images. It backs `arcade snapshot` and is handy in tests.
package offscreen

import (
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

// DefaultDT is one frame at 60 fps.
const DefaultDT = 1.0 / 60

// Hold keeps a key down for frames [From, To).
type Hold struct {
	Key      core.KeyID
	From, To int
}

// Click presses and releases a pointer button at a game position.
type Click struct {
	Frame  int
	Button core.ButtonID
	Pos    core.Vec2
}

// Script is a scripted input timeline.
type Script struct {
	Taps   map[int][]core.KeyID // Keys pressed for exactly one frame
	Holds  []Hold
	Clicks []Click
}

// Tap adds a one-frame press of keys at frame.
func (s *Script) Tap(frame int, keys ...core.KeyID) {
	if s.Taps == nil {
		s.Taps = make(map[int][]core.KeyID)
	}
	s.Taps[frame] = append(s.Taps[frame], keys...)
}

// Runner steps a game with a fixed dt and no platform around it.
type Runner struct {
	game    registry.Game
	runtime core.RuntimeConfig
	dt      float64
	in      *core.InputState
	list    *render.List
	frame   int
}

// NewRunner resets game with runtime and prepares to step it by dt.
// A non-positive dt uses DefaultDT.
func NewRunner(game registry.Game, runtime core.RuntimeConfig, dt float64) *Runner {
	if dt <= 0 {
		dt = DefaultDT
	}
	game.Reset(runtime)
	return &Runner{
		game:    game,
		runtime: runtime,
		dt:      dt,
		in:      core.NewInputState(),
		list:    render.NewList(),
	}
}

// Frame returns how many frames have run.
func (r *Runner) Frame() int {
	return r.frame
}

// Game returns the game being run.
func (r *Runner) Game() registry.Game {
	return r.game
}

// Run plays frames more frames following script and returns the list
// rendered after the last one. The list is reused by later calls.
func (r *Runner) Run(frames int, script Script) *render.List {
	for i := 0; i < frames; i++ {
		r.step(script)
	}
	r.list.Reset()
	r.game.Render(r.list)
	return r.list
}

func (r *Runner) step(script Script) {
	f := r.frame

	for _, h := range script.Holds {
		r.setKey(h.Key, r.held(script, h.Key, f))
	}
	taps := script.Taps[f]
	for _, k := range taps {
		r.setKey(k, true)
	}
	var clicks []Click
	for _, c := range script.Clicks {
		if c.Frame == f {
			r.in.SetButton(c.Button, true, c.Pos)
			clicks = append(clicks, c)
		}
	}

	r.game.Update(r.in, r.dt)
	r.in.ResetTransitions()

	for _, k := range taps {
		if !r.held(script, k, f+1) {
			r.setKey(k, false)
		}
	}
	for _, c := range clicks {
		r.in.SetButton(c.Button, false, c.Pos)
	}
	r.frame++
}

// setKey skips no-op changes; they would still toggle KeyAny.
func (r *Runner) setKey(k core.KeyID, down bool) {
	if r.in.IsKeyDown(k) != down {
		r.in.SetKey(k, down)
	}
}

func (r *Runner) held(script Script, k core.KeyID, frame int) bool {
	for _, h := range script.Holds {
		if h.Key == k && frame >= h.From && frame < h.To {
			return true
		}
	}
	return false
}
