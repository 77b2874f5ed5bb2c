package invaders

import (
	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
)

// Enemy is one invader. Pos is relative to the formation origin.
type Enemy struct {
	core.Entity
	Row int
}

// Formation is the marching block of enemies.
type Formation struct {
	Enemies    []Enemy
	Offset     core.Vec2 // Shared displacement applied to every enemy
	MovingLeft bool
	Timer      float64 // Seconds into the current step
	AltFrame   bool    // Second animation frame
}

// newFormation lays out rows x cols enemies centered on the field.
func newFormation(cfg config.InvadersConfig) Formation {
	e := cfg.Enemies
	size := core.V(e.Width, e.Height)
	startX := cfg.Field.Width/2 - float64(e.Cols)/2*e.Width*2
	startY := e.Height

	enemies := make([]Enemy, 0, e.Rows*e.Cols)
	for row := 0; row < e.Rows; row++ {
		for col := 0; col < e.Cols; col++ {
			center := core.V(startX+float64(col)*e.Width*2, startY+float64(row)*e.Height*2)
			enemies = append(enemies, Enemy{
				Entity: core.NewEntity(center.Sub(size.Scale(0.5)), size),
				Row:    row,
			})
		}
	}
	return Formation{Enemies: enemies}
}

// Rect returns an enemy's field-space bounding box.
func (f *Formation) Rect(e Enemy) core.Rect {
	return core.OffsetExtent(e.Pos.Add(f.Offset), e.Size)
}

// Alive returns the number of live enemies.
func (f *Formation) Alive() int {
	n := 0
	for _, e := range f.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// Advance runs the step timer. It reports whether the formation stepped.
func (f *Formation) Advance(dt, interval float64) bool {
	f.Timer += dt
	f.AltFrame = f.Timer < interval/2
	if f.Timer < interval {
		return false
	}
	f.Timer -= interval
	return true
}

// March moves one step sideways, or drops and turns at a limit.
func (f *Formation) March(step, left, right float64) {
	if f.MovingLeft {
		if f.Offset.X-step < left {
			f.Offset.Y += step
			f.MovingLeft = false
			return
		}
		f.Offset.X -= step
		return
	}
	if f.Offset.X+step > right {
		f.Offset.Y += step
		f.MovingLeft = true
		return
	}
	f.Offset.X += step
}

// Bottom returns the lowest field-space edge of any live enemy.
func (f *Formation) Bottom() float64 {
	bottom := 0.0
	for _, e := range f.Enemies {
		if e.Alive {
			bottom = max(bottom, f.Rect(e).Max().Y)
		}
	}
	return bottom
}

// compact drops dead enemies in place.
func (f *Formation) compact() {
	alive := f.Enemies[:0]
	for _, e := range f.Enemies {
		if e.Alive {
			alive = append(alive, e)
		}
	}
	f.Enemies = alive
}

// rowColor picks the enemy tint for a formation row.
func rowColor(row int) core.Color {
	switch row {
	case 0:
		return core.ColorRed
	case 1, 2:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}
