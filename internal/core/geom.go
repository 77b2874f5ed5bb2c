// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in game pixel space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Offset is the top-left corner, Extent the width and height.
type Rect struct {
	Offset Vec2
	Extent Vec2
}

// OffsetExtent builds a rect from its top-left corner and size.
func OffsetExtent(offset, extent Vec2) Rect {
	return Rect{Offset: offset, Extent: extent}
}

// CenterExtent builds a rect centered on center with the given size.
func CenterExtent(center, extent Vec2) Rect {
	return Rect{Offset: center.Sub(extent.Scale(0.5)), Extent: extent}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 {
	return r.Offset
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return r.Offset.Add(r.Extent)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return r.Offset.Add(r.Extent.Scale(0.5))
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Collides reports whether r and o overlap on both axes.
// The test is strict, so touching edges and zero-area rects never collide.
func (r Rect) Collides(o Rect) bool {
	if r.Extent.X <= 0 || r.Extent.Y <= 0 || o.Extent.X <= 0 || o.Extent.Y <= 0 {
		return false
	}
	aMin, aMax := r.Min(), r.Max()
	bMin, bMax := o.Min(), o.Max()
	return aMin.X < bMax.X && aMax.X > bMin.X &&
		aMin.Y < bMax.Y && aMax.Y > bMin.Y
}

// Reflect1D integrates one axis over dt and bounces off [lo, hi].
// When the tentative position reaches or crosses a bound, the crossing time is
// back-solved as revert = |overshoot/vel|, the position is walked back to the
// bound, the velocity is reflected and dt-revert is reapplied with the new
// velocity. It reports whether a bounce happened.
func Reflect1D(pos, vel, dt, lo, hi float64) (newPos, newVel float64, bounced bool) {
	next := pos + vel*dt
	var overshoot float64
	switch {
	case next <= lo && vel < 0:
		overshoot = lo - next
	case next >= hi && vel > 0:
		overshoot = next - hi
	default:
		return next, vel, false
	}

	revert := math.Abs(overshoot / vel)
	if revert > dt {
		revert = dt
	}
	next -= vel * revert
	vel = -vel
	next += vel * (dt - revert)
	return next, vel, true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
