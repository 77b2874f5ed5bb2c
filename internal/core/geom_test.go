package core

import (
	"math"
	"testing"
)

func rect(x, y, w, h float64) Rect {
	return OffsetExtent(V(x, y), V(w, h))
}

func TestRectCollides(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", rect(0, 0, 10, 10), rect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", rect(0, 0, 10, 10), rect(15, 0, 10, 10), false},
		{"non-overlapping vertical", rect(0, 0, 10, 10), rect(0, 15, 10, 10), false},
		{"adjacent horizontal (no overlap)", rect(0, 0, 10, 10), rect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", rect(0, 0, 10, 10), rect(0, 10, 10, 10), false},
		{"contained rect", rect(0, 0, 20, 20), rect(5, 5, 5, 5), true},
		{"sub-pixel overlap", rect(0, 0, 10, 10), rect(9.5, 9.5, 10, 10), true},
		{"zero width inside", rect(0, 0, 20, 20), rect(5, 5, 0, 5), false},
		{"zero height inside", rect(0, 0, 20, 20), rect(5, 5, 5, 0), false},
		{"zero both inside", rect(0, 0, 20, 20), rect(5, 5, 0, 0), false},
		{"zero width across an edge", rect(0, 0, 20, 20), rect(20, 5, 0, 5), false},
		{"overlap on one axis only", rect(0, 0, 10, 10), rect(5, 20, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Collides(tc.b)
			if result != tc.expected {
				t.Errorf("Collides() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Collides(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Collides() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectSelfCollision(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"positive extent", rect(3, 4, 5, 6), true},
		{"zero width", rect(3, 4, 0, 6), false},
		{"zero height", rect(3, 4, 5, 0), false},
		{"zero both", rect(3, 4, 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Collides(tc.r); got != tc.expected {
				t.Errorf("Collides(self) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := rect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right corner (inclusive)", V(30, 25), true},
		{"outside left", V(5, 15), false},
		{"outside right", V(35, 15), false},
		{"outside top", V(15, 5), false},
		{"outside bottom", V(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestCenterExtent(t *testing.T) {
	r := CenterExtent(V(100, 50), V(20, 10))

	if r.Min() != V(90, 45) {
		t.Errorf("Min() = %v, expected (90, 45)", r.Min())
	}
	if r.Max() != V(110, 55) {
		t.Errorf("Max() = %v, expected (110, 55)", r.Max())
	}
	if r.Center() != V(100, 50) {
		t.Errorf("Center() = %v, expected (100, 50)", r.Center())
	}
}

func TestVec2(t *testing.T) {
	a, b := V(3, 4), V(1, -2)

	if a.Add(b) != V(4, 2) {
		t.Errorf("Add = %v", a.Add(b))
	}
	if a.Sub(b) != V(2, 6) {
		t.Errorf("Sub = %v", a.Sub(b))
	}
	if a.Scale(2) != V(6, 8) {
		t.Errorf("Scale = %v", a.Scale(2))
	}
	if a.Len() != 5 {
		t.Errorf("Len = %v", a.Len())
	}
	n := a.Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize length = %v", n.Len())
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("zero vector should normalize to zero")
	}
	if a.Neg().Neg() != a {
		t.Error("double reflection should restore the vector")
	}
}

func TestReflect1DBackSolve(t *testing.T) {
	pos, vel, bounced := Reflect1D(795, 1000, 0.01, 0, 800)

	if !bounced {
		t.Fatal("expected a bounce off the right bound")
	}
	if vel != -1000 {
		t.Errorf("velocity = %v, expected -1000", vel)
	}
	if pos > 800 {
		t.Errorf("position = %v, must not end beyond the bound", pos)
	}
	if math.Abs(pos-795) > 1e-9 {
		t.Errorf("position = %v, expected 795 after reapplying the remaining time", pos)
	}
}

func TestReflect1D(t *testing.T) {
	tests := []struct {
		name         string
		pos, vel, dt float64
		wantPos      float64
		wantVel      float64
		wantBounced  bool
	}{
		{"free flight", 100, 50, 0.1, 105, 50, false},
		{"left wall", 2, -100, 0.04, 2, 100, true},
		{"moving away from crossed bound", 820, -100, 0.01, 819, -100, false},
		{"exact contact bounces", 790, 1000, 0.01, 790, -1000, true},
		{"exact contact on the left wall", 10, -1000, 0.01, 10, 1000, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, vel, bounced := Reflect1D(tc.pos, tc.vel, tc.dt, 0, 800)
			if math.Abs(pos-tc.wantPos) > 1e-9 || vel != tc.wantVel || bounced != tc.wantBounced {
				t.Errorf("Reflect1D = (%v, %v, %v), expected (%v, %v, %v)",
					pos, vel, bounced, tc.wantPos, tc.wantVel, tc.wantBounced)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
