package breakout

import (
	"math"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

// CollisionSide indicates which axis of an obstacle was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionHorizontal // Hit a left or right face, reflect vx
	CollisionVertical   // Hit a top or bottom face, reflect vy
)

// blockHitSide picks the axis of least penetration between ball and block.
func blockHitSide(ball, block core.Rect) CollisionSide {
	if !ball.Collides(block) {
		return CollisionNone
	}
	bMin, bMax := ball.Min(), ball.Max()
	kMin, kMax := block.Min(), block.Max()
	overlapX := math.Min(bMax.X, kMax.X) - math.Max(bMin.X, kMin.X)
	overlapY := math.Min(bMax.Y, kMax.Y) - math.Max(bMin.Y, kMin.Y)
	if overlapX < overlapY {
		return CollisionHorizontal
	}
	return CollisionVertical
}

// reflectToward flips vel when it points from the ball center toward the
// obstacle center along one axis.
func reflectToward(vel, ballCenter, obstacleCenter float64) float64 {
	if (vel > 0 && ballCenter < obstacleCenter) || (vel < 0 && ballCenter > obstacleCenter) {
		return -vel
	}
	return vel
}

// bounceOffBlock applies the block response to the ball's velocity.
// It reports whether the ball was reflected; a ball still overlapping a
// block it is already leaving does not strike it again.
func bounceOffBlock(ball *core.Entity, block core.Entity) bool {
	if !block.Alive {
		return false
	}
	bc, kc := ball.Center(), block.Center()
	before := ball.Vel
	switch blockHitSide(ball.Rect(), block.Rect()) {
	case CollisionHorizontal:
		ball.Vel.X = reflectToward(ball.Vel.X, bc.X, kc.X)
	case CollisionVertical:
		ball.Vel.Y = reflectToward(ball.Vel.Y, bc.Y, kc.Y)
	default:
		return false
	}
	return ball.Vel != before
}
