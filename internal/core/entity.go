package core

// Entity is a movable or static game object in pixel space.
// Pos is the top-left corner.
type Entity struct {
	Pos   Vec2
	Vel   Vec2
	Size  Vec2
	Alive bool
}

// NewEntity returns a live, motionless entity.
func NewEntity(pos, size Vec2) Entity {
	return Entity{Pos: pos, Size: size, Alive: true}
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() Rect {
	return OffsetExtent(e.Pos, e.Size)
}

// Center returns the center of the bounding box.
func (e Entity) Center() Vec2 {
	return e.Pos.Add(e.Size.Scale(0.5))
}

// Integrate moves the entity by its velocity over dt seconds.
func (e *Entity) Integrate(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// Collides reports whether two live entities overlap.
func (e Entity) Collides(o Entity) bool {
	return e.Alive && o.Alive && e.Rect().Collides(o.Rect())
}
