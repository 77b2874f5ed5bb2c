package invaders

import "github.com/vovakirdan/quad-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Player     core.Vec2
	Health     int
	Score      int
	Paused     bool
	Offset     core.Vec2
	MovingLeft bool
	Timer      float64

	Enemies []core.Vec2 // Formation-relative positions of live enemies
	Bullets []core.Vec2
	Splats  int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]core.Vec2, 0, len(g.formation.Enemies))
	for _, e := range g.formation.Enemies {
		enemies = append(enemies, e.Pos)
	}
	bullets := make([]core.Vec2, 0, len(g.bullets))
	for _, b := range g.bullets {
		bullets = append(bullets, b.Pos)
	}
	return Snapshot{
		Player:     g.player.Pos,
		Health:     g.health,
		Score:      g.score,
		Paused:     g.paused,
		Offset:     g.formation.Offset,
		MovingLeft: g.formation.MovingLeft,
		Timer:      g.formation.Timer,
		Enemies:    enemies,
		Bullets:    bullets,
		Splats:     len(g.splats),
	}
}
