// Package game implements the Starfall simulation: a player ship dodging and
// shooting descending enemies. The package contains pure game logic with no
// platform dependencies; rendering and audio consume its per-tick output.
package game

import (
	"math"

	"github.com/dkoval/starfall/internal/core"
)

// Shape is the generic moving entity: a circle/rectangle hybrid positioned by
// its center. Size doubles as circle diameter and square side; W and H are the
// render-space extents and may differ from Size for sprite scaling.
type Shape struct {
	X, Y     float64
	Size     float64
	Speed    float64 // px/s
	W, H     float64
	Color    core.Color
	Collided bool // one-way removal request, never cleared
}

// Rect returns the shape's bounding rectangle. The origin is offset by
// Size/2 while the extents use W and H; the two deliberately disagree when a
// sprite is scaled. Do not "fix" this, collision feel depends on it.
func (s *Shape) Rect() core.RectF {
	return core.RectF{
		X: s.X - s.Size/2,
		Y: s.Y - s.Size/2,
		W: s.W,
		H: s.H,
	}
}

// Overlaps reports whether the two shapes' bounding rectangles overlap.
// Used for every bullet test.
func (s *Shape) Overlaps(other *Shape) bool {
	return s.Rect().Overlaps(other.Rect())
}

// HitsCircle reports whether this shape, treated as an axis-aligned square of
// side Size, touches the given shape treated as a circle of diameter Size.
// Cheaper and more permissive than a full polygon test; used only for the
// ship-vs-enemy check and intentionally distinct from Overlaps.
func (s *Shape) HitsCircle(circle *Shape) bool {
	half := s.Size / 2
	dx := math.Max(math.Abs(s.X-circle.X), half) - half
	dy := math.Max(math.Abs(s.Y-circle.Y), half) - half
	return dx*dx+dy*dy <= circle.Size*circle.Size/4
}

// Enemy wraps a Shape with a unique identifier and a live-bullet counter.
// BulletCount caps concurrent fire at one bullet per enemy.
type Enemy struct {
	ID          uint64
	Shape       Shape
	BulletCount int
}

// EnemyBullet wraps a Shape with a weak back-reference to the enemy that
// fired it. The owner may already be gone when the bullet expires; lookups
// must tolerate that.
type EnemyBullet struct {
	OwnerID uint64
	Shape   Shape
}

// Explosion is a short-lived visual effect spawned where a bullet destroyed
// an enemy. The particle count and radius scale with the enemy's size.
type Explosion struct {
	X, Y     float64
	Size     float64
	Amount   int // particle count: round(enemy size) * 2
	Age      int // ticks since spawn
	Lifetime int // ticks
	Seed     uint64
}

// Emitting reports whether the effect is still alive. Finished explosions
// are removed by the prune pass.
func (e *Explosion) Emitting() bool {
	return e.Age < e.Lifetime
}
