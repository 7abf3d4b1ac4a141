package game

import (
	"math"

	"github.com/dkoval/starfall/internal/core"
)

// explosionLifetimeSec is how long an explosion effect keeps emitting.
const explosionLifetimeSec = 0.6

// resolveCombat runs every pairwise collision test and its effects, in a
// fixed order. Later checks can observe entities already marked by earlier
// ones; nothing is removed here, that happens in prune. An enemy marked
// collided this frame can still fire this frame, as it always has.
func (g *Game) resolveCombat() {
	// 1. Ship vs any enemy: square-vs-circle near test, first hit ends the life.
	for _, e := range g.enemies {
		if e.Shape.HitsCircle(&g.ship) {
			g.endLife()
			break
		}
	}

	for _, e := range g.enemies {
		// 2. Enemy vs player bullets: full rectangle overlap, all pairs.
		for _, b := range g.bullets {
			if b.Overlaps(&e.Shape) {
				b.Collided = true
				e.Shape.Collided = true
				g.score += int(math.Round(e.Shape.Size))
				if g.score > g.highScore {
					g.highScoreBeaten = true
					g.highScore = g.score
				}
				g.addExplosion(b.X, b.Y, e.Shape.Size)
				g.events = append(g.events, core.EventExplosion)
			}
		}

		// 3. Enemy fires when its horizontal extent straddles the ship and it
		// has no live bullet out.
		if g.ship.X > e.Shape.X-e.Shape.W/2 &&
			g.ship.X < e.Shape.X+e.Shape.W/2 &&
			e.BulletCount < 1 {
			size := g.cfg.Bullets.EnemySize
			g.enemyBullets = append(g.enemyBullets, &EnemyBullet{
				OwnerID: e.ID,
				Shape: Shape{
					X:     e.Shape.X,
					Y:     e.Shape.Y + e.Shape.Size/2,
					Size:  size,
					Speed: e.Shape.Speed * g.cfg.Bullets.EnemySpeedFactor,
					W:     size,
					H:     size,
					Color: core.ColorRed,
				},
			})
			e.BulletCount++
		}
	}

	// 4. Enemy bullet vs ship: rectangle overlap, ends the life.
	for _, b := range g.enemyBullets {
		if b.Shape.Overlaps(&g.ship) {
			g.endLife()
		}
	}
}

// addExplosion spawns a visual effect at the impact point, sized by the
// destroyed enemy.
func (g *Game) addExplosion(x, y, size float64) {
	lifetime := int(explosionLifetimeSec * float64(g.runtime.TickRate))
	if lifetime < 1 {
		lifetime = 1
	}
	g.explosions = append(g.explosions, &Explosion{
		X:        x,
		Y:        y,
		Size:     size,
		Amount:   int(math.Round(size)) * 2,
		Lifetime: lifetime,
		Seed:     g.rng.Uint64(),
	})
}
