package game

// enemyByID finds a live enemy by identifier. Returns nil when the enemy is
// already gone; callers must tolerate that.
func (g *Game) enemyByID(id uint64) *Enemy {
	for _, e := range g.enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// prune removes expired and collided entities. The order is load-bearing:
// enemy-bullet expiry decrements the owner's BulletCount and must run before
// collided enemies are dropped, so the owner lookup still finds enemies that
// died this frame. A missing owner just skips the decrement.
func (g *Game) prune() {
	// Enemy bullets past the bottom edge.
	enemyBullets := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		if b.Shape.Y < g.worldH+b.Shape.Size {
			enemyBullets = append(enemyBullets, b)
			continue
		}
		if owner := g.enemyByID(b.OwnerID); owner != nil && owner.BulletCount > 0 {
			owner.BulletCount--
		}
	}
	g.enemyBullets = enemyBullets

	// Enemies past the bottom edge.
	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Shape.Y < g.worldH+e.Shape.Size {
			enemies = append(enemies, e)
		}
	}
	g.enemies = enemies

	// Player bullets above the top edge.
	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Y > -b.Size/2 {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets

	// Collided enemies and bullets.
	enemies = g.enemies[:0]
	for _, e := range g.enemies {
		if !e.Shape.Collided {
			enemies = append(enemies, e)
		}
	}
	g.enemies = enemies

	bullets = g.bullets[:0]
	for _, b := range g.bullets {
		if !b.Collided {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets

	// Finished explosion effects.
	explosions := g.explosions[:0]
	for _, ex := range g.explosions {
		if ex.Emitting() {
			explosions = append(explosions, ex)
		}
	}
	g.explosions = explosions
}
