package game

import (
	"testing"
)

func TestPruneExpiredEnemyBulletDecrementsOwner(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	owner := &Enemy{ID: 3, Shape: Shape{X: 100, Y: 100, Size: 40, W: 40, H: 40}, BulletCount: 1}
	g.enemies = append(g.enemies, owner)
	g.enemyBullets = append(g.enemyBullets, &EnemyBullet{
		OwnerID: 3,
		Shape:   Shape{X: 100, Y: g.worldH + 16, Size: 16, W: 16, H: 16},
	})

	g.prune()

	if len(g.enemyBullets) != 0 {
		t.Errorf("Expired enemy bullet should be removed, %d left", len(g.enemyBullets))
	}
	if owner.BulletCount != 0 {
		t.Errorf("Owner's bullet count should drop to 0, got %d", owner.BulletCount)
	}
}

func TestPruneExpiryRunsBeforeCollidedRemoval(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	// Owner died this frame; its expiring bullet must still find it for the
	// decrement before the collided pass drops it.
	owner := &Enemy{
		ID:          3,
		Shape:       Shape{X: 100, Y: 100, Size: 40, W: 40, H: 40, Collided: true},
		BulletCount: 1,
	}
	g.enemies = append(g.enemies, owner)
	g.enemyBullets = append(g.enemyBullets, &EnemyBullet{
		OwnerID: 3,
		Shape:   Shape{X: 100, Y: g.worldH + 16, Size: 16, W: 16, H: 16},
	})

	g.prune()

	if owner.BulletCount != 0 {
		t.Errorf("Decrement must land before the collided enemy is dropped, got %d", owner.BulletCount)
	}
	if len(g.enemies) != 0 {
		t.Errorf("Collided enemy should still be removed, %d left", len(g.enemies))
	}
}

func TestPruneToleratesMissingOwner(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	g.enemyBullets = append(g.enemyBullets, &EnemyBullet{
		OwnerID: 999, // no such enemy
		Shape:   Shape{X: 100, Y: g.worldH + 16, Size: 16, W: 16, H: 16},
	})

	g.prune() // must not panic

	if len(g.enemyBullets) != 0 {
		t.Errorf("Orphan bullet should still expire, %d left", len(g.enemyBullets))
	}
}

func TestPruneBulletCountFloorsAtZero(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	owner := &Enemy{ID: 3, Shape: Shape{X: 100, Y: 100, Size: 40, W: 40, H: 40}, BulletCount: 0}
	g.enemies = append(g.enemies, owner)
	g.enemyBullets = append(g.enemyBullets, &EnemyBullet{
		OwnerID: 3,
		Shape:   Shape{X: 100, Y: g.worldH + 16, Size: 16, W: 16, H: 16},
	})

	g.prune()

	if owner.BulletCount != 0 {
		t.Errorf("Bullet count must not go negative, got %d", owner.BulletCount)
	}
}

func TestPruneEdges(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	// Just inside vs just past each edge
	g.enemies = append(g.enemies,
		&Enemy{ID: 1, Shape: Shape{X: 100, Y: g.worldH + 19, Size: 20, W: 20, H: 20}},
		&Enemy{ID: 2, Shape: Shape{X: 100, Y: g.worldH + 20, Size: 20, W: 20, H: 20}},
	)
	g.bullets = append(g.bullets,
		&Shape{X: 100, Y: -15, Size: 32, W: 32, H: 32},
		&Shape{X: 100, Y: -16, Size: 32, W: 32, H: 32},
	)
	g.enemyBullets = append(g.enemyBullets,
		&EnemyBullet{OwnerID: 1, Shape: Shape{X: 100, Y: g.worldH + 15, Size: 16, W: 16, H: 16}},
		&EnemyBullet{OwnerID: 2, Shape: Shape{X: 100, Y: g.worldH + 16, Size: 16, W: 16, H: 16}},
	)

	g.prune()

	if len(g.enemies) != 1 || g.enemies[0].ID != 1 {
		t.Errorf("Only the enemy within a size of the bottom should survive, got %d", len(g.enemies))
	}
	if len(g.bullets) != 1 || g.bullets[0].Y != -15 {
		t.Errorf("Only the bullet above -size/2 should survive, got %d", len(g.bullets))
	}
	if len(g.enemyBullets) != 1 || g.enemyBullets[0].OwnerID != 1 {
		t.Errorf("Only the enemy bullet within a size of the bottom should survive, got %d", len(g.enemyBullets))
	}
}

func TestPruneFinishedExplosions(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	g.explosions = append(g.explosions,
		&Explosion{X: 100, Y: 100, Size: 40, Amount: 80, Age: 10, Lifetime: 36},
		&Explosion{X: 200, Y: 200, Size: 40, Amount: 80, Age: 36, Lifetime: 36},
	)

	g.prune()

	if len(g.explosions) != 1 {
		t.Fatalf("Expected 1 surviving explosion, got %d", len(g.explosions))
	}
	if g.explosions[0].X != 100 {
		t.Error("The emitting explosion should be the survivor")
	}
}
