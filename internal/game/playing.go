package game

import (
	"github.com/dkoval/starfall/internal/core"
)

// starfieldSpeed is the drift accumulated per second of held horizontal input.
const starfieldSpeed = 0.01

// stepPlaying runs one frame of the live simulation. The order is fixed:
// input/movement, autofire, spawn, integrate, collide, prune. Collision marks
// entities; only the prune pass removes them.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
		g.phase = PhasePaused
	}

	dt := g.dt()

	g.moveShip(in, dt)
	g.fire()
	g.spawnEnemies()
	g.integrate(dt)
	g.resolveCombat()
	g.prune()
}

// moveShip applies held directional input and clamps the ship so its full
// circle stays inside the playfield. Axes are handled independently: diagonal
// movement is faster than axis-aligned. That asymmetry is part of the feel;
// do not normalize.
func (g *Game) moveShip(in core.InputFrame, dt float64) {
	step := g.ship.Speed * dt
	starStep := starfieldSpeed * dt

	var dirX float64
	if in.Has(core.ActionLeft) {
		dirX = -1
	} else if in.Has(core.ActionRight) {
		dirX = 1
	}
	var dirY float64
	if in.Has(core.ActionUp) {
		dirY = -1
	} else if in.Has(core.ActionDown) {
		dirY = 1
	}

	if dirX < 0 {
		g.ship.X -= step
		g.drift -= starStep
	}
	if dirX > 0 {
		g.ship.X += step
		g.drift += starStep
	}
	if dirY < 0 {
		g.ship.Y -= step
	}
	if dirY > 0 {
		g.ship.Y += step
	}

	radius := g.ship.Size / 2
	g.ship.X = core.ClampF(g.ship.X, radius, g.worldW-radius)
	g.ship.Y = core.ClampF(g.ship.Y, radius, g.worldH-radius)
}

// fire spawns a player bullet at the ship's position when the rate limiter
// allows it. Firing is continuous while playing; there is no fire key.
func (g *Game) fire() {
	interval := float64(g.runtime.TickRate) / g.cfg.Ship.MaxBulletsPerSecond
	if float64(g.tick-g.lastShotTick) <= interval {
		return
	}
	g.lastShotTick = g.tick

	size := g.cfg.Bullets.PlayerSize
	g.bullets = append(g.bullets, &Shape{
		X:     g.ship.X,
		Y:     g.ship.Y - g.cfg.Bullets.PlayerOffset,
		Size:  size,
		Speed: g.ship.Speed * g.cfg.Bullets.PlayerSpeedFactor,
		W:     size,
		H:     size,
		Color: core.ColorGold,
	})
	g.events = append(g.events, core.EventShot)
}

// spawnEnemies runs the per-frame Bernoulli spawn trial. The draw is a
// uniform integer from [0,99); values >= 95 spawn (about 4% per frame). The
// rate is frame-rate-dependent by construction; preserved, not "fixed".
func (g *Game) spawnEnemies() {
	if len(g.enemies) >= g.maxEnemies {
		return
	}
	if g.rng.Intn(99) < 95 {
		return
	}

	sp := g.cfg.Spawner
	size := (sp.MinSize + g.rng.Float64()*(sp.MaxSize-sp.MinSize)) * g.scale
	g.enemies = append(g.enemies, &Enemy{
		ID: g.nextEnemyID,
		Shape: Shape{
			Size:  size,
			Speed: sp.MinSpeed + g.rng.Float64()*(sp.MaxSpeed-sp.MinSpeed),
			X:     size/2 + g.rng.Float64()*(g.worldW-size),
			Y:     -size,
			W:     size,
			H:     size,
			Color: enemyPalette[g.rng.Intn(len(enemyPalette))],
		},
	})
	g.nextEnemyID++
}

// integrate advances every entity from its velocity. Enemies and enemy
// bullets descend, player bullets climb; the ship moved in moveShip.
func (g *Game) integrate(dt float64) {
	for _, e := range g.enemies {
		e.Shape.Y += e.Shape.Speed * dt
	}
	for _, b := range g.bullets {
		b.Y -= b.Speed * dt
	}
	for _, b := range g.enemyBullets {
		b.Shape.Y += b.Shape.Speed * dt
	}
	for _, ex := range g.explosions {
		ex.Age++
	}
}
