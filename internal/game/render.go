package game

import (
	"fmt"
	"math"

	"github.com/dkoval/starfall/internal/core"
)

// Visual characters for rendering.
const (
	ShipChar        = '▲'
	BulletChar      = '•'
	EnemyBulletChar = '▼'
	EnemyChar       = '█'
	StarChar        = '·'
	SparkChar       = '*'
)

// Render draws the current game state to the screen. The simulation runs in
// virtual pixels; everything here is projected onto terminal cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderStars(dst)

	switch g.phase {
	case PhaseMenu:
		g.renderTitle(dst)
		g.renderMenu(dst)
	case PhasePlaying:
		g.renderEntities(dst)
	case PhasePaused:
		g.renderEntities(dst)
		g.renderTitle(dst)
		dst.DrawTextCenteredColored(dst.Height()/2, "Paused", core.ColorGold)
	case PhaseGameOver:
		g.renderEntities(dst)
		g.renderTitle(dst)
		dst.DrawTextCenteredColored(dst.Height()/2, "GAME OVER!", core.ColorGold)
		dst.DrawTextCentered(dst.Height()/2+2, "Press Space to continue")
	}

	g.renderScore(dst)
}

// cellX projects a world x coordinate onto a screen column.
func (g *Game) cellX(dst *core.Screen, x float64) int {
	return int(x / g.worldW * float64(dst.Width()))
}

// cellY projects a world y coordinate onto a screen row.
func (g *Game) cellY(dst *core.Screen, y float64) int {
	return int(y / g.worldH * float64(dst.Height()))
}

// renderStars draws the drifting background starfield. Horizontal drift
// follows accumulated ship movement for a cheap parallax effect.
func (g *Game) renderStars(dst *core.Screen) {
	shift := g.drift * g.worldW
	for _, s := range g.stars {
		x := math.Mod(s.x-shift, g.worldW)
		if x < 0 {
			x += g.worldW
		}
		dst.SetCell(g.cellX(dst, x), g.cellY(dst, s.y), StarChar, core.ColorGray)
	}
}

// renderEntities draws enemies, bullets, the ship and explosion effects.
func (g *Game) renderEntities(dst *core.Screen) {
	for _, e := range g.enemies {
		g.renderEnemy(dst, e)
	}
	for _, b := range g.enemyBullets {
		dst.SetCell(g.cellX(dst, b.Shape.X), g.cellY(dst, b.Shape.Y), EnemyBulletChar, b.Shape.Color)
	}
	for _, b := range g.bullets {
		dst.SetCell(g.cellX(dst, b.X), g.cellY(dst, b.Y), BulletChar, b.Color)
	}
	for _, ex := range g.explosions {
		g.renderExplosion(dst, ex)
	}
	dst.SetCell(g.cellX(dst, g.ship.X), g.cellY(dst, g.ship.Y), ShipChar, g.ship.Color)
}

// renderEnemy draws an enemy as a block spanning its projected extent.
func (g *Game) renderEnemy(dst *core.Screen, e *Enemy) {
	left := g.cellX(dst, e.Shape.X-e.Shape.W/2)
	right := g.cellX(dst, e.Shape.X+e.Shape.W/2)
	top := g.cellY(dst, e.Shape.Y-e.Shape.H/2)
	bottom := g.cellY(dst, e.Shape.Y+e.Shape.H/2)
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			dst.SetCell(x, y, EnemyChar, e.Shape.Color)
		}
	}
}

// renderExplosion draws an expanding ring of sparks. Particle placement is
// jittered from the explosion's seed so each one looks different but stays
// stable across frames.
func (g *Game) renderExplosion(dst *core.Screen, ex *Explosion) {
	progress := float64(ex.Age) / float64(ex.Lifetime)
	radius := ex.Size * progress

	// Drawing every particle of a big explosion would just overdraw cells.
	count := core.Min(ex.Amount, 24)
	seed := ex.Seed
	for i := 0; i < count; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		angle := float64(seed%3600) / 3600 * 2 * math.Pi
		jitter := 0.5 + float64((seed>>16)%100)/200
		x := ex.X + math.Cos(angle)*radius*jitter
		y := ex.Y + math.Sin(angle)*radius*jitter
		color := core.ColorOrange
		if i%3 == 0 {
			color = core.ColorBrightRed
		}
		dst.SetCell(g.cellX(dst, x), g.cellY(dst, y), SparkChar, color)
	}
}

// renderTitle draws the game banner in the upper quarter of the screen.
func (g *Game) renderTitle(dst *core.Screen) {
	dst.DrawTextCenteredColored(dst.Height()/4, GameTitle, core.ColorGold)
}

// renderMenu draws the main menu box with its two entries.
func (g *Game) renderMenu(dst *core.Screen) {
	entries := []string{"Play", "Exit"}

	boxW := 22
	boxH := len(entries)*2 + 3
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(boxY, " Main menu ")

	for i, entry := range entries {
		y := boxY + 2 + i*2
		label := "  " + entry
		if i == g.menuCursor {
			label = "> " + entry
		}
		dst.DrawText(boxX+3, y, label)
	}
}

// renderScore draws the HUD: score on the left, high score on the right and a
// blinking banner when this life beat the stored high score.
func (g *Game) renderScore(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorGold)

	highText := fmt.Sprintf("High score: %d", g.highScore)
	dst.DrawTextColored(dst.Width()-len(highText)-1, 0, highText, core.ColorGold)

	if g.highScoreBeaten && (g.tick/20)%2 == 0 {
		beaten := "New high score!"
		dst.DrawTextColored(dst.Width()-len(beaten)-1, 1, beaten, core.ColorBrightYellow)
	}
}
