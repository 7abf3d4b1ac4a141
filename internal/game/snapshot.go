package game

import "math"

// ShapeView is a read-only copy of a Shape for rendering and tests.
type ShapeView struct {
	X, Y     float64
	Size     float64
	Speed    float64
	W, H     float64
	Collided bool
}

// EnemyView is a read-only copy of an Enemy.
type EnemyView struct {
	ID          uint64
	Shape       ShapeView
	BulletCount int
}

// EnemyBulletView is a read-only copy of an EnemyBullet.
type EnemyBulletView struct {
	OwnerID uint64
	Shape   ShapeView
}

// ExplosionView is a read-only copy of an Explosion.
type ExplosionView struct {
	X, Y     float64
	Size     float64
	Age      int
	Lifetime int
}

// Snapshot is a read-only view of the full simulation state, taken once per
// frame for the renderer and for tests. Mutating it has no effect on the game.
type Snapshot struct {
	Tick            int
	Phase           Phase
	Score           int
	HighScore       int
	HighScoreBeaten bool
	NextEnemyID     uint64

	Ship         ShapeView
	Bullets      []ShapeView
	Enemies      []EnemyView
	EnemyBullets []EnemyBulletView
	Explosions   []ExplosionView
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Phase)
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.HighScore)
	h = h*31 + snap.NextEnemyID
	h = h*31 + hashShape(&snap.Ship)

	for i := range snap.Bullets {
		h = h*31 + hashShape(&snap.Bullets[i])
	}
	for i := range snap.Enemies {
		h = h*31 + snap.Enemies[i].ID
		h = h*31 + uint64(snap.Enemies[i].BulletCount)
		h = h*31 + hashShape(&snap.Enemies[i].Shape)
	}
	for i := range snap.EnemyBullets {
		h = h*31 + snap.EnemyBullets[i].OwnerID
		h = h*31 + hashShape(&snap.EnemyBullets[i].Shape)
	}
	for i := range snap.Explosions {
		h = h*31 + uint64(snap.Explosions[i].Age)
	}

	return h
}

func hashShape(s *ShapeView) uint64 {
	h := math.Float64bits(s.X)
	h = h*31 + math.Float64bits(s.Y)
	h = h*31 + math.Float64bits(s.Size)
	h = h*31 + math.Float64bits(s.Speed)
	return h
}

func viewOf(s *Shape) ShapeView {
	return ShapeView{
		X: s.X, Y: s.Y,
		Size: s.Size, Speed: s.Speed,
		W: s.W, H: s.H,
		Collided: s.Collided,
	}
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            g.tick,
		Phase:           g.phase,
		Score:           g.score,
		HighScore:       g.highScore,
		HighScoreBeaten: g.highScoreBeaten,
		NextEnemyID:     g.nextEnemyID,
		Ship:            viewOf(&g.ship),
	}

	snap.Bullets = make([]ShapeView, len(g.bullets))
	for i, b := range g.bullets {
		snap.Bullets[i] = viewOf(b)
	}

	snap.Enemies = make([]EnemyView, len(g.enemies))
	for i, e := range g.enemies {
		snap.Enemies[i] = EnemyView{
			ID:          e.ID,
			Shape:       viewOf(&e.Shape),
			BulletCount: e.BulletCount,
		}
	}

	snap.EnemyBullets = make([]EnemyBulletView, len(g.enemyBullets))
	for i, b := range g.enemyBullets {
		snap.EnemyBullets[i] = EnemyBulletView{
			OwnerID: b.OwnerID,
			Shape:   viewOf(&b.Shape),
		}
	}

	snap.Explosions = make([]ExplosionView, len(g.explosions))
	for i, ex := range g.explosions {
		snap.Explosions[i] = ExplosionView{
			X: ex.X, Y: ex.Y, Size: ex.Size,
			Age: ex.Age, Lifetime: ex.Lifetime,
		}
	}

	return snap
}
