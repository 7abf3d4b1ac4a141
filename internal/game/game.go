package game

import (
	"math"
	"math/rand"

	"github.com/dkoval/starfall/internal/config"
	"github.com/dkoval/starfall/internal/core"
	"github.com/dkoval/starfall/internal/registry"
)

// GameTitle is the banner shown on the menu and end screens.
const GameTitle = "S T A R F A L L"

// Menu entries, addressed by menuCursor.
const (
	menuPlay = iota
	menuExit
	menuEntryCount
)

// enemyPalette is the fixed set of colors enemies spawn with.
var enemyPalette = []core.Color{
	core.ColorBeige, core.ColorBlue, core.ColorBrown, core.ColorDarkBlue,
	core.ColorDarkGray, core.ColorDarkGreen, core.ColorGray, core.ColorGreen,
	core.ColorLime, core.ColorMagenta, core.ColorMaroon, core.ColorOrange,
	core.ColorPink, core.ColorPurple, core.ColorRed, core.ColorSkyBlue,
	core.ColorViolet, core.ColorYellow, core.ColorCyan, core.ColorBrightRed,
}

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// star is a fixed background point; drift shifts it horizontally.
type star struct {
	x, y float64
}

// Game implements the Starfall simulation core.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.StarfallConfig
	rng     *rand.Rand
	scores  ScoreStore

	phase      Phase
	menuCursor int
	quit       bool

	// Playfield, in virtual pixels.
	worldW, worldH float64
	scale          float64 // worldW / spawner base width
	maxEnemies     int

	ship         Shape
	bullets      []*Shape
	enemies      []*Enemy
	enemyBullets []*EnemyBullet
	explosions   []*Explosion

	score           int
	highScore       int
	highScoreBeaten bool

	tick         int
	nextEnemyID  uint64
	lastShotTick int
	drift        float64 // starfield drift, follows horizontal ship movement
	stars        []star

	events []core.Event
}

// New creates a new Starfall game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "starfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starfall"
}

// AttachStore wires the high-score persistence used across lives.
// Must be called before Reset for the loaded high score to be visible.
func (g *Game) AttachStore(s ScoreStore) {
	g.scores = s
}

// Reset initializes or restarts the whole game: configuration, playfield,
// RNG and the persisted high score. The game starts on the main menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := config.LoadStarfall(configPath)
	if err != nil {
		cfg = config.DefaultStarfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyStarfallPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.worldW = cfg.World.Width
	g.worldH = cfg.World.Height
	g.scale = g.worldW / cfg.Spawner.BaseWidth
	g.maxEnemies = int(math.Floor(float64(cfg.Spawner.BaseEnemies) * g.scale))

	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.phase = PhaseMenu
	g.menuCursor = menuPlay
	g.quit = false
	g.tick = 0
	g.nextEnemyID = 0
	g.drift = 0

	g.score = 0
	g.highScoreBeaten = false
	g.highScore = 0
	if g.scores != nil {
		// Missing or unreadable persisted score means no prior high score.
		if hs, err := g.scores.HighScore(); err == nil {
			g.highScore = hs
		}
	}

	shipSize := cfg.Ship.Radius * 2
	g.ship = Shape{
		X:     g.worldW / 2,
		Y:     g.worldH / 2,
		Size:  shipSize,
		Speed: cfg.Ship.MovementSpeed,
		W:     shipSize,
		H:     shipSize,
		Color: core.ColorGold,
	}

	g.bullets = nil
	g.enemies = nil
	g.enemyBullets = nil
	g.explosions = nil

	g.spawnStars()
}

// spawnStars places the deterministic background starfield.
func (g *Game) spawnStars() {
	const starCount = 70
	g.stars = make([]star, starCount)
	for i := range g.stars {
		g.stars[i] = star{
			x: g.rng.Float64() * g.worldW,
			y: g.rng.Float64() * g.worldH,
		}
	}
}

// dt returns the fixed per-tick time step in seconds.
func (g *Game) dt() float64 {
	return 1.0 / float64(g.runtime.TickRate)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	g.tick++

	switch g.phase {
	case PhaseMenu:
		g.stepMenu(in)
	case PhasePlaying:
		g.stepPlaying(in)
	case PhasePaused:
		g.stepPaused(in)
	case PhaseGameOver:
		g.stepGameOver(in)
	}

	res := core.StepResult{
		State: g.State(),
		Quit:  g.quit,
	}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	g.quit = false
	return res
}

// stepMenu handles the main menu. Score and the beaten flag are held at zero
// while the menu is showing; a new life starts only through startRun.
func (g *Game) stepMenu(in core.InputFrame) {
	g.score = 0
	g.highScoreBeaten = false

	if in.Has(core.ActionUp) && g.menuCursor > 0 {
		g.menuCursor--
	}
	if in.Has(core.ActionDown) && g.menuCursor < menuEntryCount-1 {
		g.menuCursor++
	}
	if in.Has(core.ActionConfirm) {
		switch g.menuCursor {
		case menuPlay:
			g.startRun()
		case menuExit:
			g.quit = true
		}
	}
}

// startRun begins a new life: all entity collections are cleared, the ship
// returns to its start position, and the score resets.
func (g *Game) startRun() {
	g.enemies = nil
	g.bullets = nil
	g.enemyBullets = nil
	g.explosions = nil

	g.ship.X = g.worldW / 2
	g.ship.Y = g.worldH - g.ship.Size
	g.ship.Collided = false

	g.score = 0
	g.highScoreBeaten = false
	g.lastShotTick = g.tick
	g.phase = PhasePlaying
	g.events = append(g.events, core.EventRunStart)
}

// stepPaused waits for a resume request, leaving the playfield frozen.
func (g *Game) stepPaused(in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionPause) {
		g.phase = PhasePlaying
	}
}

// stepGameOver waits for the player to acknowledge the end of the life.
func (g *Game) stepGameOver(in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
		g.phase = PhaseMenu
		g.menuCursor = menuPlay
	}
}

// endLife finishes the current life. If this life's score ties the best ever
// recorded it is persisted first; in-memory overtakes during the life mean a
// tie here covers the strictly-better case too.
func (g *Game) endLife() {
	if g.phase != PhasePlaying {
		return
	}
	if g.score == g.highScore && g.scores != nil {
		// Best-effort write; losing it is not catastrophic to gameplay.
		//nolint:errcheck
		g.scores.SaveHighScore(g.score)
	}
	g.phase = PhaseGameOver
	g.events = append(g.events, core.EventShipLost)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:           g.score,
		HighScore:       g.highScore,
		HighScoreBeaten: g.highScoreBeaten,
		GameOver:        g.phase == PhaseGameOver,
		Paused:          g.phase == PhasePaused,
		InMenu:          g.phase == PhaseMenu,
	}
}

// Phase returns the current top-level state.
func (g *Game) Phase() Phase {
	return g.phase
}

func init() {
	registry.Register("starfall", func() registry.Game {
		return New()
	})
}
