// Package config provides YAML-based game configuration loading and
// difficulty presets for Starfall.
package config

// StarfallConfig contains all configuration for the Starfall shooter.
type StarfallConfig struct {
	World   WorldConfig   `yaml:"world"`
	Ship    ShipConfig    `yaml:"ship"`
	Bullets BulletsConfig `yaml:"bullets"`
	Spawner SpawnerConfig `yaml:"spawner"`
}

// WorldConfig defines the virtual playfield dimensions in pixels.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship parameters.
type ShipConfig struct {
	Radius              float64 `yaml:"radius"`
	MovementSpeed       float64 `yaml:"movement_speed"` // pixels per second
	MaxBulletsPerSecond float64 `yaml:"max_bullets_per_second"`
}

// BulletsConfig defines projectile parameters for both sides.
type BulletsConfig struct {
	PlayerSize        float64 `yaml:"player_size"`
	PlayerOffset      float64 `yaml:"player_offset"`       // muzzle offset above ship center
	PlayerSpeedFactor float64 `yaml:"player_speed_factor"` // multiplier on ship speed
	EnemySize         float64 `yaml:"enemy_size"`
	EnemySpeedFactor  float64 `yaml:"enemy_speed_factor"` // multiplier on enemy speed
}

// SpawnerConfig defines enemy spawning parameters. Sizes and the enemy cap
// scale with world width relative to base_width.
type SpawnerConfig struct {
	BaseWidth   float64 `yaml:"base_width"`
	BaseEnemies int     `yaml:"base_enemies"`
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyStarfallPreset modifies the config based on a difficulty preset.
// "fixed" and "normal" leave the loaded values untouched.
func ApplyStarfallPreset(cfg *StarfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.BaseEnemies = 20
		cfg.Spawner.MaxSpeed = 120
		cfg.Ship.MaxBulletsPerSecond = 6
	case DifficultyHard:
		cfg.Spawner.BaseEnemies = 40
		cfg.Spawner.MinSpeed = 80
		cfg.Spawner.MaxSpeed = 200
		cfg.Ship.MaxBulletsPerSecond = 3
	}
}
