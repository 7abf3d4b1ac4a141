package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultStarfallConfig returns the default Starfall configuration.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		World: WorldConfig{
			Width:  750,
			Height: 550,
		},
		Ship: ShipConfig{
			Radius:              16,
			MovementSpeed:       400,
			MaxBulletsPerSecond: 4,
		},
		Bullets: BulletsConfig{
			PlayerSize:        32,
			PlayerOffset:      24,
			PlayerSpeedFactor: 2,
			EnemySize:         16,
			EnemySpeedFactor:  3,
		},
		Spawner: SpawnerConfig{
			BaseWidth:   750,
			BaseEnemies: 30,
			MinSize:     16,
			MaxSize:     64,
			MinSpeed:    50,
			MaxSpeed:    150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultStarfallYAML
}
