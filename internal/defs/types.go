// internal/defs/types.go
package defs

// TowerType identifies a buildable tower kind in the cost table.
type TowerType string

const (
	TowerArrow     TowerType = "ARROW"
	TowerCannon    TowerType = "CANNON"
	TowerFrost     TowerType = "FROST"
	TowerLightning TowerType = "LIGHTNING"
)

// TowerCostEntry holds the pricing and upgrade scaling for one tower type.
// Upgrade cost at level L (1-indexed) is round(UpgradeCost·CostMultiplier^(L-1));
// levels at or above MaxLevel cannot be upgraded.
type TowerCostEntry struct {
	Type           TowerType `json:"type"`
	BaseCost       int       `json:"base_cost"`
	UpgradeCost    int       `json:"upgrade_cost"`
	CostMultiplier float64   `json:"cost_multiplier"`
	MaxLevel       int       `json:"max_level"`
}

// EnemyDefinition holds the static data for a specific kind of enemy.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Speed  float64 `json:"speed"`
	Damage int     `json:"damage"` // inflicted on the player when it reaches the end
}

// EnemySpawnSpec describes one batch of spawns inside a wave: Count enemies
// of EnemyID, with SpawnDelay seconds of cooperative waiting before each
// spawn, stats scaled by the multipliers.
type EnemySpawnSpec struct {
	EnemyID          string  `json:"enemy_id"`
	Count            int     `json:"count"`
	SpawnDelay       float64 `json:"spawn_delay"`
	HealthMultiplier float64 `json:"health_multiplier"`
	SpeedMultiplier  float64 `json:"speed_multiplier"`
}

// WaveDefinition describes one scripted wave. Definitions are immutable once
// the wave has started.
type WaveDefinition struct {
	Number          int              `json:"number"`
	Name            string           `json:"name"`
	Spawns          []EnemySpawnSpec `json:"spawns"`
	WaveDelay       float64          `json:"wave_delay"`       // pause after completion, before the next wave
	PreparationTime float64          `json:"preparation_time"` // countdown before spawning begins
	GoldReward      int              `json:"gold_reward"`
	ScoreReward     int              `json:"score_reward"`
}

// TotalSpawns returns the number of enemies the wave will try to spawn.
func (w WaveDefinition) TotalSpawns() int {
	total := 0
	for _, spec := range w.Spawns {
		total += spec.Count
	}
	return total
}
