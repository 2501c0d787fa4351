// internal/defs/waves.go
package defs

// DefaultWaves is the built-in wave sequence, ordered by index. Later waves
// mix spawn batches; the boss wave ends the run.
var DefaultWaves = []WaveDefinition{
	{
		Number: 1, Name: "First Contact",
		Spawns: []EnemySpawnSpec{
			{EnemyID: "ENEMY_GRUNT", Count: 5, SpawnDelay: 1.2, HealthMultiplier: 1, SpeedMultiplier: 1},
		},
		WaveDelay: 5, PreparationTime: 10, GoldReward: 50, ScoreReward: 100,
	},
	{
		Number: 2, Name: "Picking Up",
		Spawns: []EnemySpawnSpec{
			{EnemyID: "ENEMY_GRUNT", Count: 8, SpawnDelay: 1.0, HealthMultiplier: 1, SpeedMultiplier: 1},
			{EnemyID: "ENEMY_RUNNER", Count: 4, SpawnDelay: 0.6, HealthMultiplier: 1, SpeedMultiplier: 1},
		},
		WaveDelay: 5, PreparationTime: 8, GoldReward: 75, ScoreReward: 200,
	},
	{
		Number: 3, Name: "Heavy Footsteps",
		Spawns: []EnemySpawnSpec{
			{EnemyID: "ENEMY_BRUTE", Count: 3, SpawnDelay: 2.0, HealthMultiplier: 1, SpeedMultiplier: 1},
			{EnemyID: "ENEMY_GRUNT", Count: 10, SpawnDelay: 0.8, HealthMultiplier: 1.2, SpeedMultiplier: 1},
		},
		WaveDelay: 6, PreparationTime: 8, GoldReward: 100, ScoreReward: 350,
	},
	{
		Number: 4, Name: "The Stampede",
		Spawns: []EnemySpawnSpec{
			{EnemyID: "ENEMY_RUNNER", Count: 15, SpawnDelay: 0.4, HealthMultiplier: 1.2, SpeedMultiplier: 1.3},
		},
		WaveDelay: 6, PreparationTime: 6, GoldReward: 125, ScoreReward: 500,
	},
	{
		Number: 5, Name: "Warlord",
		Spawns: []EnemySpawnSpec{
			{EnemyID: "ENEMY_GRUNT", Count: 8, SpawnDelay: 0.8, HealthMultiplier: 1.5, SpeedMultiplier: 1},
			{EnemyID: "ENEMY_BOSS", Count: 1, SpawnDelay: 3.0, HealthMultiplier: 1, SpeedMultiplier: 1},
		},
		WaveDelay: 0, PreparationTime: 12, GoldReward: 300, ScoreReward: 1500,
	},
}
