// internal/defs/enemies.go
package defs

// EnemyDefs is the built-in enemy library, keyed by ID. LoadEnemyDefinitions
// can replace it with data from a file.
var EnemyDefs = map[string]EnemyDefinition{
	"ENEMY_GRUNT":  {ID: "ENEMY_GRUNT", Name: "Grunt", Health: 100, Speed: 80, Damage: 10},
	"ENEMY_RUNNER": {ID: "ENEMY_RUNNER", Name: "Runner", Health: 60, Speed: 140, Damage: 5},
	"ENEMY_BRUTE":  {ID: "ENEMY_BRUTE", Name: "Brute", Health: 300, Speed: 50, Damage: 20},
	"ENEMY_BOSS":   {ID: "ENEMY_BOSS", Name: "Boss", Health: 1500, Speed: 40, Damage: 50},
}
