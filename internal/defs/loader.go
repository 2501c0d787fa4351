// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadWaveDefinitions reads a wave list from a JSON file. The file holds an
// array of WaveDefinition objects in play order.
func LoadWaveDefinitions(path string) ([]WaveDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var waves []WaveDefinition
	if err := json.Unmarshal(file, &waves); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}
	return waves, nil
}

// LoadEnemyDefinitions reads an enemy library from a JSON file and returns it
// keyed by enemy ID.
func LoadEnemyDefinitions(path string) (map[string]EnemyDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		library[def.ID] = def
	}
	return library, nil
}

// LoadTowerCosts reads a tower pricing table from a JSON file.
func LoadTowerCosts(path string) ([]TowerCostEntry, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower cost file: %w", err)
	}

	var costs []TowerCostEntry
	if err := json.Unmarshal(file, &costs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower costs: %w", err)
	}
	return costs, nil
}
