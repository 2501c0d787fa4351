// internal/defs/towers.go
package defs

// DefaultTowerCosts is the built-in pricing table, one entry per tower type.
var DefaultTowerCosts = []TowerCostEntry{
	{Type: TowerArrow, BaseCost: 50, UpgradeCost: 30, CostMultiplier: 1.5, MaxLevel: 5},
	{Type: TowerCannon, BaseCost: 120, UpgradeCost: 80, CostMultiplier: 1.6, MaxLevel: 4},
	{Type: TowerFrost, BaseCost: 90, UpgradeCost: 60, CostMultiplier: 1.4, MaxLevel: 4},
	{Type: TowerLightning, BaseCost: 200, UpgradeCost: 150, CostMultiplier: 1.8, MaxLevel: 3},
}
