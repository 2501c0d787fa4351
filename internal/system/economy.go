// internal/system/economy.go
package system

import (
	"log/slog"
	"math"

	"bastion/internal/component"
	"bastion/internal/config"
	"bastion/internal/defs"
	"bastion/internal/event"
	"bastion/internal/utils"
)

// Ledger owns the gold/score/lives counters and the tower pricing table.
// Every mutation is clamped into [0, max]; a successful mutation fires exactly
// one specific change event plus one generic ResourceChanged, and a failed
// spend fires ResourceInsufficient instead.
type Ledger struct {
	dispatcher *event.Dispatcher
	log        *slog.Logger

	state    component.ResourceState
	maxGold  int
	maxScore int
	maxLives int

	costs map[defs.TowerType]defs.TowerCostEntry
}

// NewLedger creates a ledger with the default caps, the built-in tower cost
// table and the starting resources.
func NewLedger(dispatcher *event.Dispatcher) *Ledger {
	l := &Ledger{
		dispatcher: dispatcher,
		log:        slog.With("system", "economy"),
		maxGold:    config.MaxGold,
		maxScore:   config.MaxScore,
		maxLives:   config.MaxLives,
	}
	l.SetTowerCosts(defs.DefaultTowerCosts)
	l.Reset()
	return l
}

// Reset restores the starting resources. Called on session start/restart; it
// does not fire change notifications.
func (l *Ledger) Reset() {
	l.state = component.ResourceState{
		Gold:  utils.ClampInt(config.StartingGold, 0, l.maxGold),
		Lives: utils.ClampInt(config.StartingLives, 0, l.maxLives),
	}
}

// SetTowerCosts replaces the pricing table. One entry per tower type; a
// duplicate type keeps the last entry.
func (l *Ledger) SetTowerCosts(entries []defs.TowerCostEntry) {
	l.costs = make(map[defs.TowerType]defs.TowerCostEntry, len(entries))
	for _, entry := range entries {
		l.costs[entry.Type] = entry
	}
}

// SetCaps replaces the resource maxima and re-clamps the current values.
func (l *Ledger) SetCaps(maxGold, maxScore, maxLives int) {
	l.maxGold, l.maxScore, l.maxLives = maxGold, maxScore, maxLives
	l.state.Gold = utils.ClampInt(l.state.Gold, 0, maxGold)
	l.state.Score = utils.ClampInt(l.state.Score, 0, maxScore)
	l.state.Lives = utils.ClampInt(l.state.Lives, 0, maxLives)
}

// Gold returns the current gold.
func (l *Ledger) Gold() int { return l.state.Gold }

// Score returns the current score.
func (l *Ledger) Score() int { return l.state.Score }

// Lives returns the current lives.
func (l *Ledger) Lives() int { return l.state.Lives }

// State returns a copy of the resource counters.
func (l *Ledger) State() component.ResourceState { return l.state }

// AddGold credits gold, clamped to the cap. Fires GoldChanged, GoldEarned and
// ResourceChanged when the value actually changed.
func (l *Ledger) AddGold(amount int) {
	if amount <= 0 {
		return
	}
	old := l.state.Gold
	l.state.Gold = utils.ClampInt(old+amount, 0, l.maxGold)
	if l.state.Gold == old {
		return
	}
	l.dispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: l.state.Gold})
	l.dispatcher.Dispatch(event.Event{Type: event.GoldEarned, Data: l.state.Gold - old})
	l.dispatcher.Dispatch(event.Event{Type: event.ResourceChanged, Data: event.ResourceChange{
		Kind: event.ResourceGold, Old: old, New: l.state.Gold,
	}})
}

// SpendGold deducts gold if the amount is positive and affordable. A failed
// spend fires ResourceInsufficient and leaves the state untouched.
func (l *Ledger) SpendGold(amount int) bool {
	if amount <= 0 || l.state.Gold < amount {
		l.dispatcher.Dispatch(event.Event{Type: event.ResourceInsufficient, Data: event.ResourceGold})
		return false
	}
	old := l.state.Gold
	l.state.Gold = old - amount
	l.dispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: l.state.Gold})
	l.dispatcher.Dispatch(event.Event{Type: event.ResourceChanged, Data: event.ResourceChange{
		Kind: event.ResourceGold, Old: old, New: l.state.Gold,
	}})
	return true
}

// AddScore credits score, clamped to the cap. Fires ScoreChanged, ScoreEarned
// and ResourceChanged when the value actually changed.
func (l *Ledger) AddScore(amount int) {
	if amount <= 0 {
		return
	}
	old := l.state.Score
	l.state.Score = utils.ClampInt(old+amount, 0, l.maxScore)
	if l.state.Score == old {
		return
	}
	l.dispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: l.state.Score})
	l.dispatcher.Dispatch(event.Event{Type: event.ScoreEarned, Data: l.state.Score - old})
	l.dispatcher.Dispatch(event.Event{Type: event.ResourceChanged, Data: event.ResourceChange{
		Kind: event.ResourceScore, Old: old, New: l.state.Score,
	}})
}

// ChangeLives applies a clamped delta to lives. A zero delta or a clamp that
// leaves the value unchanged fires nothing.
func (l *Ledger) ChangeLives(delta int) {
	if delta == 0 {
		return
	}
	old := l.state.Lives
	l.state.Lives = utils.ClampInt(old+delta, 0, l.maxLives)
	if l.state.Lives == old {
		return
	}
	l.dispatcher.Dispatch(event.Event{Type: event.LivesChanged, Data: l.state.Lives})
	l.dispatcher.Dispatch(event.Event{Type: event.ResourceChanged, Data: event.ResourceChange{
		Kind: event.ResourceLives, Old: old, New: l.state.Lives,
	}})
}

// CanAfford reports whether the current gold covers the cost.
func (l *Ledger) CanAfford(cost int) bool {
	return l.state.Gold >= cost
}

// TowerCost returns the base cost of the tower type, or 0 for an unknown
// type. The silent zero is a documented quirk of the pricing table; callers
// that need to distinguish should check the table directly.
func (l *Ledger) TowerCost(towerType defs.TowerType) int {
	entry, ok := l.costs[towerType]
	if !ok {
		l.log.Warn("tower cost lookup for unknown type", "type", string(towerType))
		return 0
	}
	return entry.BaseCost
}

// TowerUpgradeCost returns the cost of upgrading from currentLevel
// (1-indexed), or -1 when the tower is at max level or the type is unknown.
// Levels below 1 are clamped to 1.
func (l *Ledger) TowerUpgradeCost(towerType defs.TowerType, currentLevel int) int {
	entry, ok := l.costs[towerType]
	if !ok {
		l.log.Warn("upgrade cost lookup for unknown type", "type", string(towerType))
		return -1
	}
	if currentLevel < 1 {
		currentLevel = 1
	}
	if currentLevel >= entry.MaxLevel {
		return -1
	}
	return int(math.Round(float64(entry.UpgradeCost) * math.Pow(entry.CostMultiplier, float64(currentLevel-1))))
}

// PurchaseTower looks up the base cost and spends it. Unknown types are
// refused outright so the zero-cost quirk cannot mint free towers.
func (l *Ledger) PurchaseTower(towerType defs.TowerType) bool {
	if _, ok := l.costs[towerType]; !ok {
		l.log.Warn("purchase refused for unknown tower type", "type", string(towerType))
		return false
	}
	return l.SpendGold(l.TowerCost(towerType))
}

// UpgradeTower spends the scaled upgrade cost for the given current level.
// Returns false without spending when the tower is already at max level.
func (l *Ledger) UpgradeTower(towerType defs.TowerType, currentLevel int) bool {
	cost := l.TowerUpgradeCost(towerType, currentLevel)
	if cost < 0 {
		return false
	}
	return l.SpendGold(cost)
}
