// internal/system/economy_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bastion/internal/config"
	"bastion/internal/defs"
	"bastion/internal/event"
)

func newTestLedger() (*Ledger, *event.Dispatcher) {
	d := event.NewDispatcher()
	return NewLedger(d), d
}

func TestAddGoldClampsToCap(t *testing.T) {
	l, _ := newTestLedger()

	l.AddGold(config.MaxGold * 2)
	assert.Equal(t, config.MaxGold, l.Gold())

	// A credit against a full cap changes nothing and fires nothing.
	l.AddGold(10)
	assert.Equal(t, config.MaxGold, l.Gold())
}

func TestAddGoldFiresEventsOnce(t *testing.T) {
	l, d := newTestLedger()
	r := record(d, event.GoldChanged, event.GoldEarned, event.ResourceChanged, event.ResourceInsufficient)

	require.Equal(t, 100, l.Gold(), "starting gold")
	l.AddGold(50)

	assert.Equal(t, 150, l.Gold())
	assert.Equal(t, 1, r.count(event.GoldChanged))
	assert.Equal(t, []interface{}{50}, r.payloads(event.GoldEarned))
	require.Equal(t, 1, r.count(event.ResourceChanged))
	change := r.payloads(event.ResourceChanged)[0].(event.ResourceChange)
	assert.Equal(t, event.ResourceChange{Kind: event.ResourceGold, Old: 100, New: 150}, change)

	// Overspend: no state change, insufficient fired instead.
	r.reset()
	assert.False(t, l.SpendGold(200))
	assert.Equal(t, 150, l.Gold())
	assert.Equal(t, 1, r.count(event.ResourceInsufficient))
	assert.Equal(t, 0, r.count(event.GoldChanged))
}

func TestSpendGoldRejectsNonPositiveAmounts(t *testing.T) {
	l, d := newTestLedger()
	r := record(d, event.GoldChanged, event.ResourceInsufficient)

	assert.False(t, l.SpendGold(0))
	assert.False(t, l.SpendGold(-5))
	assert.Equal(t, 100, l.Gold())
	assert.Equal(t, 2, r.count(event.ResourceInsufficient))
	assert.Equal(t, 0, r.count(event.GoldChanged))
}

func TestSpendGoldDeducts(t *testing.T) {
	l, d := newTestLedger()
	r := record(d, event.GoldChanged, event.ResourceChanged)

	assert.True(t, l.SpendGold(30))
	assert.Equal(t, 70, l.Gold())
	assert.Equal(t, 1, r.count(event.GoldChanged))
	assert.Equal(t, 1, r.count(event.ResourceChanged))
}

func TestChangeLivesClamps(t *testing.T) {
	l, d := newTestLedger()
	r := record(d, event.LivesChanged)

	l.ChangeLives(-config.MaxLives * 2)
	assert.Equal(t, 0, l.Lives())

	l.ChangeLives(config.MaxLives * 2)
	assert.Equal(t, config.MaxLives, l.Lives())

	// Zero delta fires nothing.
	l.ChangeLives(0)
	assert.Equal(t, 2, r.count(event.LivesChanged))
}

func TestAddScoreClamps(t *testing.T) {
	l, _ := newTestLedger()

	l.AddScore(10)
	l.AddScore(-10)
	assert.Equal(t, 10, l.Score())

	l.AddScore(config.MaxScore)
	assert.Equal(t, config.MaxScore, l.Score())
}

func TestCanAfford(t *testing.T) {
	l, _ := newTestLedger()
	assert.True(t, l.CanAfford(100))
	assert.True(t, l.CanAfford(0))
	assert.False(t, l.CanAfford(101))
}

func TestTowerCostUnknownTypeIsZero(t *testing.T) {
	l, _ := newTestLedger()
	assert.Equal(t, 0, l.TowerCost(defs.TowerType("NO_SUCH_TOWER")))
	assert.Equal(t, 50, l.TowerCost(defs.TowerArrow))
}

func TestTowerUpgradeCostFormula(t *testing.T) {
	l, _ := newTestLedger()
	l.SetTowerCosts([]defs.TowerCostEntry{
		{Type: defs.TowerArrow, BaseCost: 50, UpgradeCost: 30, CostMultiplier: 1.5, MaxLevel: 4},
	})

	// round(30·1.5^(L-1))
	assert.Equal(t, 30, l.TowerUpgradeCost(defs.TowerArrow, 1))
	assert.Equal(t, 45, l.TowerUpgradeCost(defs.TowerArrow, 2))
	assert.Equal(t, 68, l.TowerUpgradeCost(defs.TowerArrow, 3)) // round(67.5)

	// Max level and beyond yield the sentinel, never a cost.
	assert.Equal(t, -1, l.TowerUpgradeCost(defs.TowerArrow, 4))
	assert.Equal(t, -1, l.TowerUpgradeCost(defs.TowerArrow, 10))

	// Levels below 1 clamp to 1.
	assert.Equal(t, 30, l.TowerUpgradeCost(defs.TowerArrow, 0))
	assert.Equal(t, 30, l.TowerUpgradeCost(defs.TowerArrow, -3))

	assert.Equal(t, -1, l.TowerUpgradeCost(defs.TowerType("NO_SUCH_TOWER"), 1))
}

func TestPurchaseTower(t *testing.T) {
	l, d := newTestLedger()
	r := record(d, event.ResourceInsufficient)

	assert.True(t, l.PurchaseTower(defs.TowerArrow)) // 50
	assert.Equal(t, 50, l.Gold())

	assert.False(t, l.PurchaseTower(defs.TowerLightning)) // 200 > 50
	assert.Equal(t, 50, l.Gold())
	assert.Equal(t, 1, r.count(event.ResourceInsufficient))

	assert.False(t, l.PurchaseTower(defs.TowerType("NO_SUCH_TOWER")))
	assert.Equal(t, 50, l.Gold())
}

func TestUpgradeTower(t *testing.T) {
	l, _ := newTestLedger()
	l.SetTowerCosts([]defs.TowerCostEntry{
		{Type: defs.TowerArrow, BaseCost: 50, UpgradeCost: 30, CostMultiplier: 1.5, MaxLevel: 2},
	})

	assert.True(t, l.UpgradeTower(defs.TowerArrow, 1))
	assert.Equal(t, 70, l.Gold())

	// At max level: rejected without spending.
	assert.False(t, l.UpgradeTower(defs.TowerArrow, 2))
	assert.Equal(t, 70, l.Gold())
}

func TestSetCapsReclamps(t *testing.T) {
	l, _ := newTestLedger()
	l.SetCaps(40, 100, 5)
	assert.Equal(t, 40, l.Gold())
	assert.Equal(t, 5, l.Lives())
}

func TestResetRestoresStartingResources(t *testing.T) {
	l, _ := newTestLedger()
	l.SpendGold(80)
	l.AddScore(500)
	l.ChangeLives(-3)

	l.Reset()

	assert.Equal(t, config.StartingGold, l.Gold())
	assert.Equal(t, 0, l.Score())
	assert.Equal(t, config.StartingLives, l.Lives())
}
