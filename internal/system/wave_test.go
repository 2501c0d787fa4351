// internal/system/wave_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bastion/internal/component"
	"bastion/internal/defs"
	"bastion/internal/entity"
	"bastion/internal/event"
	"bastion/internal/utils"
)

var testEnemyLibrary = map[string]defs.EnemyDefinition{
	"ENEMY_GRUNT": {ID: "ENEMY_GRUNT", Name: "Grunt", Health: 100, Speed: 80, Damage: 10},
}

func newTestScheduler(waves []defs.WaveDefinition) (*WaveScheduler, *entity.Registry, *event.Dispatcher) {
	d := event.NewDispatcher()
	registry := entity.NewRegistry()
	s := NewWaveScheduler(d, registry, entity.NewLibraryFactory(testEnemyLibrary), utils.NewPRNGService(1))
	s.SetWaves(waves)
	s.SetSpawnPoints([]component.Vec2{{X: 0, Y: 0}})
	return s, registry, d
}

// advance ticks the scheduler in fixed steps until total seconds have passed.
func advance(s *WaveScheduler, total, step float64) {
	for elapsed := 0.0; elapsed < total; elapsed += step {
		s.Update(step)
	}
}

func singleSpecWave(count int, spawnDelay, prep float64) defs.WaveDefinition {
	return defs.WaveDefinition{
		Number: 1, Name: "Test Wave",
		Spawns: []defs.EnemySpawnSpec{
			{EnemyID: "ENEMY_GRUNT", Count: count, SpawnDelay: spawnDelay, HealthMultiplier: 1, SpeedMultiplier: 1},
		},
		PreparationTime: prep,
		GoldReward:      50, ScoreReward: 100,
	}
}

func TestWaveSpawnSequence(t *testing.T) {
	s, registry, d := newTestScheduler([]defs.WaveDefinition{singleSpecWave(3, 1, 0)})
	r := record(d, event.WaveStarted, event.WaveCompleted, event.AllWavesCompleted,
		event.EnemySpawned, event.EnemiesRemainingChanged)

	s.StartWave(0)
	require.True(t, s.IsWaveActive())
	assert.Equal(t, []interface{}{1}, r.payloads(event.WaveStarted))
	assert.Equal(t, component.WaveSpawning, s.Phase(), "no preparation time, straight to spawning")
	assert.Equal(t, 3, s.EnemiesRemaining())

	// Spawns arrive at 1s intervals.
	advance(s, 1.0, 0.5)
	assert.Equal(t, []interface{}{1}, r.payloads(event.EnemySpawned))
	advance(s, 2.0, 0.5)
	assert.Equal(t, []interface{}{1, 2, 3}, r.payloads(event.EnemySpawned))
	assert.Equal(t, component.WaveAwaitingClear, s.Phase(), "spawning done without waiting for deaths")
	assert.Equal(t, 3, registry.Len())

	// Kill everything; the completion poll flips the wave to Completed.
	for _, id := range registry.IDs() {
		s.NotifyEnemyKilled(id)
	}
	assert.Equal(t, 0, s.EnemiesRemaining())
	assert.Equal(t, 3, s.TotalKilled())
	advance(s, 0.5, 0.5)

	require.Equal(t, 1, r.count(event.WaveCompleted))
	reward := r.payloads(event.WaveCompleted)[0].(event.WaveReward)
	assert.Equal(t, event.WaveReward{Number: 1, Gold: 50, Score: 100}, reward)
	assert.Equal(t, 1, r.count(event.AllWavesCompleted))
	assert.False(t, s.IsWaveActive())
}

func TestPreparationCountdown(t *testing.T) {
	s, _, d := newTestScheduler([]defs.WaveDefinition{singleSpecWave(1, 0, 2)})
	r := record(d, event.PreparationTimeChanged, event.EnemySpawned)

	s.StartWave(0)
	assert.Equal(t, component.WavePreparation, s.Phase())

	advance(s, 1.5, 0.5)
	assert.Equal(t, []interface{}{1.5, 1.0, 0.5}, r.payloads(event.PreparationTimeChanged))

	// Final tick clamps the last notification to exactly 0.
	s.Update(0.5)
	payloads := r.payloads(event.PreparationTimeChanged)
	assert.Equal(t, 0.0, payloads[len(payloads)-1])

	// Zero-delay spec bursts as soon as spawning begins.
	assert.Equal(t, 1, r.count(event.EnemySpawned))
	assert.Equal(t, component.WaveAwaitingClear, s.Phase())
}

func TestStartWaveWhileActiveIsRejected(t *testing.T) {
	s, _, d := newTestScheduler([]defs.WaveDefinition{singleSpecWave(3, 1, 5)})
	r := record(d, event.WaveStarted)

	s.StartWave(0)
	s.StartWave(0)

	assert.True(t, s.IsWaveActive())
	assert.Equal(t, 1, r.count(event.WaveStarted), "second start must not spawn a second state machine")
}

func TestStartWaveUnknownIndexIsDropped(t *testing.T) {
	s, _, d := newTestScheduler([]defs.WaveDefinition{singleSpecWave(1, 0, 0)})
	r := record(d, event.WaveStarted)

	s.StartWave(5)
	s.StartWave(-1)

	assert.False(t, s.IsWaveActive())
	assert.Equal(t, 0, r.count(event.WaveStarted))
}

func TestEnemyReachedEndForwardsDamage(t *testing.T) {
	s, registry, d := newTestScheduler([]defs.WaveDefinition{singleSpecWave(2, 0, 0)})
	r := record(d, event.EnemyBreached, event.EnemyKilled, event.EnemiesRemainingChanged)

	s.StartWave(0)
	require.Equal(t, 2, registry.Len())

	ids := registry.IDs()
	s.NotifyEnemyReachedEnd(ids[0])

	require.Equal(t, 1, r.count(event.EnemyBreached))
	breach := r.payloads(event.EnemyBreached)[0].(event.Breach)
	assert.Equal(t, 10, breach.Damage)
	assert.Equal(t, 1, s.EnemiesRemaining())
	assert.Equal(t, 0, s.TotalKilled(), "a breach is not a kill")

	// A duplicate notification for a resolved enemy is ignored.
	s.NotifyEnemyReachedEnd(ids[0])
	s.NotifyEnemyKilled(ids[0])
	assert.Equal(t, 1, s.EnemiesRemaining())
	assert.Equal(t, 1, r.count(event.EnemyBreached))
}

func TestWaveDelayAutoAdvances(t *testing.T) {
	wave1 := singleSpecWave(1, 0, 0)
	wave1.WaveDelay = 1
	wave2 := singleSpecWave(1, 0, 0)
	wave2.Number = 2
	s, registry, d := newTestScheduler([]defs.WaveDefinition{wave1, wave2})
	r := record(d, event.WaveStarted, event.WaveCompleted)

	s.StartWave(0)
	s.NotifyEnemyKilled(registry.IDs()[0])
	advance(s, 0.5, 0.5)
	require.Equal(t, 1, r.count(event.WaveCompleted))
	assert.Equal(t, component.WaveCompleted, s.Phase())
	assert.True(t, s.IsWaveActive(), "the chain stays active through the post-wave delay")

	advance(s, 1.0, 0.5)
	assert.Equal(t, []interface{}{1, 2}, r.payloads(event.WaveStarted))
}

func TestSpawnMissStillCountsDown(t *testing.T) {
	s, _, d := newTestScheduler([]defs.WaveDefinition{singleSpecWave(2, 0, 0)})
	s.SetSpawnPoints(nil)
	r := record(d, event.EnemySpawned, event.WaveCompleted)

	s.StartWave(0)
	assert.Equal(t, 0, s.TotalSpawned())
	assert.Equal(t, 0, r.count(event.EnemySpawned))
	assert.Equal(t, 0, s.EnemiesRemaining(), "missed spawns release their budget")

	advance(s, 0.5, 0.5)
	assert.Equal(t, 1, r.count(event.WaveCompleted))
}

func TestUnknownEnemyKindIsSkipped(t *testing.T) {
	wave := singleSpecWave(1, 0, 0)
	wave.Spawns = append(wave.Spawns, defs.EnemySpawnSpec{
		EnemyID: "ENEMY_UNKNOWN", Count: 1, SpawnDelay: 0, HealthMultiplier: 1, SpeedMultiplier: 1,
	})
	s, registry, _ := newTestScheduler([]defs.WaveDefinition{wave})

	s.StartWave(0)

	assert.Equal(t, 1, s.TotalSpawned())
	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, 1, s.EnemiesRemaining())
}

func TestStopCurrentWave(t *testing.T) {
	s, registry, _ := newTestScheduler([]defs.WaveDefinition{singleSpecWave(3, 0, 0)})

	s.StartWave(0)
	require.Equal(t, 3, registry.Len())

	s.StopCurrentWave()

	assert.False(t, s.IsWaveActive())
	assert.Equal(t, component.WaveIdle, s.Phase())
	assert.Equal(t, 0, s.EnemiesRemaining())
	assert.Equal(t, 0, registry.Len())
	assert.Equal(t, 3, s.TotalSpawned(), "cumulative totals survive a stop")
}

func TestResetClearsEverything(t *testing.T) {
	s, registry, _ := newTestScheduler([]defs.WaveDefinition{singleSpecWave(3, 0, 0)})

	s.StartWave(0)
	s.NotifyEnemyKilled(registry.IDs()[0])
	s.Reset()

	assert.False(t, s.IsWaveActive())
	assert.Equal(t, 0, s.EnemiesRemaining())
	assert.Equal(t, 0, s.TotalSpawned())
	assert.Equal(t, 0, s.TotalKilled())
	assert.Equal(t, 0, registry.Len())
	assert.Equal(t, 0, s.CurrentWaveIndex())
}

func TestSetWavesRejectedWhileActive(t *testing.T) {
	s, _, _ := newTestScheduler([]defs.WaveDefinition{singleSpecWave(1, 1, 5)})

	s.StartWave(0)
	s.SetWaves(nil)

	assert.Equal(t, 1, s.WaveCount(), "wave list is immutable while a wave runs")
}

func TestPausedTimelineDoesNotAdvance(t *testing.T) {
	// The scheduler has no clock of its own: withholding Update freezes the
	// preparation countdown in place.
	s, _, _ := newTestScheduler([]defs.WaveDefinition{singleSpecWave(1, 0, 3)})

	s.StartWave(0)
	advance(s, 1.0, 0.5)
	remaining := s.PreparationRemaining()
	assert.InDelta(t, 2.0, remaining, 1e-9)

	// No Update calls: nothing moves.
	assert.Equal(t, remaining, s.PreparationRemaining())
}
