// internal/system/wave.go
package system

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"bastion/internal/component"
	"bastion/internal/config"
	"bastion/internal/defs"
	"bastion/internal/entity"
	"bastion/internal/event"
	"bastion/internal/telemetry"
	"bastion/internal/types"
	"bastion/internal/utils"
)

// WaveScheduler drives the timed spawn sequence for one wave at a time:
// Idle → Preparation → Spawning → AwaitingClear → Completed. All waiting is
// cooperative — the scheduler only advances inside Update(dt), so pausing the
// game freezes every pending delay without cancelling it.
type WaveScheduler struct {
	dispatcher *event.Dispatcher
	registry   *entity.Registry
	factory    entity.Factory
	rng        *utils.PRNGService
	log        *slog.Logger
	tracer     trace.Tracer

	waves       []defs.WaveDefinition
	spawnPoints []component.Vec2
	waypoints   []component.Vec2

	run          component.WaveRunState
	currentIndex int
	active       bool

	// Spawning cursor: position inside the current wave's spec list.
	specIndex     int
	spawnedInSpec int
	spawnTimer    float64

	pollTimer  float64 // AwaitingClear completion poll
	delayTimer float64 // post-wave pause before the next wave begins

	waveSpan trace.Span
}

// NewWaveScheduler creates a scheduler with the built-in wave list. Waves,
// spawn points, waypoints and the factory can all be replaced before a wave
// starts.
func NewWaveScheduler(dispatcher *event.Dispatcher, registry *entity.Registry, factory entity.Factory, rng *utils.PRNGService) *WaveScheduler {
	return &WaveScheduler{
		dispatcher: dispatcher,
		registry:   registry,
		factory:    factory,
		rng:        rng,
		log:        slog.With("system", "wave"),
		tracer:     telemetry.Tracer("wave"),
		waves:      defs.DefaultWaves,
	}
}

// SetWaves replaces the wave list. Rejected while a wave is running — wave
// definitions are immutable once a wave starts.
func (s *WaveScheduler) SetWaves(waves []defs.WaveDefinition) {
	if s.active {
		s.log.Warn("wave list change rejected while a wave is active")
		return
	}
	s.waves = waves
}

// SetSpawnPoints replaces the spawn point list supplied by the map
// collaborator. One point is chosen uniformly at random per spawn.
func (s *WaveScheduler) SetSpawnPoints(points []component.Vec2) {
	s.spawnPoints = points
}

// SetWaypoints replaces the path handed to each spawned enemy.
func (s *WaveScheduler) SetWaypoints(points []component.Vec2) {
	s.waypoints = points
}

// SetFactory replaces the enemy factory. Rejected while a wave is running.
func (s *WaveScheduler) SetFactory(factory entity.Factory) {
	if s.active {
		s.log.Warn("factory change rejected while a wave is active")
		return
	}
	s.factory = factory
}

// StartWave begins the wave at the given index. Starting while a wave is
// active is rejected, not queued; an out-of-range index is logged and dropped.
func (s *WaveScheduler) StartWave(index int) {
	if s.active {
		s.log.Warn("wave start rejected, a wave is already active", "index", index)
		return
	}
	if index < 0 || index >= len(s.waves) {
		s.log.Warn("wave start dropped, unknown wave index", "index", index, "waves", len(s.waves))
		return
	}
	s.currentIndex = index
	s.active = true
	s.begin()
}

// Update advances the active wave by dt seconds of game time.
func (s *WaveScheduler) Update(dt float64) {
	if !s.active {
		return
	}
	switch s.run.Phase {
	case component.WavePreparation:
		s.tickPreparation(dt)
	case component.WaveSpawning:
		s.tickSpawning(dt)
	case component.WaveAwaitingClear:
		s.tickAwaitingClear(dt)
	case component.WaveCompleted:
		s.tickWaveDelay(dt)
	}
}

// NotifyEnemyKilled resolves a tracked enemy as killed: it leaves the active
// set and the remaining count drops. Kills inflict no player damage.
func (s *WaveScheduler) NotifyEnemyKilled(id types.EntityID) {
	if s.registry.Remove(id) == nil {
		return
	}
	s.run.TotalKilled++
	s.run.EnemiesRemaining--
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: s.run.TotalKilled})
	s.dispatcher.Dispatch(event.Event{Type: event.EnemiesRemainingChanged, Data: s.run.EnemiesRemaining})
}

// NotifyEnemyReachedEnd resolves a tracked enemy as having breached the exit.
// The enemy's damage is forwarded to the coordinator via EnemyBreached.
func (s *WaveScheduler) NotifyEnemyReachedEnd(id types.EntityID) {
	enemy := s.registry.Remove(id)
	if enemy == nil {
		return
	}
	s.run.EnemiesRemaining--
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyBreached, Data: event.Breach{
		EnemyID: id, Damage: enemy.Damage,
	}})
	s.dispatcher.Dispatch(event.Event{Type: event.EnemiesRemainingChanged, Data: s.run.EnemiesRemaining})
}

// StopCurrentWave aborts the running wave: every pending delay is dropped and
// the active-enemy set is cleared. Rewards already granted are not rolled
// back.
func (s *WaveScheduler) StopCurrentWave() {
	if !s.active {
		return
	}
	s.endWaveSpan("stopped")
	s.active = false
	s.run.Phase = component.WaveIdle
	s.run.EnemiesRemaining = 0
	s.run.PreparationRemaining = 0
	s.registry.Clear()
}

// Reset reclaims all scheduler state: counters, cursor, wave index and every
// tracked enemy reference.
func (s *WaveScheduler) Reset() {
	s.endWaveSpan("reset")
	s.active = false
	s.currentIndex = 0
	s.run = component.WaveRunState{}
	s.specIndex = 0
	s.spawnedInSpec = 0
	s.spawnTimer = 0
	s.pollTimer = 0
	s.delayTimer = 0
	s.registry.Clear()
}

// IsWaveActive reports whether a wave chain is running, including the
// preparation countdown and the post-wave delay before the next wave.
func (s *WaveScheduler) IsWaveActive() bool { return s.active }

// Phase returns the current wave phase.
func (s *WaveScheduler) Phase() component.WavePhase { return s.run.Phase }

// EnemiesRemaining returns the live spawned-but-unresolved count for the
// active wave.
func (s *WaveScheduler) EnemiesRemaining() int { return s.run.EnemiesRemaining }

// TotalSpawned returns the cumulative spawn count for the session.
func (s *WaveScheduler) TotalSpawned() int { return s.run.TotalSpawned }

// TotalKilled returns the cumulative kill count for the session.
func (s *WaveScheduler) TotalKilled() int { return s.run.TotalKilled }

// PreparationRemaining returns the seconds left in the preparation countdown.
func (s *WaveScheduler) PreparationRemaining() float64 { return s.run.PreparationRemaining }

// CurrentWaveIndex returns the index of the running wave, or of the next wave
// to start when idle.
func (s *WaveScheduler) CurrentWaveIndex() int { return s.currentIndex }

// WaveCount returns the number of configured waves.
func (s *WaveScheduler) WaveCount() int { return len(s.waves) }

// ActiveEnemies returns the size of the active-enemy set.
func (s *WaveScheduler) ActiveEnemies() int { return s.registry.Len() }

// begin starts the wave at currentIndex: fresh per-wave counters (cumulative
// totals survive), the wave span, WaveStarted, then Preparation or straight
// to Spawning.
func (s *WaveScheduler) begin() {
	wave := s.waves[s.currentIndex]
	s.run.Phase = component.WaveIdle
	s.run.EnemiesRemaining = 0
	s.run.PreparationRemaining = wave.PreparationTime
	s.specIndex = 0
	s.spawnedInSpec = 0
	s.spawnTimer = 0
	s.pollTimer = 0

	_, s.waveSpan = s.tracer.Start(context.Background(), "wave.run",
		trace.WithAttributes(
			attribute.Int("wave.number", wave.Number),
			attribute.String("wave.name", wave.Name),
			attribute.Int("wave.planned_spawns", wave.TotalSpawns()),
		))

	s.log.Info("wave started", "number", wave.Number, "name", wave.Name)
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: wave.Number})

	if wave.PreparationTime > 0 {
		s.run.Phase = component.WavePreparation
	} else {
		s.enterSpawning()
	}
}

func (s *WaveScheduler) tickPreparation(dt float64) {
	s.run.PreparationRemaining -= dt
	if s.run.PreparationRemaining <= 0 {
		s.run.PreparationRemaining = 0
		s.dispatcher.Dispatch(event.Event{Type: event.PreparationTimeChanged, Data: 0.0})
		s.enterSpawning()
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: event.PreparationTimeChanged, Data: s.run.PreparationRemaining})
}

// enterSpawning fixes the remaining-enemy budget to the sum of all spec
// counts, then runs a zero-dt spawn tick so zero-delay specs fire immediately.
func (s *WaveScheduler) enterSpawning() {
	wave := s.waves[s.currentIndex]
	s.run.Phase = component.WaveSpawning
	s.run.EnemiesRemaining = wave.TotalSpawns()
	s.dispatcher.Dispatch(event.Event{Type: event.EnemiesRemainingChanged, Data: s.run.EnemiesRemaining})
	s.tickSpawning(0)
}

func (s *WaveScheduler) tickSpawning(dt float64) {
	wave := s.waves[s.currentIndex]
	s.spawnTimer += dt
	for s.specIndex < len(wave.Spawns) {
		spec := wave.Spawns[s.specIndex]
		if s.spawnedInSpec >= spec.Count {
			s.specIndex++
			s.spawnedInSpec = 0
			s.spawnTimer = 0
			continue
		}
		if spec.SpawnDelay > 0 && s.spawnTimer < spec.SpawnDelay {
			return
		}
		s.spawnTimer = 0
		s.spawnOne(spec)
		s.spawnedInSpec++
	}
	// Every spec's spawns are issued; wait for the field to clear. This does
	// not wait for the enemies to die first.
	s.run.Phase = component.WaveAwaitingClear
	s.pollTimer = 0
}

// spawnOne creates a single enemy at a random spawn point. A failed attempt
// (no spawn points, unknown kind, factory error) still decrements the
// remaining budget so the wave can complete.
func (s *WaveScheduler) spawnOne(spec defs.EnemySpawnSpec) {
	if len(s.spawnPoints) == 0 {
		s.log.Warn("spawn skipped, no spawn points configured", "enemy", spec.EnemyID)
		s.dropMissedSpawn()
		return
	}
	at := s.spawnPoints[s.rng.Intn(len(s.spawnPoints))]
	enemy, err := s.factory.Spawn(spec.EnemyID, at, spec.HealthMultiplier, spec.SpeedMultiplier)
	if err != nil {
		s.log.Warn("spawn skipped", "enemy", spec.EnemyID, "error", err)
		s.dropMissedSpawn()
		return
	}
	enemy.Path = s.waypoints
	s.registry.Add(enemy)
	s.run.TotalSpawned++
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: s.run.TotalSpawned})
}

func (s *WaveScheduler) dropMissedSpawn() {
	s.run.EnemiesRemaining--
	s.dispatcher.Dispatch(event.Event{Type: event.EnemiesRemainingChanged, Data: s.run.EnemiesRemaining})
}

func (s *WaveScheduler) tickAwaitingClear(dt float64) {
	s.pollTimer += dt
	if s.pollTimer < config.CompletionPollInterval {
		return
	}
	s.pollTimer = 0
	if s.run.EnemiesRemaining > 0 {
		return
	}
	s.complete()
}

// complete fires WaveCompleted with the wave's rewards (granting is the
// coordinator's job), then either schedules the next wave after WaveDelay or
// signals AllWavesCompleted.
func (s *WaveScheduler) complete() {
	wave := s.waves[s.currentIndex]
	s.run.Phase = component.WaveCompleted
	s.endWaveSpan("completed")
	s.log.Info("wave completed", "number", wave.Number)
	s.dispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveReward{
		Number: wave.Number, Gold: wave.GoldReward, Score: wave.ScoreReward,
	}})

	s.currentIndex++
	if s.currentIndex >= len(s.waves) {
		s.active = false
		s.run.Phase = component.WaveIdle
		s.dispatcher.Dispatch(event.Event{Type: event.AllWavesCompleted})
		return
	}
	s.delayTimer = wave.WaveDelay
}

func (s *WaveScheduler) tickWaveDelay(dt float64) {
	s.delayTimer -= dt
	if s.delayTimer > 0 {
		return
	}
	s.begin()
}

func (s *WaveScheduler) endWaveSpan(outcome string) {
	if s.waveSpan == nil {
		return
	}
	s.waveSpan.SetAttributes(
		attribute.String("wave.outcome", outcome),
		attribute.Int("wave.total_spawned", s.run.TotalSpawned),
		attribute.Int("wave.total_killed", s.run.TotalKilled),
		attribute.Int("wave.enemies_remaining", s.run.EnemiesRemaining),
	)
	s.waveSpan.End()
	s.waveSpan = nil
}
