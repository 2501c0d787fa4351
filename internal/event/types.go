// internal/event/types.go
package event

import (
	"bastion/internal/component"
	"bastion/internal/types"
)

// Economy ledger events.
const (
	GoldChanged          EventType = "GoldChanged"          // Data: int (new gold)
	ScoreChanged         EventType = "ScoreChanged"         // Data: int (new score)
	LivesChanged         EventType = "LivesChanged"         // Data: int (new lives)
	ResourceChanged      EventType = "ResourceChanged"      // Data: ResourceChange
	ResourceInsufficient EventType = "ResourceInsufficient" // Data: string (resource kind)
	GoldEarned           EventType = "GoldEarned"           // Data: int (amount credited)
	ScoreEarned          EventType = "ScoreEarned"          // Data: int (amount credited)
)

// Wave scheduler events.
const (
	WaveStarted             EventType = "WaveStarted"             // Data: int (wave number)
	WaveCompleted           EventType = "WaveCompleted"           // Data: WaveReward
	AllWavesCompleted       EventType = "AllWavesCompleted"       // Data: nil
	PreparationTimeChanged  EventType = "PreparationTimeChanged"  // Data: float64 (seconds remaining)
	EnemySpawned            EventType = "EnemySpawned"            // Data: int (total spawned)
	EnemyKilled             EventType = "EnemyKilled"             // Data: int (total killed)
	EnemiesRemainingChanged EventType = "EnemiesRemainingChanged" // Data: int (remaining)
	EnemyBreached           EventType = "EnemyBreached"           // Data: Breach
)

// Coordinator events.
const (
	StateChanged        EventType = "StateChanged"        // Data: StateChange
	PlayerHealthChanged EventType = "PlayerHealthChanged" // Data: HealthChange
	WaveChanged         EventType = "WaveChanged"         // Data: int (current wave)
	SessionScoreChanged EventType = "SessionScoreChanged" // Data: int (total score)
	GameOver            EventType = "GameOver"            // Data: nil
	Victory             EventType = "Victory"             // Data: nil
	GameStarted         EventType = "GameStarted"         // Data: nil
	GamePaused          EventType = "GamePaused"          // Data: nil
	GameResumed         EventType = "GameResumed"         // Data: nil
)

// Resource kind names used in ResourceChange and ResourceInsufficient payloads.
const (
	ResourceGold  = "Gold"
	ResourceScore = "Score"
	ResourceLives = "Lives"
)

// ResourceChange is the generic old/new payload fired alongside every
// specific resource change.
type ResourceChange struct {
	Kind string
	Old  int
	New  int
}

// WaveReward is the payload of WaveCompleted. The coordinator translates it
// into ledger and session credits.
type WaveReward struct {
	Number int
	Gold   int
	Score  int
}

// Breach is the payload of EnemyBreached: an enemy reached the end of the
// path and inflicts Damage on the player.
type Breach struct {
	EnemyID types.EntityID
	Damage  int
}

// StateChange is the payload of StateChanged.
type StateChange struct {
	Prev component.GameState
	New  component.GameState
}

// HealthChange is the payload of PlayerHealthChanged.
type HealthChange struct {
	Current int
	Max     int
}
