// internal/component/wave.go
package component

// WavePhase — phase of the per-wave state machine.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WavePreparation
	WaveSpawning
	WaveAwaitingClear
	WaveCompleted
)

// String returns a human-readable phase name.
func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "Idle"
	case WavePreparation:
		return "Preparation"
	case WaveSpawning:
		return "Spawning"
	case WaveAwaitingClear:
		return "AwaitingClear"
	case WaveCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// WaveRunState — transient counters for the running wave. A new wave resets
// everything except TotalSpawned and TotalKilled, which accumulate for the
// whole session until the scheduler is reset.
type WaveRunState struct {
	Phase                WavePhase
	EnemiesRemaining     int
	TotalSpawned         int
	TotalKilled          int
	PreparationRemaining float64
}
