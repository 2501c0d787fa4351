// internal/component/session.go
package component

// GameState — top-level state of the session state machine.
type GameState int

const (
	StateMenu GameState = iota
	StateLoading
	StatePlaying
	StatePaused
	StateGameOver
	StateVictory
)

// String returns a human-readable state name.
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// GameSession holds the per-session data owned by the coordinator.
// One instance lives for the whole game; StartGame and ReturnToMenu reset
// its fields rather than replacing it.
type GameSession struct {
	State        GameState
	PlayerHealth int
	MaxHealth    int
	CurrentWave  int
	GameTime     float64
	TotalScore   int
}
