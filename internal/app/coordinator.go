// internal/app/coordinator.go
package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"bastion/internal/component"
	"bastion/internal/config"
	"bastion/internal/event"
	"bastion/internal/system"
	"bastion/internal/telemetry"
	"bastion/internal/utils"
)

// Coordinator owns the top-level session state machine
// (Menu/Loading/Playing/Paused/GameOver/Victory) and wires the wave scheduler
// to the economy ledger: completed waves grant rewards, breached enemies
// damage the player, and the last wave triggers Victory. It is an explicitly
// constructed service — collaborators get a reference, there is no ambient
// global instance.
type Coordinator struct {
	dispatcher *event.Dispatcher
	ledger     *system.Ledger
	scheduler  *system.WaveScheduler
	log        *slog.Logger
	tracer     trace.Tracer

	session     component.GameSession
	sessionSpan trace.Span
}

var _ event.Listener = (*Coordinator)(nil)

// NewCoordinator creates a coordinator in the Menu state and subscribes it to
// the scheduler's reward, completion and breach events.
func NewCoordinator(dispatcher *event.Dispatcher, ledger *system.Ledger, scheduler *system.WaveScheduler) *Coordinator {
	c := &Coordinator{
		dispatcher: dispatcher,
		ledger:     ledger,
		scheduler:  scheduler,
		log:        slog.With("system", "coordinator"),
		tracer:     telemetry.Tracer("game"),
		session: component.GameSession{
			State:        component.StateMenu,
			MaxHealth:    config.MaxPlayerHealth,
			PlayerHealth: config.MaxPlayerHealth,
		},
	}
	dispatcher.Subscribe(event.WaveCompleted, c)
	dispatcher.Subscribe(event.AllWavesCompleted, c)
	dispatcher.Subscribe(event.EnemyBreached, c)
	return c
}

// Close unsubscribes the coordinator from the dispatcher.
func (c *Coordinator) Close() {
	c.dispatcher.Unsubscribe(event.WaveCompleted, c)
	c.dispatcher.Unsubscribe(event.AllWavesCompleted, c)
	c.dispatcher.Unsubscribe(event.EnemyBreached, c)
}

// OnEvent implements event.Listener.
func (c *Coordinator) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveCompleted:
		reward, ok := e.Data.(event.WaveReward)
		if !ok {
			return
		}
		c.ledger.AddGold(reward.Gold)
		c.AddScore(reward.Score)
		c.SetCurrentWave(reward.Number)
	case event.AllWavesCompleted:
		c.winGame()
	case event.EnemyBreached:
		breach, ok := e.Data.(event.Breach)
		if !ok {
			return
		}
		c.TakeDamage(breach.Damage)
	}
}

// Update advances the game clock and the wave scheduler. Ticks are forwarded
// only while Playing, so pausing freezes every pending wave delay in place.
func (c *Coordinator) Update(dt float64) {
	if c.session.State != component.StatePlaying {
		return
	}
	c.session.GameTime += dt
	c.scheduler.Update(dt)
}

// State returns the current session state.
func (c *Coordinator) State() component.GameState { return c.session.State }

// Session returns a copy of the session data.
func (c *Coordinator) Session() component.GameSession { return c.session }

// PlayerHealth returns the current player health.
func (c *Coordinator) PlayerHealth() int { return c.session.PlayerHealth }

// BeginLoading moves Menu → Loading while configuration is prepared.
func (c *Coordinator) BeginLoading() {
	if c.session.State != component.StateMenu {
		return
	}
	c.transition(component.StateLoading)
}

// StartGame moves Menu/Loading/GameOver → Playing and resets the session, the
// ledger and the scheduler. Wave progression is NOT started automatically —
// the caller drives scheduler.StartWave separately.
func (c *Coordinator) StartGame() {
	switch c.session.State {
	case component.StateMenu, component.StateLoading, component.StateGameOver:
	default:
		return
	}
	c.resetSession()
	c.ledger.Reset()
	c.scheduler.Reset()

	_, c.sessionSpan = c.tracer.Start(context.Background(), "game.session")

	c.transition(component.StatePlaying)
	c.dispatcher.Dispatch(event.Event{Type: event.GameStarted})
	c.log.Info("game started")
}

// PauseGame moves Playing → Paused. A second call is a no-op.
func (c *Coordinator) PauseGame() {
	if c.session.State != component.StatePlaying {
		return
	}
	c.transition(component.StatePaused)
	c.dispatcher.Dispatch(event.Event{Type: event.GamePaused})
}

// ResumeGame moves Paused → Playing.
func (c *Coordinator) ResumeGame() {
	if c.session.State != component.StatePaused {
		return
	}
	c.transition(component.StatePlaying)
	c.dispatcher.Dispatch(event.Event{Type: event.GameResumed})
}

// ReturnToMenu is allowed from any state. It resets the session data and
// reclaims the scheduler; re-entering Menu from Menu changes nothing.
func (c *Coordinator) ReturnToMenu() {
	c.endSessionSpan("menu")
	c.scheduler.Reset()
	c.resetSession()
	c.transition(component.StateMenu)
}

// TakeDamage reduces player health while Playing, clamped to [0, max].
// Crossing to zero triggers GameOver exactly once — once the state has left
// Playing, further damage is ignored.
func (c *Coordinator) TakeDamage(amount int) {
	if amount <= 0 || c.session.State != component.StatePlaying {
		return
	}
	c.session.PlayerHealth = utils.ClampInt(c.session.PlayerHealth-amount, 0, c.session.MaxHealth)
	c.dispatcher.Dispatch(event.Event{Type: event.PlayerHealthChanged, Data: event.HealthChange{
		Current: c.session.PlayerHealth, Max: c.session.MaxHealth,
	}})
	if c.session.PlayerHealth > 0 {
		return
	}
	c.scheduler.StopCurrentWave()
	c.transition(component.StateGameOver)
	c.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	c.endSessionSpan("game_over")
	c.log.Info("game over", "waves_cleared", c.session.CurrentWave, "score", c.session.TotalScore)
}

// HealPlayer restores player health while Playing, clamped to max.
func (c *Coordinator) HealPlayer(amount int) {
	if amount <= 0 || c.session.State != component.StatePlaying {
		return
	}
	old := c.session.PlayerHealth
	c.session.PlayerHealth = utils.ClampInt(old+amount, 0, c.session.MaxHealth)
	if c.session.PlayerHealth == old {
		return
	}
	c.dispatcher.Dispatch(event.Event{Type: event.PlayerHealthChanged, Data: event.HealthChange{
		Current: c.session.PlayerHealth, Max: c.session.MaxHealth,
	}})
}

// AddScore credits the session score, clamped to the score cap.
func (c *Coordinator) AddScore(amount int) {
	if amount <= 0 {
		return
	}
	old := c.session.TotalScore
	c.session.TotalScore = utils.ClampInt(old+amount, 0, config.MaxScore)
	if c.session.TotalScore == old {
		return
	}
	c.dispatcher.Dispatch(event.Event{Type: event.SessionScoreChanged, Data: c.session.TotalScore})
}

// SetCurrentWave records the wave the session has reached. Setting the same
// value again is a no-op.
func (c *Coordinator) SetCurrentWave(number int) {
	if number == c.session.CurrentWave {
		return
	}
	c.session.CurrentWave = number
	c.dispatcher.Dispatch(event.Event{Type: event.WaveChanged, Data: number})
}

// winGame moves Playing → Victory when the scheduler reports the last wave
// done.
func (c *Coordinator) winGame() {
	if c.session.State != component.StatePlaying {
		return
	}
	c.transition(component.StateVictory)
	c.dispatcher.Dispatch(event.Event{Type: event.Victory})
	c.endSessionSpan("victory")
	c.log.Info("victory", "score", c.session.TotalScore)
}

// transition switches the state and fires StateChanged exactly once. Re-entry
// into the current state is a no-op and fires nothing.
func (c *Coordinator) transition(to component.GameState) bool {
	if c.session.State == to {
		return false
	}
	prev := c.session.State
	c.session.State = to
	c.dispatcher.Dispatch(event.Event{Type: event.StateChanged, Data: event.StateChange{
		Prev: prev, New: to,
	}})
	return true
}

func (c *Coordinator) resetSession() {
	state := c.session.State
	c.session = component.GameSession{
		State:        state,
		MaxHealth:    config.MaxPlayerHealth,
		PlayerHealth: config.MaxPlayerHealth,
	}
}

func (c *Coordinator) endSessionSpan(outcome string) {
	if c.sessionSpan == nil {
		return
	}
	c.sessionSpan.SetAttributes(
		attribute.String("session.outcome", outcome),
		attribute.Int("session.score", c.session.TotalScore),
		attribute.Int("session.wave", c.session.CurrentWave),
	)
	c.sessionSpan.End()
	c.sessionSpan = nil
}
