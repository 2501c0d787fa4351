// cmd/game/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/joho/godotenv"

	"bastion/internal/app"
	"bastion/internal/component"
	"bastion/internal/config"
	"bastion/internal/defs"
	"bastion/internal/entity"
	"bastion/internal/event"
	"bastion/internal/system"
	"bastion/internal/telemetry"
	"bastion/internal/types"
	"bastion/internal/utils"
)

// AppGame adapts the engine to ebiten's loop: each frame becomes one
// cooperative tick with a clamped wall-clock delta. It also plays the role of
// the movement collaborator: spawned enemies march down the waypoint path at
// their own speed and breach when they run out of path.
type AppGame struct {
	coordinator    *app.Coordinator
	scheduler      *system.WaveScheduler
	ledger         *system.Ledger
	registry       *entity.Registry
	travel         map[types.EntityID]float64
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.handleInput()
	a.coordinator.Update(deltaTime)
	a.advanceEnemies(deltaTime)
	return nil
}

func (a *AppGame) advanceEnemies(dt float64) {
	if a.coordinator.State() != component.StatePlaying {
		return
	}
	for _, id := range a.registry.IDs() {
		remaining, ok := a.travel[id]
		if !ok {
			remaining = pathTravelTime(a.registry.Get(id))
		}
		remaining -= dt
		if remaining <= 0 {
			delete(a.travel, id)
			a.scheduler.NotifyEnemyReachedEnd(id)
			continue
		}
		a.travel[id] = remaining
	}
}

// pathTravelTime computes how long the enemy takes to walk its path.
func pathTravelTime(e *entity.Enemy) float64 {
	if e == nil || e.Speed <= 0 || len(e.Path) < 2 {
		return 5
	}
	dist := 0.0
	for i := 1; i < len(e.Path); i++ {
		dist += math.Hypot(e.Path[i].X-e.Path[i-1].X, e.Path[i].Y-e.Path[i-1].Y)
	}
	return dist / e.Speed
}

func (a *AppGame) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch a.coordinator.State() {
		case component.StateMenu, component.StateGameOver:
			a.coordinator.StartGame()
			a.scheduler.StartWave(0)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		switch a.coordinator.State() {
		case component.StatePlaying:
			a.coordinator.PauseGame()
		case component.StatePaused:
			a.coordinator.ResumeGame()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.coordinator.ReturnToMenu()
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	session := a.coordinator.Session()
	status := fmt.Sprintf(
		"state: %s\nwave: %d/%d (%s)\nprep: %.1fs  remaining: %d\nhealth: %d/%d  gold: %d  score: %d\n\n[space] start  [p] pause  [esc] menu",
		session.State,
		a.scheduler.CurrentWaveIndex()+1, a.scheduler.WaveCount(), a.scheduler.Phase(),
		a.scheduler.PreparationRemaining(), a.scheduler.EnemiesRemaining(),
		session.PlayerHealth, session.MaxHealth, a.ledger.Gold(), session.TotalScore,
	)
	ebitenutil.DebugPrint(screen, status)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	// Not fatal: env vars may be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	ctx := context.Background()
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			slog.Warn("telemetry setup failed, running without it", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					slog.Error("telemetry shutdown", "error", err)
				}
			}()
		}
	}

	dispatcher := event.NewDispatcher()
	registry := entity.NewRegistry()
	rng := utils.NewPRNGService(cfg.Seed)

	enemyDefs := defs.EnemyDefs
	if cfg.EnemyFile != "" {
		enemyDefs, err = defs.LoadEnemyDefinitions(cfg.EnemyFile)
		if err != nil {
			log.Fatalf("Failed to load enemy definitions: %v", err)
		}
	}

	ledger := system.NewLedger(dispatcher)
	if cfg.TowerFile != "" {
		costs, err := defs.LoadTowerCosts(cfg.TowerFile)
		if err != nil {
			log.Fatalf("Failed to load tower costs: %v", err)
		}
		ledger.SetTowerCosts(costs)
	}

	scheduler := system.NewWaveScheduler(dispatcher, registry, entity.NewLibraryFactory(enemyDefs), rng)
	if cfg.WaveFile != "" {
		waves, err := defs.LoadWaveDefinitions(cfg.WaveFile)
		if err != nil {
			log.Fatalf("Failed to load wave definitions: %v", err)
		}
		scheduler.SetWaves(waves)
	}
	// The demo has no map collaborator; a single spawn point and a straight
	// two-point path stand in for one.
	scheduler.SetSpawnPoints([]component.Vec2{{X: 0, Y: config.ScreenHeight / 2}})
	scheduler.SetWaypoints([]component.Vec2{
		{X: 0, Y: config.ScreenHeight / 2},
		{X: config.ScreenWidth, Y: config.ScreenHeight / 2},
	})

	coordinator := app.NewCoordinator(dispatcher, ledger, scheduler)
	defer coordinator.Close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Bastion")
	appGame := &AppGame{
		coordinator:    coordinator,
		scheduler:      scheduler,
		ledger:         ledger,
		registry:       registry,
		travel:         make(map[types.EntityID]float64),
		lastUpdateTime: time.Now(),
	}
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
