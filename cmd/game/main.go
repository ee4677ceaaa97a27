// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	game "github.com/Addison-Dalton/towder-defense-practice/internal/app"
	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
	"github.com/Addison-Dalton/towder-defense-practice/internal/state"
	"github.com/Addison-Dalton/towder-defense-practice/internal/stream"
	"github.com/Addison-Dalton/towder-defense-practice/internal/telemetry"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	ctx := context.Background()
	tracer := telemetry.NoopTracer()
	if settings.Telemetry {
		shutdown, err := telemetry.Setup(ctx, settings)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
			tracer = telemetry.Tracer("game")
		}
	}

	library, err := game.LoadLibrary(settings)
	if err != nil {
		log.Fatalf("Failed to load enemy definitions: %v", err)
	}
	g := game.NewGame(settings, library, tracer)

	var publisher state.FramePublisher
	if settings.StreamAddr != "" {
		hub := stream.NewHub(nil)
		defer hub.Close()
		srv := &http.Server{Addr: settings.StreamAddr, Handler: hub}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("Pose stream stopped: %v", err)
			}
		}()
		defer srv.Close()
		log.Printf("Streaming poses on ws://%s", settings.StreamAddr)
		publisher = hub
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, g, publisher))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense: flow field")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
