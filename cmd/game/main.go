// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"path/filepath"
	"time"

	"math-defense/internal/app"
	"math-defense/internal/assets"
	"math-defense/internal/config"
	"math-defense/internal/defs"
	"math-defense/internal/event"
	"math-defense/internal/state"
	"math-defense/internal/utils"
	"math-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	screen         *assets.Screen
	input          *keyboard
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := float64(now.Sub(a.lastUpdateTime).Microseconds()) / 1000
	if deltaTime > config.MaxDeltaMs {
		deltaTime = config.MaxDeltaMs
	}
	a.lastUpdateTime = now

	a.stateMachine.Update(deltaTime, a.input.Poll())
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.Black)
	a.screen.Bind(screen)
	a.stateMachine.Draw(a.screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// eventLog пишет игровые события в лог на уровне debug.
type eventLog struct {
	log *logrus.Entry
}

func (l eventLog) OnEvent(e event.Event) {
	entry := l.log.WithField("event", e.Type)
	if e.Data != nil {
		entry = entry.WithField("data", e.Data)
	}
	entry.Debug("Game event")
}

func main() {
	if err := config.LoadEnv(); err != nil {
		logger.Log.WithError(err).Warn("Failed to load .env")
	}
	logger.Init()

	if addr := config.PprofAddr(); addr != "" {
		go func() {
			logger.Log.WithError(http.ListenAndServe(addr, nil)).Warn("pprof server stopped")
		}()
	}

	seed, err := config.Seed()
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}
	rng := utils.NewPRNGService(seed)

	store := defs.NewFileStore(config.LevelsFile)
	catalog := store.LoadOrCreate()

	resourceDir := config.ResourceDir()
	resources, err := assets.Load(resourceDir, catalog.BackgroundKeys())
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load resources")
	}

	events := event.NewDispatcher()
	events.Subscribe(eventLog{log: logger.Log.WithField("component", "events")}, event.AllTypes...)
	mixer := assets.NewMixer(resources)
	mixer.Subscribe(events)
	if err := mixer.PlayMusic(); err != nil {
		logger.Log.WithError(err).Error("Failed to start music")
	}

	game := app.NewGame(catalog, store, rng, events)
	sm := state.NewStateMachine(game)
	sm.Start()

	logger.Log.WithFields(logrus.Fields{
		"levels":    len(catalog),
		"catalog":   filepath.Clean(store.Path()),
		"resources": resourceDir,
		"seed":      rng.Seed(),
	}).Info("Starting Math Defense")

	appGame := &AppGame{
		stateMachine:   sm,
		screen:         assets.NewScreen(resources),
		input:          newKeyboard(),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(appGame); err != nil {
		logger.Log.WithError(err).Fatal("Game loop failed")
	}
	logger.Log.Info("Bye")
}
