// internal/app/game.go
package app

import (
	"fmt"

	"math-defense/internal/component"
	"math-defense/internal/config"
	"math-defense/internal/defs"
	"math-defense/internal/event"
	"math-defense/internal/input"
	"math-defense/internal/system"
	"math-defense/internal/utils"
	"math-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CatalogSaver сохраняет каталог уровней после открытия нового уровня.
type CatalogSaver interface {
	Save(catalog defs.Catalog) error
}

// Outcome — чем закончился кадр раунда. По нему машина режимов
// решает, куда переходить.
type Outcome int

const (
	RoundContinues Outcome = iota
	RoundTurretHit
	RoundLevelComplete
	RoundWon
	RoundRespawned
	RoundLost
)

// Game — состояние игровой сессии: каталог, выбранные сложность и уровень,
// текущая волна, жизни, турель и очередь баннеров.
type Game struct {
	Catalog    defs.Catalog
	Difficulty int
	Level      int
	Wave       int
	Lives      int

	Aliens     []component.Alien
	Target     int
	Turret     *component.Turret
	Messages   component.MessageQueue
	Background component.Background
	Crosshair  component.Blink

	Events *event.Dispatcher

	rng       *utils.PRNGService
	generator *system.WaveGenerator
	store     CatalogSaver
	log       *logrus.Entry
}

// NewGame создаёт сессию. store может быть nil — тогда открытия не сохраняются.
func NewGame(catalog defs.Catalog, store CatalogSaver, rng *utils.PRNGService, events *event.Dispatcher) *Game {
	g := &Game{
		Catalog:   catalog,
		Lives:     config.StartingLives,
		Target:    system.NoTarget,
		Turret:    component.NewTurret(rng),
		Crosshair: component.Blink{Period: config.BlinkPeriod},
		Events:    events,
		rng:       rng,
		generator: system.NewWaveGenerator(rng),
		store:     store,
		log:       logger.Log.WithField("seed", rng.Seed()),
	}
	if len(catalog) > 0 {
		g.Background.Key = catalog[0].BackgroundFile
	}
	return g
}

// SetDifficulty выбирает сложность для следующих уровней.
func (g *Game) SetDifficulty(difficulty int) {
	g.Difficulty = difficulty
}

// UnlockedLevels — индексы уровней, открытых на текущей сложности.
func (g *Game) UnlockedLevels() []int {
	return g.Catalog.UnlockedLevels(g.Difficulty)
}

// CurrentLevel возвращает описание текущего уровня.
func (g *Game) CurrentLevel() defs.Level {
	return g.Catalog[g.Level]
}

// StartLevel начинает уровень с первой волны: две жизни, новая турель,
// баннеры с названием уровня и "Wave 1".
func (g *Game) StartLevel(level int) {
	g.Level = level
	g.Lives = config.StartingLives
	g.Turret = component.NewTurret(g.rng)
	g.Background.Key = g.Catalog[level].BackgroundFile
	g.Messages.Clear()
	g.loadWave(0)
	g.pushTitle()
	g.Messages.Push("Wave 1", config.MessageDuration)

	g.log.WithFields(logrus.Fields{
		"level_title": g.Catalog[level].Title,
		"difficulty":  defs.Difficulties[g.Difficulty].Name,
	}).Info("Level started")
}

func (g *Game) loadWave(wave int) {
	g.Wave = wave
	g.Aliens = g.generator.Generate(g.Catalog[g.Level].Waves[wave], g.Difficulty)
	g.Target = system.LowestLiving(g.Aliens)
	g.Turret.ClearInput()
	g.Turret.State = component.TurretResting
}

func (g *Game) pushTitle() {
	g.Messages.Push(g.Catalog[g.Level].Title, config.MessageDuration)
}

// TypeChar добавляет набранный символ в буфер ответа.
func (g *Game) TypeChar(ch rune) {
	g.Turret.Type(ch)
}

// HandleKey обрабатывает клавишу во время раунда.
func (g *Game) HandleKey(key input.Key) {
	switch key {
	case input.KeyEnter:
		g.fire()
	case input.KeyBackspace:
		g.Turret.Backspace()
	case input.KeyLeft:
		g.Target = system.PreviousTarget(g.Aliens, g.Target)
	case input.KeyRight:
		g.Target = system.NextTarget(g.Aliens, g.Target)
	}
}

// fire проверяет ответ. За одно нажатие Enter сбивается не больше одного корабля.
// Верный ответ по уже взрывающейся цели снова стреляет, но взрыв не перезапускает.
func (g *Game) fire() {
	answer, ok := g.Turret.ParseInput()
	g.Turret.ClearInput()

	if ok && g.Target >= 0 && g.Target < len(g.Aliens) {
		alien := &g.Aliens[g.Target]
		if alien.State != component.AlienDead && alien.Answer == answer {
			alien.Hit()
			g.Turret.State = component.TurretFiring
			g.Events.Emit(event.AlienHit)
			return
		}
	}
	g.Events.Emit(event.AnswerRejected)
}

// UpdateRound — один кадр игры. Клавиша кадра уже обработана через HandleKey.
func (g *Game) UpdateRound(dt float64) Outcome {
	g.Background.Update(dt, 1)
	g.Crosshair.Update(dt)

	for i := range g.Aliens {
		if g.Aliens[i].Update(dt) {
			g.Turret.State = component.TurretResting
		}
	}
	g.Messages.Update(dt)

	if system.NeedsReelection(g.Aliens, g.Target) {
		g.Target = system.LowestLiving(g.Aliens)
	}
	if g.Target != system.NoTarget {
		alien := g.Aliens[g.Target]
		g.Turret.AimAt(alien.X, alien.Y)
	}

	outcome := RoundContinues
	if g.breached() {
		outcome = RoundTurretHit
	}
	// Проверка "все мертвы" последняя: убийство, очистившее волну, важнее прорыва
	if g.waveCleared() {
		outcome = g.advanceWave()
	}
	return outcome
}

func (g *Game) breached() bool {
	for i := range g.Aliens {
		if g.Aliens[i].State != component.AlienDead && g.Aliens[i].Y > config.BreachY {
			return true
		}
	}
	return false
}

func (g *Game) waveCleared() bool {
	for i := range g.Aliens {
		if g.Aliens[i].State != component.AlienDead {
			return false
		}
	}
	return true
}

// advanceWave переходит к следующей волне, уровню или победе.
func (g *Game) advanceWave() Outcome {
	if g.Wave+1 < len(g.Catalog[g.Level].Waves) {
		g.loadWave(g.Wave + 1)
		g.Messages.Push("Wave Eliminated!", config.MessageDuration)
		g.Messages.Push(fmt.Sprintf("Wave %d", g.Wave+1), config.MessageDuration)
		return RoundContinues
	}

	if g.Level+1 >= len(g.Catalog) {
		g.log.WithField("difficulty", defs.Difficulties[g.Difficulty].Name).Info("Campaign complete")
		g.Events.Emit(event.GameWon)
		return RoundWon
	}

	g.unlock(g.Level + 1)
	g.Level++
	g.loadWave(0)
	g.Events.Emit(event.LevelCleared)
	return RoundLevelComplete
}

// unlock открывает уровень на текущей сложности и переписывает каталог.
// Ошибка записи не прерывает игру.
func (g *Game) unlock(level int) {
	g.Catalog[level].Unlocked[g.Difficulty] = true
	if g.store != nil {
		if err := g.store.Save(g.Catalog); err != nil {
			g.log.WithError(err).Error("Failed to persist unlocked level")
		}
	}
	g.Events.Dispatch(event.Event{
		Type: event.LevelUnlocked,
		Data: event.LevelUnlockedData{Level: level, Difficulty: g.Difficulty},
	})
}

// UpdateDying — кадр гибели турели. Пришельцы продолжают лететь,
// взрывы турели догорают; затем либо новая жизнь, либо конец игры.
func (g *Game) UpdateDying(dt float64) Outcome {
	g.Background.Update(dt, 1)
	for i := range g.Aliens {
		g.Aliens[i].Update(dt)
	}
	for n := g.Turret.UpdateExplosions(dt); n > 0; n-- {
		g.Events.Emit(event.ExplosionIgnited)
	}
	if !g.Turret.Destroyed() {
		return RoundContinues
	}
	if g.Lives == 0 {
		g.log.WithField("level_title", g.Catalog[g.Level].Title).Info("Out of lives")
		return RoundLost
	}

	g.Lives--
	g.Turret = component.NewTurret(g.rng)
	g.loadWave(g.Wave)
	if g.Lives > 0 {
		g.Messages.Push(fmt.Sprintf("%d Gun Left", g.Lives), config.MessageDuration)
	} else {
		g.Messages.Push("Final Gun! Good Luck!", config.MessageDuration)
	}
	g.Messages.Push(fmt.Sprintf("Restarting Wave %d", g.Wave+1), config.MessageDuration)
	return RoundRespawned
}

// UpdateLevelComplete — экран между уровнями: турель смотрит вверх, фон плывёт.
func (g *Game) UpdateLevelComplete(dt float64) {
	g.Turret.Rotation = 0
	g.Background.Update(dt, 1)
}

// StartWarp запускает переход на уже загруженный следующий уровень.
func (g *Game) StartWarp() {
	g.Turret.Rotation = 0
	g.Events.Emit(event.WarpStarted)
	g.pushTitle()
	g.Messages.Push("WARP SPEED", config.MessageDuration)
}

// UpdateTransition — кадр варпа. elapsed уже включает dt.
// Возвращает true, когда переход закончен и можно играть.
func (g *Game) UpdateTransition(elapsed, dt float64) bool {
	pct := elapsed / config.TransitionDuration
	g.Background.Update(dt, 1+pct)
	g.Turret.Y -= config.TransitionRise * pct
	g.Messages.Update(dt)

	if elapsed < config.TransitionDuration {
		return false
	}
	g.Background.Key = g.Catalog[g.Level].BackgroundFile
	g.Turret.ResetPosition()
	g.pushTitle()
	g.Messages.Push("Wave 1", config.MessageDuration)
	return true
}
