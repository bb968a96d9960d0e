// internal/state/state.go
package state

import (
	"math-defense/internal/app"
	"math-defense/internal/input"
	"math-defense/pkg/logger"
	"math-defense/pkg/render"

	"github.com/sirupsen/logrus"
)

// Mode — режим игры, тег текущего состояния.
type Mode int

const (
	ModeDifficultySelect Mode = iota
	ModeLevelSelect
	ModePlaying
	ModeDying
	ModeDead
	ModeLevelComplete
	ModeLevelTransition
	ModeWon
)

func (m Mode) String() string {
	switch m {
	case ModeDifficultySelect:
		return "DifficultySelect"
	case ModeLevelSelect:
		return "LevelSelect"
	case ModePlaying:
		return "Playing"
	case ModeDying:
		return "Dying"
	case ModeDead:
		return "Dead"
	case ModeLevelComplete:
		return "LevelComplete"
	case ModeLevelTransition:
		return "LevelTransition"
	case ModeWon:
		return "Won"
	}
	return "Unknown"
}

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64, in input.Frame)
	Draw(r render.Renderer)
	Exit()
	Mode() Mode
}

// StateMachine — структура для управления состояниями.
// Хранит сессию и выбор в меню, которые переживают смену состояний.
type StateMachine struct {
	current State
	game    *app.Game
	done    bool
	log     *logrus.Entry

	difficultySelection int
	levelSelection      int
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(game *app.Game) *StateMachine {
	return &StateMachine{
		game: game,
		log:  logger.Log.WithField("component", "state"),
	}
}

// Start переводит машину в меню выбора сложности.
func (sm *StateMachine) Start() {
	sm.SetState(NewDifficultySelectState(sm))
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	from := "none"
	if sm.current != nil {
		from = sm.current.Mode().String()
	}
	sm.current = newState
	if sm.current != nil {
		sm.log.WithFields(logrus.Fields{"from": from, "to": sm.current.Mode().String()}).Debug("Mode changed")
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние. Escape обрабатывается здесь,
// до состояния: из меню сложности — выход, из меню уровней — назад,
// из любого другого режима — в меню уровней без сохранения прогресса.
func (sm *StateMachine) Update(deltaTime float64, in input.Frame) {
	if sm.current == nil || sm.done {
		return
	}
	if in.Key == input.KeyEscape {
		in.Key = input.KeyNone
		switch sm.current.Mode() {
		case ModeDifficultySelect:
			sm.Quit()
			return
		case ModeLevelSelect:
			sm.SetState(NewDifficultySelectState(sm))
		default:
			sm.SetState(NewLevelSelectState(sm))
		}
	}
	sm.current.Update(deltaTime, in)
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(r render.Renderer) {
	if sm.current != nil {
		sm.current.Draw(r)
	}
}

// Mode возвращает режим текущего состояния.
func (sm *StateMachine) Mode() Mode {
	if sm.current == nil {
		return ModeDifficultySelect
	}
	return sm.current.Mode()
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Game возвращает игровую сессию.
func (sm *StateMachine) Game() *app.Game {
	return sm.game
}

// Quit помечает машину завершённой; приложение закрывается на следующем кадре.
func (sm *StateMachine) Quit() {
	sm.log.Info("Quit requested")
	sm.done = true
}

func (sm *StateMachine) Done() bool {
	return sm.done
}
