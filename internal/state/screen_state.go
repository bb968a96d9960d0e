// internal/state/screen_state.go
package state

import (
	"image/color"

	"math-defense/internal/config"
	"math-defense/internal/input"
	"math-defense/pkg/render"
)

// DeadState — все жизни потрачены. Enter возвращает в меню уровней.
type DeadState struct {
	sm *StateMachine
}

func NewDeadState(sm *StateMachine) *DeadState {
	return &DeadState{sm: sm}
}

func (s *DeadState) Enter() {}

func (s *DeadState) Update(deltaTime float64, in input.Frame) {
	if in.Key == input.KeyEnter {
		s.sm.SetState(NewLevelSelectState(s.sm))
	}
}

func (s *DeadState) Draw(r render.Renderer) {
	drawBackground(r, s.sm.game)
	drawBanner(r, config.FontTitle, "You  Have  Died")
}

func (s *DeadState) Exit() {}

func (s *DeadState) Mode() Mode { return ModeDead }

// WonState — пройден последний уровень.
type WonState struct {
	sm *StateMachine
}

func NewWonState(sm *StateMachine) *WonState {
	return &WonState{sm: sm}
}

func (s *WonState) Enter() {}

func (s *WonState) Update(deltaTime float64, in input.Frame) {
	s.sm.game.Background.Update(deltaTime, 1)
	if in.Key == input.KeyEnter {
		s.sm.SetState(NewLevelSelectState(s.sm))
	}
}

func (s *WonState) Draw(r render.Renderer) {
	drawBackground(r, s.sm.game)
	drawBanner(r, config.FontMain, "You Have Saved The Galaxy!")
}

func (s *WonState) Exit() {}

func (s *WonState) Mode() Mode { return ModeWon }

// LevelCompleteState — уровень пройден, следующий уже загружен и ждёт варпа.
type LevelCompleteState struct {
	sm *StateMachine
}

func NewLevelCompleteState(sm *StateMachine) *LevelCompleteState {
	return &LevelCompleteState{sm: sm}
}

func (s *LevelCompleteState) Enter() {}

func (s *LevelCompleteState) Update(deltaTime float64, in input.Frame) {
	s.sm.game.UpdateLevelComplete(deltaTime)
	if in.Key == input.KeyEnter {
		s.sm.game.StartWarp()
		s.sm.SetState(NewLevelTransitionState(s.sm))
	}
}

func (s *LevelCompleteState) Draw(r render.Renderer) {
	g := s.sm.game
	drawBackground(r, g)
	drawBanner(r, config.FontTitle, "Level  Complete!")
	drawTurret(r, g)
	drawLives(r, g)
}

func (s *LevelCompleteState) Exit() {}

func (s *LevelCompleteState) Mode() Mode { return ModeLevelComplete }

// LevelTransitionState — варп на следующий уровень. Длится 3000 мс
// независимо от ввода.
type LevelTransitionState struct {
	sm      *StateMachine
	elapsed float64
}

func NewLevelTransitionState(sm *StateMachine) *LevelTransitionState {
	return &LevelTransitionState{sm: sm}
}

func (s *LevelTransitionState) Enter() {}

func (s *LevelTransitionState) Update(deltaTime float64, in input.Frame) {
	s.elapsed += deltaTime
	if s.sm.game.UpdateTransition(s.elapsed, deltaTime) {
		s.sm.SetState(NewPlayingState(s.sm))
	}
}

func (s *LevelTransitionState) Draw(r render.Renderer) {
	g := s.sm.game
	drawBackground(r, g)
	drawBanner(r, config.FontTitle, "Level  Complete!")
	drawTurret(r, g)
	drawLives(r, g)
	drawMessage(r, g)

	// Последняя четверть варпа — вспышка
	if s.elapsed/config.TransitionDuration > config.TransitionFlashPct {
		e := int(s.elapsed)
		r.Clear(color.RGBA{
			R: uint8(e * 2 % 255),
			G: uint8(e * 323 / 100 % 255),
			B: uint8(e * 534 / 100 % 255),
			A: 255,
		})
	}
}

func (s *LevelTransitionState) Exit() {}

func (s *LevelTransitionState) Mode() Mode { return ModeLevelTransition }

// Elapsed — сколько миллисекунд идёт варп.
func (s *LevelTransitionState) Elapsed() float64 { return s.elapsed }
