// internal/state/game_state.go
package state

import (
	"math-defense/internal/app"
	"math-defense/internal/input"
	"math-defense/pkg/render"
)

// PlayingState — раунд: ввод ответов, движение пришельцев, смена волн.
type PlayingState struct {
	sm *StateMachine
}

func NewPlayingState(sm *StateMachine) *PlayingState {
	return &PlayingState{sm: sm}
}

func (s *PlayingState) Enter() {}

func (s *PlayingState) Update(deltaTime float64, in input.Frame) {
	g := s.sm.game
	for _, ch := range in.Chars {
		g.TypeChar(ch)
	}
	g.HandleKey(in.Key)

	switch g.UpdateRound(deltaTime) {
	case app.RoundTurretHit:
		s.sm.SetState(NewDyingState(s.sm))
	case app.RoundLevelComplete:
		s.sm.SetState(NewLevelCompleteState(s.sm))
	case app.RoundWon:
		s.sm.SetState(NewWonState(s.sm))
	}
}

func (s *PlayingState) Draw(r render.Renderer) {
	g := s.sm.game
	drawBackground(r, g)
	drawTargeting(r, g)
	drawAliens(r, g)
	drawTurret(r, g)
	drawInput(r, g)
	drawLives(r, g)
	drawMessage(r, g)
}

func (s *PlayingState) Exit() {}

func (s *PlayingState) Mode() Mode { return ModePlaying }

// DyingState — турель подбита, догорают взрывы.
type DyingState struct {
	sm *StateMachine
}

func NewDyingState(sm *StateMachine) *DyingState {
	return &DyingState{sm: sm}
}

func (s *DyingState) Enter() {}

func (s *DyingState) Update(deltaTime float64, in input.Frame) {
	switch s.sm.game.UpdateDying(deltaTime) {
	case app.RoundRespawned:
		s.sm.SetState(NewPlayingState(s.sm))
	case app.RoundLost:
		s.sm.SetState(NewDeadState(s.sm))
	}
}

func (s *DyingState) Draw(r render.Renderer) {
	g := s.sm.game
	drawBackground(r, g)
	drawAliens(r, g)
	drawTurret(r, g)
	drawLives(r, g)
	drawTurretExplosions(r, g)
}

func (s *DyingState) Exit() {}

func (s *DyingState) Mode() Mode { return ModeDying }
