// internal/state/menu_state.go
package state

import (
	"math-defense/internal/component"
	"math-defense/internal/config"
	"math-defense/internal/defs"
	"math-defense/internal/input"
	"math-defense/pkg/render"
)

// menu — вертикальный список с подсветкой и циклическим выбором.
type menu struct {
	blink component.Blink
}

func newMenu() menu {
	return menu{blink: component.Blink{Period: config.BlinkPeriod}}
}

// move сдвигает выбор вверх/вниз с переходом через край.
func (m *menu) move(key input.Key, selection, count int) int {
	if count == 0 {
		return 0
	}
	switch key {
	case input.KeyDown:
		return (selection + 1) % count
	case input.KeyUp:
		return (selection - 1 + count) % count
	}
	return selection
}

// draw рисует заголовок "Math Defense" и пункты; selected и locked задают цвет пункта.
func (m *menu) draw(r render.Renderer, items []string, selected func(i int) bool, locked func(i int) bool) {
	w, h := r.Size()
	scale := render.FontScale(r, config.DesignHeight)
	render.DrawTextCentered(r, config.FontTitle, config.TitleFontSize*scale, "Math  Defense", w/2, h/4, config.Blue)

	size := config.MenuFontSize * scale
	y := 0.4 * h
	for i, item := range items {
		c := config.Gray
		switch {
		case selected(i):
			c = render.LerpColor(config.White, config.Gray, m.blink.Pct())
		case locked(i):
			c = render.DarkenColor(config.Gray, config.LockedDim)
		}
		render.DrawTextCentered(r, config.FontMain, size, item, w/2, y, c)
		y += size * 1.075
	}
}

// DifficultySelectState — выбор одной из четырёх сложностей.
type DifficultySelectState struct {
	sm   *StateMachine
	menu menu
}

func NewDifficultySelectState(sm *StateMachine) *DifficultySelectState {
	return &DifficultySelectState{sm: sm, menu: newMenu()}
}

func (s *DifficultySelectState) Enter() {}

func (s *DifficultySelectState) Update(deltaTime float64, in input.Frame) {
	s.menu.blink.Update(deltaTime)
	switch in.Key {
	case input.KeyEnter:
		s.sm.game.SetDifficulty(s.sm.difficultySelection)
		s.sm.SetState(NewLevelSelectState(s.sm))
	case input.KeyUp, input.KeyDown:
		s.sm.difficultySelection = s.menu.move(in.Key, s.sm.difficultySelection, defs.DifficultyCount)
	}
}

func (s *DifficultySelectState) Draw(r render.Renderer) {
	drawBackground(r, s.sm.game)
	sel := s.sm.difficultySelection
	s.menu.draw(r, defs.DifficultyNames(),
		func(i int) bool { return i == sel },
		func(int) bool { return false })
}

func (s *DifficultySelectState) Exit() {}

func (s *DifficultySelectState) Mode() Mode { return ModeDifficultySelect }

// Selection — подсвеченная сложность.
func (s *DifficultySelectState) Selection() int { return s.sm.difficultySelection }

// LevelSelectState — выбор уровня среди открытых на текущей сложности.
// Закрытые уровни видны, но выбрать их нельзя.
type LevelSelectState struct {
	sm       *StateMachine
	menu     menu
	unlocked []int
}

func NewLevelSelectState(sm *StateMachine) *LevelSelectState {
	return &LevelSelectState{sm: sm, menu: newMenu()}
}

func (s *LevelSelectState) Enter() {
	s.unlocked = s.sm.game.UnlockedLevels()
	if s.sm.levelSelection >= len(s.unlocked) {
		s.sm.levelSelection = 0
	}
}

func (s *LevelSelectState) Update(deltaTime float64, in input.Frame) {
	s.menu.blink.Update(deltaTime)
	switch in.Key {
	case input.KeyEnter:
		if len(s.unlocked) == 0 {
			return
		}
		s.sm.game.StartLevel(s.unlocked[s.sm.levelSelection])
		s.sm.SetState(NewPlayingState(s.sm))
	case input.KeyUp, input.KeyDown:
		s.sm.levelSelection = s.menu.move(in.Key, s.sm.levelSelection, len(s.unlocked))
	}
}

func (s *LevelSelectState) Draw(r render.Renderer) {
	g := s.sm.game
	drawBackground(r, g)

	titles := make([]string, len(g.Catalog))
	for i, level := range g.Catalog {
		titles[i] = level.Title
	}
	highlighted := -1
	if len(s.unlocked) > 0 {
		highlighted = s.unlocked[s.sm.levelSelection]
	}
	s.menu.draw(r, titles,
		func(i int) bool { return i == highlighted },
		func(i int) bool { return !g.Catalog[i].Unlocked[g.Difficulty] })
}

func (s *LevelSelectState) Exit() {}

func (s *LevelSelectState) Mode() Mode { return ModeLevelSelect }

// Selection — индекс подсвеченного пункта среди открытых уровней.
func (s *LevelSelectState) Selection() int { return s.sm.levelSelection }
