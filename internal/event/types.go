// internal/event/types.go
package event

import "math-defense/internal/config"

const (
	AlienHit         EventType = "AlienHit"         // верный ответ, турель стреляет
	AnswerRejected   EventType = "AnswerRejected"   // неверный ответ или нет цели
	ExplosionIgnited EventType = "ExplosionIgnited" // взрыв турели начал анимацию
	LevelCleared     EventType = "LevelCleared"     // пройдена последняя волна уровня
	GameWon          EventType = "GameWon"          // пройден последний уровень
	WarpStarted      EventType = "WarpStarted"      // начался переход на следующий уровень
	LevelUnlocked    EventType = "LevelUnlocked"    // Data: LevelUnlockedData
)

// AllTypes — все события, которые порождает игра.
var AllTypes = []EventType{
	AlienHit, AnswerRejected, ExplosionIgnited,
	LevelCleared, GameWon, WarpStarted, LevelUnlocked,
}

// LevelUnlockedData — какой уровень открыт и на какой сложности.
type LevelUnlockedData struct {
	Level      int
	Difficulty int
}

// Recorder запоминает полученные события. Удобен в тестах и для отладки.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Count возвращает число событий указанного типа.
func (r *Recorder) Count(eventType EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

// Reset очищает записанные события.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// SoundCues — какие звуки играть на событие.
// Верный ответ озвучивается выстрелом и взрывом сразу.
var SoundCues = map[EventType][]string{
	AlienHit:         {config.SoundLaser, config.SoundExplosion},
	AnswerRejected:   {config.SoundFail},
	ExplosionIgnited: {config.SoundExplosion},
	LevelCleared:     {config.SoundClap},
	GameWon:          {config.SoundClap},
	WarpStarted:      {config.SoundLaunch},
}
