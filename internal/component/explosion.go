// internal/component/explosion.go
package component

import (
	"math"

	"math-defense/internal/config"
)

// Explosion — анимация взрыва из 16 кадров (туда и обратно по листу спрайтов).
// Время в миллисекундах.
type Explosion struct {
	StartDelay  float64
	Duration    float64
	Elapsed     float64
	Frame       int
	X, Y        float64
	SoundPlayed bool
}

// NewExplosion создаёт взрыв, который начнётся через startDelay мс.
func NewExplosion(startDelay, x, y float64) Explosion {
	return Explosion{
		StartDelay: startDelay,
		Duration:   config.ExplosionDuration,
		X:          x,
		Y:          y,
	}
}

// Update продвигает часы взрыва. Возвращает true ровно один раз —
// в кадре, когда время впервые достигло задержки старта (момент для звука).
func (e *Explosion) Update(dt float64) bool {
	if e.Elapsed-e.StartDelay <= e.Duration {
		e.Elapsed += dt
		if e.Elapsed >= e.StartDelay {
			e.Frame = frameIndex(e.Elapsed-e.StartDelay, e.Duration)
		}
	}
	if !e.SoundPlayed && e.Started() {
		e.SoundPlayed = true
		return true
	}
	return false
}

// Started — анимация уже идёт (или закончилась).
func (e *Explosion) Started() bool {
	return e.Elapsed >= e.StartDelay
}

// Done — анимация полностью проиграна.
func (e *Explosion) Done() bool {
	return e.Elapsed-e.StartDelay > e.Duration
}

// Cell возвращает столбец и строку кадра в листе 4×4. Лист идёт в обратном порядке.
func (e *Explosion) Cell() (col, row int) {
	index := config.ExplosionFrames - 1 - e.Frame
	return index % config.ExplosionSheet, index / config.ExplosionSheet
}

// frameIndex: 0,1,…,15,14,…,0 за время duration.
func frameIndex(progress, duration float64) int {
	last := config.ExplosionFrames - 1
	index := int(math.Floor(progress / duration * float64(2*last)))
	if index > last {
		index = 2*last - index
	}
	if index < 0 {
		index = 0
	}
	if index > last {
		index = last
	}
	return index
}
