// internal/component/alien.go
package component

import (
	"math-defense/internal/config"
	"math-defense/internal/defs"
)

// AlienState — жизненный цикл пришельца: Alive → Exploding → Dead.
type AlienState int

const (
	AlienAlive AlienState = iota
	AlienExploding
	AlienDead
)

func (s AlienState) String() string {
	switch s {
	case AlienAlive:
		return "Alive"
	case AlienExploding:
		return "Exploding"
	case AlienDead:
		return "Dead"
	}
	return "Unknown"
}

// Alien — корабль с арифметическим выражением.
// Ответ и текст выражения хранятся отдельно, текст при проверке не разбирается.
type Alien struct {
	Operation  defs.Operation
	Speed      float64
	X, Y       float64
	A, B       int
	Expression string
	Answer     int
	Explosion  Explosion
	State      AlienState
}

// Update двигает пришельца вниз и ведёт анимацию взрыва.
// Возвращает true в кадре, когда взрыв закончился и пришелец умер —
// по этому сигналу турель перестаёт стрелять.
func (a *Alien) Update(dt float64) bool {
	if a.State == AlienDead {
		return false
	}

	sec := dt / config.SpeedDivisor
	speed := a.Speed
	if a.Y < config.EntranceY {
		speed *= config.EntranceBoost
	}
	a.Y += speed * sec

	if a.State == AlienExploding {
		a.Explosion.X, a.Explosion.Y = a.X, a.Y
		a.Explosion.Update(dt)
		if a.Explosion.Done() {
			a.State = AlienDead
			return true
		}
	}
	return false
}

// Hit переводит пришельца во взрыв. Звук попадания уже проигран выстрелом,
// поэтому взрыв помечается как озвученный.
func (a *Alien) Hit() {
	if a.State != AlienAlive {
		return
	}
	a.State = AlienExploding
	a.Explosion = NewExplosion(0, a.X, a.Y)
	a.Explosion.SoundPlayed = true
}

// Targetable — живой и уже на экране.
func (a *Alien) Targetable() bool {
	return a.State == AlienAlive && a.Y >= 0
}

// ShipVisible — корабль рисуется, пока взрыв не прошёл половину.
func (a *Alien) ShipVisible() bool {
	if a.State == AlienDead {
		return false
	}
	return a.State == AlienAlive || a.Explosion.Elapsed < a.Explosion.Duration/2
}

// ImageKey возвращает спрайт корабля для операции.
func (a *Alien) ImageKey() string {
	switch a.Operation {
	case defs.Subtract:
		return config.ImageSubShip
	case defs.Multiply:
		return config.ImageMulShip
	case defs.Divide:
		return config.ImageDivShip
	}
	return config.ImageAddShip
}
