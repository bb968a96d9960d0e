// internal/component/turret.go
package component

import (
	"strconv"

	"math-defense/internal/config"
	"math-defense/internal/utils"
)

// TurretState — турель либо отдыхает, либо стреляет лазером по цели.
type TurretState int

const (
	TurretResting TurretState = iota
	TurretFiring
)

// Rand — источник случайности для разброса взрывов.
type Rand interface {
	FloatRange(lo, hi float64) float64
}

// Turret — пушка игрока: поворот, буфер ввода ответа и запас взрывов
// для анимации гибели.
type Turret struct {
	X, Y       float64
	Rotation   float64 // радианы, 0 — строго вверх
	Input      string
	State      TurretState
	Explosions [config.TurretExplosions]Explosion
}

// NewTurret создаёт турель с 20 случайно разбросанными и задержанными взрывами.
func NewTurret(rng Rand) *Turret {
	t := &Turret{X: config.TurretX, Y: config.TurretY}
	spread := config.TurretExplosionSpread
	for i := range t.Explosions {
		dx := rng.FloatRange(-spread, spread)
		dy := rng.FloatRange(-spread, spread)
		delay := rng.FloatRange(0, config.TurretExplosionDelay)
		t.Explosions[i] = NewExplosion(delay, config.TurretX+dx, config.TurretY+dy)
	}
	return t
}

// Type добавляет символ в буфер. Принимаются только цифры и минус.
func (t *Turret) Type(ch rune) bool {
	if (ch < '0' || ch > '9') && ch != '-' {
		return false
	}
	t.Input += string(ch)
	return true
}

// Backspace удаляет последний символ; на пустом буфере ничего не делает.
func (t *Turret) Backspace() {
	if t.Input == "" {
		return
	}
	t.Input = t.Input[:len(t.Input)-1]
}

// ClearInput очищает буфер ответа.
func (t *Turret) ClearInput() {
	t.Input = ""
}

// ParseInput разбирает буфер как целое со знаком.
func (t *Turret) ParseInput() (int, bool) {
	n, err := strconv.Atoi(t.Input)
	if err != nil {
		return 0, false
	}
	return n, true
}

// AimAt поворачивает турель на точку (x, y) в нормированных координатах.
// Знак угла меняется в левой половине поля, чтобы пушка поворачивалась в обе стороны.
func (t *Turret) AimAt(x, y float64) {
	angle := utils.AngleBetween(0, -1, x-t.X, y-t.Y)
	if x < 0.5 {
		angle = -angle
	}
	t.Rotation = angle
}

// UpdateExplosions ведёт взрывы гибели. Возвращает число взрывов,
// стартовавших в этом кадре.
func (t *Turret) UpdateExplosions(dt float64) int {
	ignited := 0
	for i := range t.Explosions {
		if t.Explosions[i].Update(dt) {
			ignited++
		}
	}
	return ignited
}

// Destroyed — все взрывы гибели проиграны.
func (t *Turret) Destroyed() bool {
	for i := range t.Explosions {
		if !t.Explosions[i].Done() {
			return false
		}
	}
	return true
}

// ResetPosition возвращает турель на место после варпа.
func (t *Turret) ResetPosition() {
	t.X, t.Y = config.TurretX, config.TurretY
}
