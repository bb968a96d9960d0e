// internal/component/clock.go
package component

import (
	"math"

	"math-defense/internal/utils"
)

// Blink — циклические часы для пульсации прицела и пунктов меню.
type Blink struct {
	Elapsed float64
	Period  float64
}

func (b *Blink) Update(dt float64) {
	b.Elapsed = math.Mod(b.Elapsed+dt, b.Period)
}

// Pct — фаза 0→1→0 за период.
func (b *Blink) Pct() float64 {
	return utils.PingPong(b.Elapsed, b.Period)
}

// Background — фон уровня. Drift — смещение звёздного поля,
// во время варпа растёт быстрее.
type Background struct {
	Key   string
	Drift float64
}

// Update сдвигает фон; speed — множитель скорости (1 в обычной игре).
func (b *Background) Update(dt, speed float64) {
	b.Drift = math.Mod(b.Drift+dt/8000*speed, 1)
}
