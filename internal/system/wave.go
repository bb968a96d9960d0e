// internal/system/wave.go
package system

import (
	"fmt"
	"math"
	"sort"

	"math-defense/internal/component"
	"math-defense/internal/config"
	"math-defense/internal/defs"
	"math-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Rand — источник случайности генератора. Реализуется utils.PRNGService.
type Rand interface {
	IntRange(lo, hi int) int
	FloatRange(lo, hi float64) float64
}

// WaveGenerator превращает описание волны в набор пришельцев.
// При одинаковом сиде генератора результат одинаковый.
type WaveGenerator struct {
	rng Rand
	log *logrus.Entry
}

func NewWaveGenerator(rng Rand) *WaveGenerator {
	return &WaveGenerator{
		rng: rng,
		log: logger.Log.WithField("system", "wave"),
	}
}

// Generate создаёт пришельцев всех групп волны с учётом сложности.
// Результат отсортирован по X: этот порядок используют Left/Right.
func (g *WaveGenerator) Generate(wave defs.Wave, difficulty int) []component.Alien {
	diff := defs.Difficulties[difficulty]
	var aliens []component.Alien

	for _, group := range wave.Groups {
		scaled := diff.Scale(group)
		lo, hi := scaled.MinNumber, scaled.MaxNumber
		if scaled.Operation == defs.Divide && lo < 1 {
			lo = 1
		}
		if hi <= lo {
			hi = lo + 1
		}

		for i := 0; i < scaled.NumShips; i++ {
			a, b := g.operands(scaled.Operation, lo, hi, difficulty)
			alien := component.Alien{
				Operation:  scaled.Operation,
				Speed:      scaled.Speed,
				X:          g.placeX(aliens),
				Y:          -float64(i) * config.SpawnSpacingY,
				A:          a,
				B:          b,
				Expression: fmt.Sprintf("%d%s%d", a, scaled.Operation.Symbol(), b),
				Answer:     scaled.Operation.Apply(a, b),
				State:      component.AlienAlive,
			}
			aliens = append(aliens, alien)
		}
	}

	sort.SliceStable(aliens, func(i, j int) bool {
		return aliens[i].X < aliens[j].X
	})

	g.log.WithFields(logrus.Fields{
		"groups":     len(wave.Groups),
		"aliens":     len(aliens),
		"difficulty": difficulty,
	}).Debug("Wave generated")
	return aliens
}

// operands выбирает пару чисел из [lo, hi) по правилам операции.
func (g *WaveGenerator) operands(op defs.Operation, lo, hi, difficulty int) (int, int) {
	a := g.rng.IntRange(lo, hi)
	b := g.rng.IntRange(lo, hi)

	switch op {
	case defs.Divide:
		// Делим нацело: b в [1, a] и делит a
		if a == lo {
			return a, a
		}
		for b == 0 || b > a || a%b != 0 {
			b = g.rng.IntRange(lo, hi)
		}
	case defs.Subtract:
		if difficulty < 2 && b > a {
			a, b = b, a
		}
	}
	return a, b
}

// placeX подбирает X так, чтобы корабль не налезал на три последних.
func (g *WaveGenerator) placeX(placed []component.Alien) float64 {
	for {
		x := g.rng.FloatRange(config.SpawnMinX, config.SpawnMaxX)
		if !crowded(x, placed) {
			return x
		}
	}
}

func crowded(x float64, placed []component.Alien) bool {
	start := len(placed) - config.SpawnLookback
	if start < 0 {
		start = 0
	}
	for _, other := range placed[start:] {
		if math.Abs(x-other.X) < config.SpawnMinGapX {
			return true
		}
	}
	return false
}
