// internal/defs/levels.go
package defs

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog     = errors.New("catalog has no levels")
	ErrNoWaves          = errors.New("level has no waves")
	ErrInvalidWaveGroup = errors.New("invalid wave group")
	ErrUnknownOperation = errors.New("unknown operation")
)

// Operation — арифметическая операция корабля.
type Operation int

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
)

var operationNames = [...]string{"Add", "Subtract", "Multiply", "Divide"}

func (o Operation) String() string {
	if o < Add || o > Divide {
		return fmt.Sprintf("Operation(%d)", int(o))
	}
	return operationNames[o]
}

// Symbol возвращает знак операции для текста выражения.
func (o Operation) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "X"
	case Divide:
		return "/"
	}
	return "?"
}

// Apply вычисляет результат. Для Divide делитель должен быть ненулевым.
func (o Operation) Apply(a, b int) int {
	switch o {
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	}
	return a + b
}

func (o Operation) MarshalText() ([]byte, error) {
	if o < Add || o > Divide {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperation, int(o))
	}
	return []byte(operationNames[o]), nil
}

func (o *Operation) UnmarshalText(text []byte) error {
	for i, name := range operationNames {
		if name == string(text) {
			*o = Operation(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownOperation, string(text))
}

// WaveGroup — однородная группа кораблей внутри волны.
type WaveGroup struct {
	Operation Operation `json:"operation"`
	Speed     float64   `json:"speed"`
	NumShips  int       `json:"num_ships"`
	MinNumber int       `json:"min_number"`
	MaxNumber int       `json:"max_number"`
}

// Validate проверяет 0 ≤ min < max и неотрицательное число кораблей.
func (g WaveGroup) Validate() error {
	if g.Operation < Add || g.Operation > Divide {
		return fmt.Errorf("%w: %d", ErrUnknownOperation, int(g.Operation))
	}
	if g.MinNumber < 0 || g.MinNumber >= g.MaxNumber {
		return fmt.Errorf("%w: range [%d, %d)", ErrInvalidWaveGroup, g.MinNumber, g.MaxNumber)
	}
	if g.NumShips < 0 {
		return fmt.Errorf("%w: num_ships %d", ErrInvalidWaveGroup, g.NumShips)
	}
	return nil
}

// Wave — набор групп, появляющихся одновременно.
type Wave struct {
	Groups []WaveGroup `json:"groups"`
}

// Level — уровень кампании.
type Level struct {
	Title          string      `json:"title"`
	BackgroundFile string      `json:"background_file"`
	Unlocked       UnlockFlags `json:"unlocked"`
	Waves          []Wave      `json:"waves"`
}

// Catalog — упорядоченный список уровней.
type Catalog []Level

// Validate проверяет структуру каталога целиком.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	for li, level := range c {
		if len(level.Waves) == 0 {
			return fmt.Errorf("level %d %q: %w", li, level.Title, ErrNoWaves)
		}
		for wi, wave := range level.Waves {
			for gi, group := range wave.Groups {
				if err := group.Validate(); err != nil {
					return fmt.Errorf("level %d wave %d group %d: %w", li, wi, gi, err)
				}
			}
		}
	}
	return nil
}

// UnlockedLevels возвращает индексы открытых на данной сложности уровней.
func (c Catalog) UnlockedLevels(difficulty int) []int {
	var out []int
	for i, level := range c {
		if level.Unlocked[difficulty] {
			out = append(out, i)
		}
	}
	return out
}

// BackgroundKeys — ключи фонов всех уровней без повторов.
func (c Catalog) BackgroundKeys() []string {
	seen := make(map[string]struct{}, len(c))
	var keys []string
	for _, level := range c {
		if _, ok := seen[level.BackgroundFile]; ok {
			continue
		}
		seen[level.BackgroundFile] = struct{}{}
		keys = append(keys, level.BackgroundFile)
	}
	return keys
}
