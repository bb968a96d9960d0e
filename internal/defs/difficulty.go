// internal/defs/difficulty.go
package defs

import (
	"encoding/json"
	"fmt"
	"math"
)

// DifficultyCount — число уровней сложности.
const DifficultyCount = 4

// Difficulty — множители, применяемые к параметрам групп волны.
type Difficulty struct {
	Name      string
	SpeedMul  float64
	MaxNumMul float64
	MinNumMul float64
	ShipsMul  float64
}

// Difficulties — фиксированная таблица сложностей.
var Difficulties = [DifficultyCount]Difficulty{
	{Name: "Cadet", SpeedMul: 1.0, MaxNumMul: 1.0, MinNumMul: 1.0, ShipsMul: 1.0},
	{Name: "Pilot", SpeedMul: 1.25, MaxNumMul: 1.5, MinNumMul: 1.25, ShipsMul: 1.25},
	{Name: "Ace", SpeedMul: 1.5, MaxNumMul: 2.0, MinNumMul: 2.0, ShipsMul: 1.5},
	{Name: "Commander", SpeedMul: 1.75, MaxNumMul: 3.0, MinNumMul: 3.0, ShipsMul: 1.75},
}

// DifficultyNames — подписи пунктов меню выбора сложности.
func DifficultyNames() []string {
	names := make([]string, 0, DifficultyCount)
	for _, d := range Difficulties {
		names = append(names, d.Name)
	}
	return names
}

// ScaledGroup — параметры группы после применения сложности.
type ScaledGroup struct {
	Operation Operation
	Speed     float64
	MinNumber int
	MaxNumber int
	NumShips  int
}

// Scale применяет множители сложности к группе (с округлением вниз).
func (d Difficulty) Scale(g WaveGroup) ScaledGroup {
	return ScaledGroup{
		Operation: g.Operation,
		Speed:     g.Speed * d.SpeedMul,
		MinNumber: int(math.Floor(float64(g.MinNumber) * d.MinNumMul)),
		MaxNumber: int(math.Floor(float64(g.MaxNumber) * d.MaxNumMul)),
		NumShips:  int(math.Floor(float64(g.NumShips) * d.ShipsMul)),
	}
}

// UnlockFlags — флаги открытия уровня по сложностям.
// При чтении требуется массив ровно из DifficultyCount элементов.
type UnlockFlags [DifficultyCount]bool

func (u *UnlockFlags) UnmarshalJSON(data []byte) error {
	var flags []bool
	if err := json.Unmarshal(data, &flags); err != nil {
		return err
	}
	if len(flags) != DifficultyCount {
		return fmt.Errorf("unlocked: expected %d flags, got %d", DifficultyCount, len(flags))
	}
	copy(u[:], flags)
	return nil
}
