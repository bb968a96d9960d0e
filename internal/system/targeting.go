// internal/system/targeting.go
package system

import "math-defense/internal/component"

// NoTarget — цели нет.
const NoTarget = -1

// LowestLiving выбирает самого нижнего (ближе всех к турели) не мёртвого пришельца.
// При равенстве побеждает первый.
func LowestLiving(aliens []component.Alien) int {
	target := NoTarget
	for i := range aliens {
		if aliens[i].State == component.AlienDead {
			continue
		}
		if target == NoTarget || aliens[i].Y > aliens[target].Y {
			target = i
		}
	}
	return target
}

// NeedsReelection — цели нет или она указывает на мёртвого.
func NeedsReelection(aliens []component.Alien, target int) bool {
	if target < 0 || target >= len(aliens) {
		return true
	}
	return aliens[target].State == component.AlienDead
}

// PreviousTarget переводит цель на ближайшего живого слева (с переходом через край).
// Пришельцы, ещё не вошедшие в экран, и взрывающиеся пропускаются.
func PreviousTarget(aliens []component.Alien, target int) int {
	return cycle(aliens, target, -1)
}

// NextTarget — то же вправо.
func NextTarget(aliens []component.Alien, target int) int {
	return cycle(aliens, target, 1)
}

func cycle(aliens []component.Alien, target, step int) int {
	n := len(aliens)
	if target < 0 || target >= n {
		return target
	}
	for k := 1; k <= n; k++ {
		j := ((target+step*k)%n + n) % n
		if aliens[j].Targetable() {
			return j
		}
	}
	return target
}
