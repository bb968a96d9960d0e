// internal/defs/default_levels.go
package defs

func group(op Operation, speed float64, minNumber, maxNumber, ships int) WaveGroup {
	return WaveGroup{Operation: op, Speed: speed, MinNumber: minNumber, MaxNumber: maxNumber, NumShips: ships}
}

func wave(groups ...WaveGroup) Wave {
	return Wave{Groups: groups}
}

// DefaultCatalog — встроенная кампания, используется когда файл уровней
// отсутствует или повреждён. Первый уровень открыт на всех сложностях.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Title:          "Earth  Orbit",
			BackgroundFile: "earth",
			Unlocked:       UnlockFlags{true, true, true, true},
			Waves: []Wave{
				wave(group(Add, 2.5, 0, 5, 5)),
				wave(group(Add, 2.75, 0, 8, 7)),
				wave(group(Add, 3.0, 1, 10, 6), group(Add, 2.0, 0, 5, 3)),
			},
		},
		{
			Title:          "The  Moon",
			BackgroundFile: "moon",
			Waves: []Wave{
				wave(group(Subtract, 2.5, 0, 6, 5)),
				wave(group(Subtract, 2.75, 0, 10, 7)),
				wave(group(Add, 3.0, 0, 10, 4), group(Subtract, 3.0, 0, 10, 4)),
			},
		},
		{
			Title:          "Mars",
			BackgroundFile: "mars",
			Waves: []Wave{
				wave(group(Multiply, 2.0, 0, 4, 5)),
				wave(group(Multiply, 2.25, 0, 6, 7)),
				wave(group(Multiply, 2.5, 1, 8, 5), group(Subtract, 2.5, 0, 10, 3)),
			},
		},
		{
			Title:          "Jupiter",
			BackgroundFile: "jupiter",
			Waves: []Wave{
				wave(group(Divide, 2.0, 0, 6, 5)),
				wave(group(Divide, 2.25, 1, 10, 7)),
				wave(group(Divide, 2.5, 1, 12, 5), group(Multiply, 2.5, 0, 6, 3)),
			},
		},
		{
			Title:          "Deep  Space",
			BackgroundFile: "nebula",
			Waves: []Wave{
				wave(group(Add, 3.0, 0, 12, 3), group(Subtract, 3.0, 0, 12, 3)),
				wave(group(Multiply, 3.0, 1, 8, 3), group(Divide, 3.0, 1, 12, 3)),
				wave(
					group(Add, 3.5, 5, 20, 2),
					group(Subtract, 3.5, 5, 20, 2),
					group(Multiply, 3.0, 2, 10, 2),
					group(Divide, 3.0, 2, 15, 2),
				),
			},
		},
	}
}
