// cmd/game/input.go
package main

import (
	"math-defense/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyEnter:       input.KeyEnter,
	ebiten.KeyNumpadEnter: input.KeyEnter,
	ebiten.KeyBackspace:   input.KeyBackspace,
	ebiten.KeyArrowLeft:   input.KeyLeft,
	ebiten.KeyArrowRight:  input.KeyRight,
	ebiten.KeyArrowUp:     input.KeyUp,
	ebiten.KeyArrowDown:   input.KeyDown,
	ebiten.KeyEscape:      input.KeyEscape,
}

// keyboard собирает ввод кадра: символы и отпущенные клавиши.
// Если за кадр отпущено несколько клавиш, берётся последняя.
type keyboard struct {
	keys  []ebiten.Key
	chars []rune
}

var _ input.Source = (*keyboard)(nil)

func newKeyboard() *keyboard {
	return &keyboard{}
}

func (k *keyboard) Poll() input.Frame {
	k.chars = ebiten.AppendInputChars(k.chars[:0])
	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])

	frame := input.Frame{Chars: k.chars}
	for _, key := range k.keys {
		if mapped, ok := keyMap[key]; ok {
			frame.Key = mapped
		}
	}
	return frame
}
