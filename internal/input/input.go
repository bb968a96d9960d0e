// internal/input/input.go
package input

// Key — дискретная клавиша, обрабатываемая по отпусканию.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEscape:
		return "Escape"
	}
	return "None"
}

// Frame — ввод за один кадр: набранные символы и не более одной клавиши.
type Frame struct {
	Chars []rune
	Key   Key
}

// Source — откуда берётся ввод. Реализация на ebiten живёт в cmd/game.
type Source interface {
	Poll() Frame
}
