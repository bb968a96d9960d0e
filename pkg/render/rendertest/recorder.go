// pkg/render/rendertest/recorder.go
package rendertest

import (
	"image/color"
	"strings"

	"math-defense/pkg/render"
)

// Call — одна записанная операция отрисовки.
type Call struct {
	Op    string // "clear", "image", "line", "text"
	Key   string // ключ картинки или шрифта
	Text  string
	X, Y  float64
	Img   render.ImageParams
	Color color.Color // для "text" и "line"
}

// Recorder — Renderer без окна: запоминает вызовы.
// Картинки считаются 100×100, символ текста — size/2 в ширину.
type Recorder struct {
	W, H  float64
	Calls []Call
}

var _ render.Renderer = (*Recorder)(nil)

func New(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(color.Color) {
	r.Calls = append(r.Calls, Call{Op: "clear"})
}

func (r *Recorder) DrawImage(key string, p render.ImageParams) {
	r.Calls = append(r.Calls, Call{Op: "image", Key: key, X: p.X, Y: p.Y, Img: p})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2, thickness float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "line", X: x1, Y: y1, Color: c})
}

func (r *Recorder) DrawText(font string, size float64, s string, x, y float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "text", Key: font, Text: s, X: x, Y: y, Color: c})
}

func (r *Recorder) MeasureText(font string, size float64, s string) (float64, float64) {
	return float64(len([]rune(s))) * size / 2, size
}

func (r *Recorder) ImageSize(string) (float64, float64) { return 100, 100 }

// Reset очищает записанные вызовы.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count — число вызовов операции op (для "image" и "text" можно уточнить ключом).
func (r *Recorder) Count(op, key string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op && (key == "" || c.Key == key) {
			n++
		}
	}
	return n
}

// TextColor возвращает цвет первой строки, равной s.
func (r *Recorder) TextColor(s string) (color.Color, bool) {
	for _, c := range r.Calls {
		if c.Op == "text" && c.Text == s {
			return c.Color, true
		}
	}
	return nil, false
}

// HasText — была ли нарисована строка, содержащая substr.
func (r *Recorder) HasText(substr string) bool {
	for _, c := range r.Calls {
		if c.Op == "text" && strings.Contains(c.Text, substr) {
			return true
		}
	}
	return false
}
