// internal/assets/screen.go
package assets

import (
	"image/color"
	"math"

	"math-defense/internal/config"
	"math-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen рисует на кадре ebiten картинки и шрифты из Store.
type Screen struct {
	store  *Store
	target *ebiten.Image
}

var _ render.Renderer = (*Screen)(nil)

func NewScreen(store *Store) *Screen {
	return &Screen{store: store}
}

// Bind задаёт кадр, на котором рисовать.
func (s *Screen) Bind(target *ebiten.Image) {
	s.target = target
}

func (s *Screen) Size() (float64, float64) {
	if s.target == nil {
		return config.ScreenWidth, config.ScreenHeight
	}
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Screen) Clear(c color.Color) {
	s.target.Fill(c)
}

func (s *Screen) DrawImage(key string, p render.ImageParams) {
	img, ok := s.store.Image(key)
	if !ok {
		return
	}
	if !p.Src.Empty() {
		img = img.SubImage(p.Src).(*ebiten.Image)
	}
	b := img.Bounds()

	sx, sy := p.ScaleX, p.ScaleY
	if sx == 0 && sy == 0 {
		sx, sy = 1, 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-p.OffsetX*float64(b.Dx()), -p.OffsetY*float64(b.Dy()))
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(p.Rotation)
	op.GeoM.Translate(p.X, p.Y)
	if p.Color != nil {
		op.ColorScale.ScaleWithColor(p.Color)
	}
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, op)
}

func (s *Screen) DrawLine(x1, y1, x2, y2, thickness float64, c color.Color) {
	vector.StrokeLine(s.target, float32(x1), float32(y1), float32(x2), float32(y2), float32(thickness), c, true)
}

// DrawText рисует строку так, что её левый верхний угол в (x, y).
func (s *Screen) DrawText(fontKey string, size float64, str string, x, y float64, c color.Color) {
	face, ok := s.store.Face(fontKey, roundSize(size))
	if !ok {
		return
	}
	b := text.BoundString(face, str)
	text.Draw(s.target, str, face, int(x)-b.Min.X, int(y)-b.Min.Y, c)
}

func (s *Screen) MeasureText(fontKey string, size float64, str string) (float64, float64) {
	face, ok := s.store.Face(fontKey, roundSize(size))
	if !ok {
		return 0, 0
	}
	b := text.BoundString(face, str)
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Screen) ImageSize(key string) (float64, float64) {
	img, ok := s.store.Image(key)
	if !ok {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// roundSize округляет размер шрифта, чтобы кэш начертаний не рос при ресайзе окна.
func roundSize(size float64) float64 {
	return math.Max(1, math.Round(size))
}
