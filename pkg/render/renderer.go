// pkg/render/renderer.go
package render

import (
	"image"
	"image/color"
)

// ImageParams описывает, как нарисовать изображение.
// X, Y — точка привязки в пикселях экрана; OffsetX, OffsetY — положение
// этой точки внутри картинки в долях (0.5, 0.5 — центр).
type ImageParams struct {
	X, Y             float64
	ScaleX, ScaleY   float64
	Rotation         float64
	OffsetX, OffsetY float64
	Color            color.Color     // nil — без тонировки
	Src              image.Rectangle // пустой — вся картинка
}

// Renderer — всё, что игре нужно от графики.
// Реализация на ebiten живёт в internal/assets, в тестах — rendertest.Recorder.
type Renderer interface {
	Size() (w, h float64)
	Clear(c color.Color)
	DrawImage(key string, p ImageParams)
	DrawLine(x1, y1, x2, y2, thickness float64, c color.Color)
	DrawText(font string, size float64, s string, x, y float64, c color.Color)
	MeasureText(font string, size float64, s string) (w, h float64)
	ImageSize(key string) (w, h float64)
}

// ToScreen переводит нормированные координаты поля в пиксели.
func ToScreen(r Renderer, x, y float64) (float64, float64) {
	w, h := r.Size()
	return x * w, y * h
}

// FitScale подбирает масштаб, при котором картинка занимает
// долю wFrac×hFrac экрана.
func FitScale(r Renderer, key string, wFrac, hFrac float64) (float64, float64) {
	sw, sh := r.Size()
	iw, ih := r.ImageSize(key)
	if iw == 0 || ih == 0 {
		return 1, 1
	}
	return sw * wFrac / iw, sh * hFrac / ih
}

// FontScale — множитель размера шрифта для текущей высоты окна.
// Размеры шрифтов заданы для designHeight.
func FontScale(r Renderer, designHeight float64) float64 {
	_, h := r.Size()
	if designHeight <= 0 {
		return 1
	}
	return h / designHeight
}

// DrawTextCentered рисует строку с центром в (cx, cy).
func DrawTextCentered(r Renderer, font string, size float64, s string, cx, cy float64, c color.Color) {
	w, h := r.MeasureText(font, size, s)
	r.DrawText(font, size, s, cx-w/2, cy-h/2, c)
}

// DrawSprite рисует картинку по центру точки с заданным размером в долях экрана.
func DrawSprite(r Renderer, key string, x, y, wFrac, hFrac, rotation float64) {
	sx, sy := FitScale(r, key, wFrac, hFrac)
	px, py := ToScreen(r, x, y)
	r.DrawImage(key, ImageParams{
		X:        px,
		Y:        py,
		ScaleX:   sx,
		ScaleY:   sy,
		Rotation: rotation,
		OffsetX:  0.5,
		OffsetY:  0.5,
	})
}
