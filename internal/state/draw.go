// internal/state/draw.go
package state

import (
	"image"
	"image/color"

	"math-defense/internal/app"
	"math-defense/internal/component"
	"math-defense/internal/config"
	"math-defense/internal/system"
	"math-defense/pkg/render"
)

// drawBackground растягивает фон уровня на экран. Фон сдвигается
// вниз на Drift и повторяется сверху.
func drawBackground(r render.Renderer, g *app.Game) {
	key := g.Background.Key
	if key == "" {
		return
	}
	w, h := r.Size()
	iw, ih := r.ImageSize(key)
	if iw == 0 || ih == 0 {
		return
	}
	shift := g.Background.Drift * h
	for _, y := range []float64{shift - h, shift} {
		r.DrawImage(key, render.ImageParams{Y: y, ScaleX: w / iw, ScaleY: h / ih})
	}
}

func drawAliens(r render.Renderer, g *app.Game) {
	scale := render.FontScale(r, config.DesignHeight)
	for i := range g.Aliens {
		a := &g.Aliens[i]
		if a.ShipVisible() {
			render.DrawSprite(r, a.ImageKey(), a.X, a.Y, config.AlienWidth, config.AlienHeight, 0)
			// Выражение над кораблём
			x, y := render.ToScreen(r, a.X, a.Y)
			_, h := r.Size()
			render.DrawTextCentered(r, config.FontNumber, config.NumberFontSize*scale, a.Expression,
				x, y-config.AlienHeight*h/1.2, config.White)
		}
		if a.State == component.AlienExploding {
			drawExplosion(r, &a.Explosion)
		}
	}
}

func drawExplosion(r render.Renderer, e *component.Explosion) {
	if !e.Started() || e.Done() {
		return
	}
	col, row := e.Cell()
	cell := config.ExplosionCell
	src := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)

	w, h := r.Size()
	x, y := render.ToScreen(r, e.X, e.Y)
	r.DrawImage(config.ImageExplosion, render.ImageParams{
		X:       x,
		Y:       y,
		ScaleX:  w * config.AlienWidth / float64(cell),
		ScaleY:  h * config.AlienHeight / float64(cell),
		OffsetX: 0.5,
		OffsetY: 0.5,
		Src:     src,
	})
}

// drawTargeting рисует прицел на цели и два лазера, пока турель стреляет.
func drawTargeting(r render.Renderer, g *app.Game) {
	if g.Target == system.NoTarget {
		return
	}
	target := g.Aliens[g.Target]

	sx, sy := render.FitScale(r, config.ImageCrosshair, config.CrosshairWidth, config.CrosshairHeight)
	x, y := render.ToScreen(r, target.X, target.Y)
	r.DrawImage(config.ImageCrosshair, render.ImageParams{
		X:       x,
		Y:       y,
		ScaleX:  sx,
		ScaleY:  sy,
		OffsetX: 0.5,
		OffsetY: 0.5,
		Color:   render.LerpColor(config.LaserRed, config.White, g.Crosshair.Pct()),
	})

	if g.Turret.State != component.TurretFiring {
		return
	}
	w, h := r.Size()
	tx, ty := render.ToScreen(r, g.Turret.X, g.Turret.Y)
	gunY := ty - config.LaserGunOffset*h
	for _, gunX := range []float64{tx - config.LaserGunOffset*w, tx + config.LaserGunOffset*w} {
		r.DrawLine(gunX, gunY, x, y, config.LaserThickness, config.LaserRed)
	}
}

func drawTurret(r render.Renderer, g *app.Game) {
	t := g.Turret
	render.DrawSprite(r, config.ImageTurret, t.X, t.Y, config.TurretWidth, config.TurretHeight, t.Rotation)
}

// drawInput показывает набранный ответ у турели.
func drawInput(r render.Renderer, g *app.Game) {
	if g.Turret.Input == "" {
		return
	}
	scale := render.FontScale(r, config.DesignHeight)
	x, y := render.ToScreen(r, g.Turret.X, g.Turret.Y)
	r.DrawText(config.FontNumber, config.NumberFontSize*scale, g.Turret.Input, x, y, config.White)
}

// drawLives — запасные турели в правом нижнем углу, в половину размера.
func drawLives(r render.Renderer, g *app.Game) {
	for i := 0; i < g.Lives; i++ {
		x := config.LivesIconX + config.LivesIconStep*float64(i)
		render.DrawSprite(r, config.ImageTurret, x, config.LivesIconY,
			config.TurretWidth/2, config.TurretHeight/2, 0)
	}
}

func drawTurretExplosions(r render.Renderer, g *app.Game) {
	for i := range g.Turret.Explosions {
		drawExplosion(r, &g.Turret.Explosions[i])
	}
}

// drawMessage показывает только первый баннер очереди.
func drawMessage(r render.Renderer, g *app.Game) {
	msg, ok := g.Messages.Head()
	if !ok {
		return
	}
	w, h := r.Size()
	size := config.MessageFontSize * render.FontScale(r, config.DesignHeight)
	render.DrawTextCentered(r, config.FontMain, size, msg.Text, w/2, h/2, config.White)
}

// drawBanner — крупный заголовок в верхней части экрана и "Press Enter" по центру.
func drawBanner(r render.Renderer, font, title string) {
	w, h := r.Size()
	scale := render.FontScale(r, config.DesignHeight)
	render.DrawTextCentered(r, font, config.TitleFontSize*scale, title, w/2, h/4, config.Blue)
	render.DrawTextCentered(r, config.FontMain, config.MenuFontSize*scale, "Press Enter", w/2, h/2, color.White)
}
