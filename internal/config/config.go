// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Math Defense"
	MaxDeltaMs   = 60.0 // защита от скачков времени после паузы окна

	LevelsFile = "levels.json"

	StartingLives = 2

	// Игровое поле нормировано в [0,1]²
	BreachY       = 0.9  // пришелец ниже этой линии — турель подбита
	EntranceY     = 0.07 // выше этой линии пришелец ещё "влетает"
	EntranceBoost = 3.0  // множитель скорости при влёте
	SpeedDivisor  = 100000.0
	SpawnSpacingY = 0.3 // вертикальный шаг между кораблями группы
	SpawnMinX     = 0.05
	SpawnMaxX     = 0.95
	SpawnMinGapX  = 0.1
	SpawnLookback = 3

	TurretX = 0.5
	TurretY = 0.9

	MessageDuration    = 2000.0
	TransitionDuration = 3000.0
	TransitionRise     = 0.015
	TransitionFlashPct = 0.75

	ExplosionDuration     = 500.0
	ExplosionFrames       = 16
	TurretExplosions      = 20
	TurretExplosionDelay  = 1000.0
	TurretExplosionSpread = 0.05

	BlinkPeriod = 1000.0 // crosshair и пункты меню
	LockedDim   = 0.5    // насколько затемнены закрытые уровни

	MessageFontSize = 128.0
	TitleFontSize   = 128.0
	MenuFontSize    = 64.0
	NumberFontSize  = 24.0
	DesignHeight    = 1080.0 // размеры текста заданы для 1080p

	LaserThickness = 4.0
	LaserGunOffset = 0.01
)

// Размеры спрайтов в долях экрана
const (
	AlienWidth      = 0.045
	AlienHeight     = 0.07
	TurretWidth     = 0.035
	TurretHeight    = 0.05
	CrosshairWidth  = 0.090
	CrosshairHeight = 0.125
	LivesIconX      = 0.95
	LivesIconStep   = 0.03
	LivesIconY      = 0.925
	ExplosionCell   = 64
	ExplosionSheet  = 4
)

var (
	White    = color.RGBA{255, 255, 255, 255}
	Blue     = color.RGBA{0, 0, 255, 255}
	Gray     = color.RGBA{128, 128, 128, 255}
	Black    = color.RGBA{0, 0, 0, 255}
	LaserRed = color.RGBA{255, 0, 0, 255}
)
