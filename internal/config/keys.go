// internal/config/keys.go
package config

// Ключи изображений
const (
	ImageAddShip   = "add-ship"
	ImageSubShip   = "sub-ship"
	ImageMulShip   = "mul-ship"
	ImageDivShip   = "div-ship"
	ImageTurret    = "turret"
	ImageCrosshair = "crosshair"
	ImageExplosion = "explosion"
)

// Ключи шрифтов
const (
	FontTitle  = "title"
	FontMain   = "main"
	FontNumber = "number"
)

// Ключи звуков
const (
	SoundExplosion = "explosion"
	SoundClap      = "clap"
	SoundLaunch    = "launch"
	SoundFail      = "fail"
	SoundLaser     = "laser"
	SoundMusic     = "music"
)

// ImageKeys — все обязательные спрайты (фоны уровней добавляются из каталога).
var ImageKeys = []string{
	ImageAddShip, ImageSubShip, ImageMulShip, ImageDivShip,
	ImageTurret, ImageCrosshair, ImageExplosion,
}

// FontFiles сопоставляет ключ шрифта с файлом в директории ресурсов.
var FontFiles = map[string]string{
	FontTitle:  "title.ttf",
	FontMain:   "main.ttf",
	FontNumber: "number.ttf",
}

// SoundFiles сопоставляет ключ звука с файлом. Формат определяется по расширению.
var SoundFiles = map[string]string{
	SoundExplosion: "explosion.wav",
	SoundClap:      "clap.ogg",
	SoundLaunch:    "launch.wav",
	SoundFail:      "fail.ogg",
	SoundLaser:     "laser.ogg",
	SoundMusic:     "music.mp3",
}

// ImageFile возвращает имя файла изображения по ключу.
func ImageFile(key string) string {
	return key + ".png"
}
