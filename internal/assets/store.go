// internal/assets/store.go
package assets

import (
	"bytes"
	"fmt"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"math-defense/internal/config"
	"math-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// SampleRate — частота аудиоконтекста, к ней приводятся все звуки.
const SampleRate = 44100

type faceKey struct {
	font string
	size float64
}

// Store — загруженные картинки, шрифты и звуки по ключам.
// Всё читается один раз при старте; отсутствие любого файла — ошибка.
type Store struct {
	dir    string
	images map[string]*ebiten.Image
	fonts  map[string]*opentype.Font
	faces  map[faceKey]font.Face
	sounds map[string][]byte // PCM, 16 бит стерео, SampleRate
	log    *logrus.Entry
}

// Load читает все ресурсы из dir. backgrounds — ключи фонов уровней.
func Load(dir string, backgrounds []string) (*Store, error) {
	if err := config.CheckResources(dir, backgrounds); err != nil {
		return nil, err
	}

	s := &Store{
		dir:    dir,
		images: make(map[string]*ebiten.Image),
		fonts:  make(map[string]*opentype.Font),
		faces:  make(map[faceKey]font.Face),
		sounds: make(map[string][]byte),
		log:    logger.Log.WithField("resources", dir),
	}

	keys := append(append([]string(nil), config.ImageKeys...), backgrounds...)
	for _, key := range keys {
		if err := s.loadImage(key); err != nil {
			return nil, err
		}
	}
	for key, file := range config.FontFiles {
		if err := s.loadFont(key, file); err != nil {
			return nil, err
		}
	}
	for key, file := range config.SoundFiles {
		if err := s.loadSound(key, file); err != nil {
			return nil, err
		}
	}

	s.log.WithFields(logrus.Fields{
		"images": len(s.images),
		"fonts":  len(s.fonts),
		"sounds": len(s.sounds),
	}).Info("Resources loaded")
	return s, nil
}

func (s *Store) loadImage(key string) error {
	path := filepath.Join(s.dir, config.ImageFile(key))
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load image %q: %w", key, err)
	}
	s.images[key] = img
	return nil
}

func (s *Store) loadFont(key, file string) error {
	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		return fmt.Errorf("failed to read font %q: %w", key, err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font %q: %w", key, err)
	}
	s.fonts[key] = tt
	return nil
}

// loadSound декодирует файл целиком; формат — по расширению.
func (s *Store) loadSound(key, file string) error {
	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		return fmt.Errorf("failed to read sound %q: %w", key, err)
	}

	var stream io.Reader
	r := bytes.NewReader(data)
	switch strings.ToLower(filepath.Ext(file)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, r)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, r)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(SampleRate, r)
	default:
		return fmt.Errorf("sound %q: unsupported format %s", key, filepath.Ext(file))
	}
	if err != nil {
		return fmt.Errorf("failed to decode sound %q: %w", key, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to decode sound %q: %w", key, err)
	}
	s.sounds[key] = pcm
	return nil
}

// Image возвращает картинку по ключу.
func (s *Store) Image(key string) (*ebiten.Image, bool) {
	img, ok := s.images[key]
	return img, ok
}

// Face возвращает шрифт нужного размера. Начертания кэшируются.
func (s *Store) Face(key string, size float64) (font.Face, bool) {
	fk := faceKey{font: key, size: size}
	if face, ok := s.faces[fk]; ok {
		return face, true
	}
	tt, ok := s.fonts[key]
	if !ok {
		return nil, false
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		s.log.WithError(err).WithField("font", key).Error("Failed to create font face")
		return nil, false
	}
	s.faces[fk] = face
	return face, true
}

// Sound возвращает PCM-данные звука.
func (s *Store) Sound(key string) ([]byte, bool) {
	pcm, ok := s.sounds[key]
	return pcm, ok
}
