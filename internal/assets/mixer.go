// internal/assets/mixer.go
package assets

import (
	"bytes"

	"math-defense/internal/config"
	"math-defense/internal/event"
	"math-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
)

// Mixer проигрывает звуки по игровым событиям и крутит музыку по кругу.
// Воспроизведение не блокирует кадр.
type Mixer struct {
	ctx   *audio.Context
	store *Store
	music *audio.Player
	log   *logrus.Entry
}

// NewMixer создаёт аудиоконтекст. Контекст в процессе может быть только один.
func NewMixer(store *Store) *Mixer {
	return &Mixer{
		ctx:   audio.NewContext(SampleRate),
		store: store,
		log:   logger.Log.WithField("component", "mixer"),
	}
}

// Subscribe подписывает микшер на все озвученные события.
func (m *Mixer) Subscribe(d *event.Dispatcher) {
	for eventType := range event.SoundCues {
		d.Subscribe(m, eventType)
	}
}

func (m *Mixer) OnEvent(e event.Event) {
	for _, key := range event.SoundCues[e.Type] {
		m.Play(key)
	}
}

// Play запускает короткий звук. Каждый вызов — отдельный плеер,
// поэтому одинаковые звуки накладываются.
func (m *Mixer) Play(key string) {
	pcm, ok := m.store.Sound(key)
	if !ok {
		m.log.WithField("sound", key).Warn("Unknown sound")
		return
	}
	m.ctx.NewPlayerFromBytes(pcm).Play()
}

// PlayMusic запускает фоновую музыку в бесконечном цикле.
func (m *Mixer) PlayMusic() error {
	pcm, ok := m.store.Sound(config.SoundMusic)
	if !ok {
		return config.ErrMissingResource
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := m.ctx.NewPlayer(loop)
	if err != nil {
		return err
	}
	m.music = player
	m.music.Play()
	return nil
}
