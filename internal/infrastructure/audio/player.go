package audio

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"path"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/scroller/internal/infrastructure/config"
)

// Output is where streamers are mixed. Lock guards state read by the
// audio goroutine.
type Output interface {
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }

// Player plays cues on a bounded number of voices and loops the music.
type Player struct {
	out  Output
	bank *Bank
	log  logrus.FieldLogger
	rng  *rand.Rand

	maxVoices int32
	active    atomic.Int32

	music       *effects.Volume
	musicVolume float64
	fadeSeconds float32
	fade        *gween.Tween
}

// NewPlayer creates a player mixing into out.
func NewPlayer(out Output, bank *Bank, cfg *config.AudioConfig, log logrus.FieldLogger, rng *rand.Rand) *Player {
	return &Player{
		out:         out,
		bank:        bank,
		log:         log,
		rng:         rng,
		maxVoices:   int32(cfg.Voices),
		musicVolume: cfg.MusicVolume,
		fadeSeconds: float32(cfg.FadeMillis) / 1000,
	}
}

// Open initialises the speaker, loads the bank and starts the music.
func Open(cfg *config.AudioConfig, fsys fs.FS, log logrus.FieldLogger) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	bank, err := LoadBank(fsys, cfg.Dir, cfg.Sounds, cfg.SoundVolumes, rate)
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(rate, rate.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}

	p := NewPlayer(speakerOutput{}, bank, cfg, log, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
	if cfg.Music != "" {
		music, err := decodeFile(fsys, path.Join(cfg.Dir, cfg.Music), rate)
		if err != nil {
			speaker.Close()
			return nil, fmt.Errorf("music: %w", err)
		}
		p.StartMusic(music)
	}
	return p, nil
}

// Play implements system.SoundPlayer. A random variant is picked; the cue
// is dropped when every voice is busy or the cue is unknown.
func (p *Player) Play(id string) {
	n := p.bank.Variants(id)
	if n == 0 {
		p.log.WithField("sound", id).Debug("unknown sound dropped")
		return
	}
	if p.active.Add(1) > p.maxVoices {
		p.active.Add(-1)
		p.log.WithField("sound", id).Debug("no free voice, sound dropped")
		return
	}

	s, err := p.bank.Streamer(id, p.rng.IntN(n))
	if err != nil {
		p.active.Add(-1)
		p.log.WithError(err).Debug("sound dropped")
		return
	}
	p.out.Play(beep.Seq(s, beep.Callback(func() {
		p.active.Add(-1)
	})))
}

// StartMusic loops buf forever at the music volume.
func (p *Player) StartMusic(buf *beep.Buffer) {
	p.music = newVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), p.musicVolume)
	p.out.Play(p.music)
}

// FadeOut implements system.MusicPlayer. Repeated calls keep the running
// fade.
func (p *Player) FadeOut() {
	if p.music == nil || p.fade != nil {
		return
	}
	p.fade = gween.New(1, 0, p.fadeSeconds, ease.Linear)
}

// Update advances the music fade by dt seconds.
func (p *Player) Update(dt float64) {
	if p.fade == nil || p.music == nil {
		return
	}
	level, done := p.fade.Update(float32(dt))
	vol := p.musicVolume * float64(level)
	if done {
		vol = 0
	}

	p.out.Lock()
	setVolume(p.music, vol)
	p.out.Unlock()
}

// MusicLevel returns the current music gain, 0 when silenced.
func (p *Player) MusicLevel() float64 {
	if p.music == nil || p.music.Silent {
		return 0
	}
	return pow2(p.music.Volume)
}

// Active returns the number of voices playing.
func (p *Player) Active() int { return int(p.active.Load()) }

// Close stops all sound and releases the speaker.
func (p *Player) Close() {
	if _, ok := p.out.(speakerOutput); ok {
		speaker.Clear()
		speaker.Close()
	}
}
