package audio

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/scroller/internal/infrastructure/config"
	"github.com/younwookim/scroller/internal/infrastructure/logging"
)

const testRate = beep.SampleRate(44100)

type fakeOutput struct {
	mu      sync.Mutex
	streams []beep.Streamer
}

func (o *fakeOutput) Play(s ...beep.Streamer) { o.streams = append(o.streams, s...) }
func (o *fakeOutput) Lock()                   { o.mu.Lock() }
func (o *fakeOutput) Unlock()                 { o.mu.Unlock() }

func drain(s beep.Streamer) {
	buf := make([][2]float64, 512)
	for {
		if _, ok := s.Stream(buf); !ok {
			return
		}
	}
}

func silentBuffer(samples int) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Silence(samples))
	return buf
}

func createTestAudioConfig() *config.AudioConfig {
	return &config.AudioConfig{
		Enabled:     true,
		SampleRate:  int(testRate),
		Voices:      2,
		MusicVolume: 1,
		FadeMillis:  1000,
	}
}

func createTestPlayer(bank *Bank) (*Player, *fakeOutput) {
	out := &fakeOutput{}
	p := NewPlayer(out, bank, createTestAudioConfig(), logging.Discard(), rand.New(rand.NewPCG(1, 1)))
	return p, out
}

func TestBank_Streamer(t *testing.T) {
	bank := NewBank(testRate)
	bank.Add("grass", silentBuffer(10))
	bank.Add("grass", silentBuffer(20))
	bank.SetVolume("grass", 0.2)

	assert.Equal(t, 2, bank.Variants("grass"))
	s, err := bank.Streamer("grass", 3)
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = bank.Streamer("jump", 0)
	assert.ErrorIs(t, err, ErrUnknownSound)
}

func TestLoadBank(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "jump.wav"))
	require.NoError(t, err)
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(2205), format))
	require.NoError(t, f.Close())

	bank, err := LoadBank(os.DirFS(dir), ".", map[string][]string{"jump": {"jump.wav"}}, nil, testRate)
	require.NoError(t, err)
	assert.Equal(t, 1, bank.Variants("jump"))

	_, err = LoadBank(os.DirFS(dir), ".", map[string][]string{"jump": {"missing.wav"}}, nil, testRate)
	assert.Error(t, err)
}

func TestPlayer_Play_VoiceLimit(t *testing.T) {
	bank := NewBank(testRate)
	bank.Add("jump", silentBuffer(100))
	p, out := createTestPlayer(bank)

	p.Play("jump")
	p.Play("jump")
	p.Play("jump")

	require.Len(t, out.streams, 2, "third cue dropped with both voices busy")
	assert.Equal(t, 2, p.Active())

	drain(out.streams[0])
	assert.Equal(t, 1, p.Active(), "finished cue frees its voice")

	p.Play("jump")
	assert.Len(t, out.streams, 3)
}

func TestPlayer_Play_UnknownIsDropped(t *testing.T) {
	p, out := createTestPlayer(NewBank(testRate))

	assert.NotPanics(t, func() { p.Play("nope") })
	assert.Empty(t, out.streams)
	assert.Equal(t, 0, p.Active())
}

func TestPlayer_FadeOut(t *testing.T) {
	p, out := createTestPlayer(NewBank(testRate))

	p.FadeOut()
	p.Update(0.5)
	assert.Equal(t, 0.0, p.MusicLevel(), "no music, nothing to fade")

	p.StartMusic(silentBuffer(100))
	require.Len(t, out.streams, 1)
	assert.InDelta(t, 1.0, p.MusicLevel(), 1e-9)

	p.FadeOut()
	p.Update(0.5)
	assert.InDelta(t, 0.5, p.MusicLevel(), 1e-3)

	p.FadeOut()
	p.Update(0.25)
	assert.InDelta(t, 0.25, p.MusicLevel(), 1e-3, "a second fade request keeps the running fade")

	p.Update(1)
	assert.Equal(t, 0.0, p.MusicLevel())
}
