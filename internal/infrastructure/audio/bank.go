// Package audio plays sound cues and the background music through beep.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// ErrUnknownSound is returned for a cue with no loaded variants.
var ErrUnknownSound = errors.New("unknown sound")

// Bank holds decoded sound variants at the output sample rate.
type Bank struct {
	rate     beep.SampleRate
	variants map[string][]*beep.Buffer
	volumes  map[string]float64
}

// NewBank creates an empty bank.
func NewBank(rate beep.SampleRate) *Bank {
	return &Bank{
		rate:     rate,
		variants: make(map[string][]*beep.Buffer),
		volumes:  make(map[string]float64),
	}
}

// LoadBank decodes every file listed per cue from dir inside fsys.
func LoadBank(fsys fs.FS, dir string, sounds map[string][]string, volumes map[string]float64, rate beep.SampleRate) (*Bank, error) {
	b := NewBank(rate)
	for id, files := range sounds {
		for _, name := range files {
			buf, err := decodeFile(fsys, path.Join(dir, name), rate)
			if err != nil {
				return nil, fmt.Errorf("sound %s: %w", id, err)
			}
			b.Add(id, buf)
		}
	}
	for id, v := range volumes {
		b.SetVolume(id, v)
	}
	return b, nil
}

// Add registers one more variant of a cue.
func (b *Bank) Add(id string, buf *beep.Buffer) {
	b.variants[id] = append(b.variants[id], buf)
}

// SetVolume scales a cue; 1 is unchanged.
func (b *Bank) SetVolume(id string, v float64) {
	b.volumes[id] = v
}

// Variants returns how many variants a cue has.
func (b *Bank) Variants(id string) int { return len(b.variants[id]) }

// Streamer returns a fresh streamer over variant i of a cue.
func (b *Bank) Streamer(id string, i int) (beep.Streamer, error) {
	vs := b.variants[id]
	if len(vs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSound, id)
	}
	buf := vs[i%len(vs)]
	s := buf.Streamer(0, buf.Len())
	if v, ok := b.volumes[id]; ok {
		return newVolume(s, v), nil
	}
	return s, nil
}

func decodeFile(fsys fs.FS, name string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	defer func() { _ = streamer.Close() }()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  rate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buf.Append(s)
	return buf, nil
}

// newVolume wraps s with a linear gain.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, vol)
	return v
}

func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(vol), false
}

func pow2(x float64) float64 { return math.Pow(2, x) }
