package replay

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/scroller/internal/application/system"
)

func scripted(intents ...system.Intent) system.IntentSource {
	i := 0
	return system.IntentFunc(func() system.Intent {
		if i >= len(intents) {
			return system.Intent{}
		}
		in := intents[i]
		i++
		return in
	})
}

func TestFrameInput_Intent(t *testing.T) {
	in := system.Intent{
		Left:        true,
		Right:       true,
		Jump:        true,
		JumpRelease: true,
		Down:        true,
		FadeMusic:   true,
		Pause:       true,
		Quit:        true,
	}

	fi := frameFromIntent(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Intent())
}

func TestRecorder_PassesThroughAndRecords(t *testing.T) {
	rec := NewRecorder(scripted(
		system.Intent{Right: true},
		system.Intent{Right: true, Jump: true},
		system.Intent{JumpRelease: true},
	), 42)

	assert.Equal(t, system.Intent{Right: true}, rec.Poll())
	assert.Equal(t, system.Intent{Right: true, Jump: true}, rec.Poll())
	rec.Poll()

	data := rec.Data()
	require.Len(t, data.Frames, 3)
	assert.Equal(t, 3, rec.FrameCount())
	assert.Equal(t, uint64(42), data.Seed)
	assert.Equal(t, Version, data.Version)
	_, err := uuid.Parse(data.ID)
	assert.NoError(t, err)
	for i, f := range data.Frames {
		assert.Equal(t, i, f.F)
	}
	assert.True(t, data.Frames[1].J)
	assert.True(t, data.Frames[2].JR)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(scripted(), 1)

	err := rec.Save(&bytes.Buffer{})

	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestRecordThenReplay(t *testing.T) {
	want := []system.Intent{
		{Left: true},
		{Left: true, Jump: true},
		{Down: true},
		{FadeMusic: true},
		{Pause: true},
	}
	rec := NewRecorder(scripted(want...), 1<<63+5)
	for range want {
		rec.Poll()
	}

	var buf bytes.Buffer
	require.NoError(t, rec.Save(&buf))
	data, err := Load(&buf)
	require.NoError(t, err)

	r := NewReplayer(*data)
	assert.Equal(t, uint64(1<<63+5), r.Seed(), "seed survives JSON without precision loss")
	assert.Equal(t, rec.Data().ID, r.ID())
	assert.Equal(t, len(want), r.TotalFrames())
	for i, in := range want {
		assert.Equal(t, in, r.Poll(), "frame %d", i)
	}
	assert.True(t, r.Done())
	assert.Equal(t, system.Intent{Quit: true}, r.Poll(), "exhausted replay quits")
}

func TestRecorder_SaveFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "run.json")
	rec := NewRecorder(scripted(system.Intent{Right: true}), 9)
	rec.Poll()

	require.NoError(t, rec.SaveFile(name))

	data, err := LoadFile(name)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), data.Seed)
	assert.True(t, data.Frames[0].R)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
	}{
		{"not json", "{", nil},
		{"old version", `{"version":"1.0","frames":[]}`, ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReplayer_CurrentFrameAndReset(t *testing.T) {
	r := NewReplayer(ReplayData{Frames: []FrameInput{{F: 0, L: true}, {F: 1}}})

	assert.Equal(t, 0, r.CurrentFrame())
	r.Poll()
	r.Poll()
	assert.Equal(t, 2, r.CurrentFrame())
	assert.True(t, r.Done())

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	assert.True(t, r.Poll().Left)
}
