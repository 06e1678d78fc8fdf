package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSet() *Set {
	set := NewSet()
	set.Add("player", "idle", []int{1, 1, 1}, []string{TagLoop})
	set.Add("player", "land", []int{1, 1, 1}, nil)
	set.Add("player", "run", []int{2, 3}, []string{TagLoop, "footsteps"})
	return set
}

func TestSet_Add_ExpandsDurations(t *testing.T) {
	set := createTestSet()

	seq, err := set.Lookup("player", "run")
	require.NoError(t, err)

	assert.Equal(t, []FrameID{
		"player/run/0", "player/run/0",
		"player/run/1", "player/run/1", "player/run/1",
	}, seq.Frames)
	assert.True(t, seq.Loops())
	assert.True(t, seq.HasTag("footsteps"))
	assert.Equal(t, 5, seq.Len())
}

func TestSet_Lookup_Unknown(t *testing.T) {
	set := createTestSet()

	_, err := set.Lookup("player", "swim")
	assert.ErrorIs(t, err, ErrUnknownAnimation)
	assert.Contains(t, err.Error(), "player/swim")

	_, err = set.Lookup("slime", "idle")
	assert.ErrorIs(t, err, ErrUnknownAnimation)
	assert.False(t, set.Has("slime", "idle"))
	assert.True(t, set.Has("player", "idle"))
}

func TestSet_FrameIDs(t *testing.T) {
	set := createTestSet()

	ids := set.FrameIDs()

	assert.Len(t, ids, 8)
	assert.Equal(t, FrameID("player/idle/0"), ids[0])
}

func TestPlayer_Advance(t *testing.T) {
	tests := []struct {
		name   string
		action string
		start  int
		delta  int
		want   int
	}{
		{"non-looping clamps at end", "land", 2, 1, 2},
		{"looping wraps to start", "idle", 2, 1, 0},
		{"non-looping clamps below zero", "land", 0, -1, 0},
		{"looping wraps below zero", "idle", 0, -1, 2},
		{"looping wraps several times", "idle", 0, 7, 1},
		{"looping wraps several times backwards", "idle", 0, -7, 2},
		{"non-looping large overflow", "land", 1, 50, 2},
		{"in range", "idle", 0, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(createTestSet(), "player")
			require.NoError(t, p.SetAction(tt.action, false))
			p.SetFrame(tt.start)

			p.Advance(tt.delta)

			assert.Equal(t, tt.want, p.FrameIndex())
		})
	}
}

func TestPlayer_SetAction(t *testing.T) {
	p := NewPlayer(createTestSet(), "player")
	require.NoError(t, p.SetAction("idle", false))
	p.Advance(2)
	require.Equal(t, 2, p.FrameIndex())

	// Same action without force keeps the current frame.
	require.NoError(t, p.SetAction("idle", false))
	assert.Equal(t, 2, p.FrameIndex())

	// Forcing restarts it.
	require.NoError(t, p.SetAction("idle", true))
	assert.Equal(t, 0, p.FrameIndex())
	assert.Equal(t, 0, p.Ticks())

	// Switching resets the frame and replaces the tags.
	p.Advance(1)
	require.NoError(t, p.SetAction("run", false))
	assert.Equal(t, "run", p.Action())
	assert.Equal(t, 0, p.FrameIndex())
	assert.Equal(t, []string{TagLoop, "footsteps"}, p.Tags())

	frame, ok := p.Frame()
	require.True(t, ok)
	assert.Equal(t, FrameID("player/run/0"), frame)
}

func TestPlayer_SetAction_Unknown(t *testing.T) {
	p := NewPlayer(createTestSet(), "player")
	require.NoError(t, p.SetAction("idle", false))

	err := p.SetAction("swim", false)

	assert.ErrorIs(t, err, ErrUnknownAnimation)
	assert.Equal(t, "idle", p.Action(), "failed switch keeps the previous action")
}

func TestPlayer_Clear(t *testing.T) {
	p := NewPlayer(createTestSet(), "player")
	require.NoError(t, p.SetAction("idle", false))

	p.Clear()
	p.Advance(5)

	_, ok := p.Frame()
	assert.False(t, ok)
	assert.Nil(t, p.Tags())
}
