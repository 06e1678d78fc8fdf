package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/scroller/internal/domain/animation"
)

func TestParseAnimations(t *testing.T) {
	input := "player/idle 7;7;40 loop\n\nplayer/run 7;7 loop;footsteps\nplayer/land 3;3 none\n"

	records, err := ParseAnimations(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, AnimationRecord{
		Line:      1,
		Type:      "player",
		Action:    "idle",
		Durations: []int{7, 7, 40},
		Tags:      []string{"loop"},
	}, records[0])
	assert.Equal(t, 3, records[1].Line, "blank lines still count")
	assert.Equal(t, []string{"loop", "footsteps"}, records[1].Tags)
	assert.Equal(t, []string{"none"}, records[2].Tags)
}

func TestParseAnimations_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"missing tags", "player/idle 7;7", "line 1"},
		{"too many fields", "player/idle 7 loop extra", "line 1"},
		{"no action", "player 7 loop", "line 1"},
		{"nested path", "player/idle/x 7 loop", "line 1"},
		{"non-numeric duration", "player/idle 7;x loop", "line 1"},
		{"zero duration", "player/idle 7;0 loop", "line 1"},
		{"negative duration", "player/idle -1 loop", "line 1"},
		{"empty duration", "player/idle 7;;7 loop", "line 1"},
		{"later line", "player/idle 7 loop\n\nbroken", "line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnimations(strings.NewReader(tt.input))

			require.ErrorIs(t, err, ErrMalformedAnimationRecord)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestLoadAnimations(t *testing.T) {
	set, err := LoadAnimations([]byte("player/idle 2;1 loop\nplayer/run 1;1 loop\n"))
	require.NoError(t, err)

	seq, err := set.Lookup("player", "idle")
	require.NoError(t, err)
	assert.Equal(t, []animation.FrameID{"player/idle/0", "player/idle/0", "player/idle/1"}, seq.Frames)
	assert.True(t, set.Has("player", "run"))
}

func TestFramePath(t *testing.T) {
	assert.Equal(t, "entities/player/run/run_1.png", FramePath("player/run/1"))
	assert.Equal(t, "entities/odd.png", FramePath("odd"))
}
