package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/scroller/internal/application/system"
)

// ErrUnsupportedVersion is returned for recordings of another format.
var ErrUnsupportedVersion = errors.New("unsupported replay version")

// Replayer is an IntentSource that plays a recording back. Once the frames
// run out it asks the game to quit.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Load decodes a recording.
func Load(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, data.Version)
	}
	return &data, nil
}

// LoadFile loads replay data from a file
func LoadFile(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Load(file)
}

// Poll implements system.IntentSource.
func (r *Replayer) Poll() system.Intent {
	if r.Done() {
		return system.Intent{Quit: true}
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Intent()
}

// Done reports whether every frame has been played.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() uint64 {
	return r.data.Seed
}

// ID returns the recording's identifier.
func (r *Replayer) ID() string {
	return r.data.ID
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
