package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/scroller/internal/application/system"
)

// ErrNoFrames is returned when saving an empty recording.
var ErrNoFrames = errors.New("no frames to save")

// Recorder is an IntentSource that records everything its inner source yields.
type Recorder struct {
	src  system.IntentSource
	data ReplayData
}

// NewRecorder starts recording src for a world generated from seed.
func NewRecorder(src system.IntentSource, seed uint64) *Recorder {
	return &Recorder{
		src: src,
		data: ReplayData{
			Version:   Version,
			ID:        uuid.NewString(),
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60 TPS
		},
	}
}

// Poll implements system.IntentSource.
func (r *Recorder) Poll() system.Intent {
	in := r.src.Poll()
	r.data.Frames = append(r.data.Frames, frameFromIntent(len(r.data.Frames), in))
	return in
}

// Save writes the recording as indented JSON.
func (r *Recorder) Save(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// SaveFile writes the recording to filename.
func (r *Recorder) SaveFile(filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return r.Save(file)
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording so far.
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on the current time.
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
