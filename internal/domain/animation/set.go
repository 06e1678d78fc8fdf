// Package animation holds per-entity-type animation tables and the frame
// selection state machine driven by entities.
package animation

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// TagLoop marks a sequence that wraps around instead of clamping.
const TagLoop = "loop"

// ErrUnknownAnimation is returned when an (entity type, action) pair has no
// registered sequence.
var ErrUnknownAnimation = errors.New("unknown animation")

// FrameID names a single animation image, e.g. "player/run/1".
type FrameID string

// NewFrameID builds the frame ID for the index-th image of an action.
func NewFrameID(entityType, action string, index int) FrameID {
	return FrameID(entityType + "/" + action + "/" + strconv.Itoa(index))
}

// Sequence is an ordered list of frames shown one per tick, plus behaviour tags.
type Sequence struct {
	Frames []FrameID
	Tags   []string
}

// HasTag reports whether the sequence carries tag.
func (s Sequence) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Loops reports whether the sequence wraps around.
func (s Sequence) Loops() bool {
	return s.HasTag(TagLoop)
}

// Len returns the number of ticks in the sequence.
func (s Sequence) Len() int {
	return len(s.Frames)
}

// Set maps (entity type, action) to a sequence. It is filled once at startup
// and only read afterwards.
type Set struct {
	byType map[string]map[string]Sequence
}

// NewSet creates an empty animation set.
func NewSet() *Set {
	return &Set{byType: make(map[string]map[string]Sequence)}
}

// Add registers a sequence built from per-frame durations in ticks.
// Frame i is repeated durations[i] times.
func (s *Set) Add(entityType, action string, durations []int, tags []string) {
	var frames []FrameID
	for i, d := range durations {
		id := NewFrameID(entityType, action, i)
		for n := 0; n < d; n++ {
			frames = append(frames, id)
		}
	}
	actions, ok := s.byType[entityType]
	if !ok {
		actions = make(map[string]Sequence)
		s.byType[entityType] = actions
	}
	actions[action] = Sequence{Frames: frames, Tags: append([]string(nil), tags...)}
}

// Lookup returns the sequence for an entity type and action.
func (s *Set) Lookup(entityType, action string) (Sequence, error) {
	seq, ok := s.byType[entityType][action]
	if !ok {
		return Sequence{}, fmt.Errorf("%w: %s/%s", ErrUnknownAnimation, entityType, action)
	}
	return seq, nil
}

// Has reports whether the pair is registered.
func (s *Set) Has(entityType, action string) bool {
	_, ok := s.byType[entityType][action]
	return ok
}

// FrameIDs returns every distinct frame referenced by the set, sorted.
// Used to preload images so a missing asset fails at startup.
func (s *Set) FrameIDs() []FrameID {
	seen := make(map[FrameID]struct{})
	for _, actions := range s.byType {
		for _, seq := range actions {
			for _, f := range seq.Frames {
				seen[f] = struct{}{}
			}
		}
	}
	ids := make([]FrameID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
