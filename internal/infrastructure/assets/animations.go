// Package assets loads animation descriptions, images and particle frames.
package assets

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/younwookim/scroller/internal/domain/animation"
)

// ErrMalformedAnimationRecord is returned for a line of the animation
// description that cannot be parsed.
var ErrMalformedAnimationRecord = errors.New("malformed animation record")

// AnimationRecord is one line of the animation description:
//
//	type/action d1;d2;... tag1;tag2
type AnimationRecord struct {
	Line      int
	Type      string
	Action    string
	Durations []int
	Tags      []string
}

// ParseAnimations reads every record from r. Blank lines are skipped.
func ParseAnimations(r io.Reader) ([]AnimationRecord, error) {
	var records []AnimationRecord
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedAnimationRecord, line, err)
		}
		rec.Line = line
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read animations: %w", err)
	}
	return records, nil
}

func parseRecord(text string) (AnimationRecord, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return AnimationRecord{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}

	entityType, action, ok := strings.Cut(fields[0], "/")
	if !ok || entityType == "" || action == "" || strings.Contains(action, "/") {
		return AnimationRecord{}, fmt.Errorf("bad path %q", fields[0])
	}

	var durations []int
	for _, s := range strings.Split(fields[1], ";") {
		d, err := strconv.Atoi(s)
		if err != nil || d <= 0 {
			return AnimationRecord{}, fmt.Errorf("bad duration %q", s)
		}
		durations = append(durations, d)
	}

	var tags []string
	for _, tag := range strings.Split(fields[2], ";") {
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	return AnimationRecord{
		Type:      entityType,
		Action:    action,
		Durations: durations,
		Tags:      tags,
	}, nil
}

// BuildAnimations registers every record in a new Set.
func BuildAnimations(records []AnimationRecord) *animation.Set {
	set := animation.NewSet()
	for _, r := range records {
		set.Add(r.Type, r.Action, r.Durations, r.Tags)
	}
	return set
}

// LoadAnimations parses data and builds the Set.
func LoadAnimations(data []byte) (*animation.Set, error) {
	records, err := ParseAnimations(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return BuildAnimations(records), nil
}

// FramePath maps a frame ID type/action/i to entities/type/action/action_i.png.
func FramePath(id animation.FrameID) string {
	parts := strings.Split(string(id), "/")
	if len(parts) != 3 {
		return "entities/" + string(id) + ".png"
	}
	return fmt.Sprintf("entities/%s/%s/%s_%s.png", parts[0], parts[1], parts[1], parts[2])
}
