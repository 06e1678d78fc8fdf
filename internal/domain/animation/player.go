package animation

// Player selects the current frame of one entity.
// States are named actions; SetAction switches between them.
type Player struct {
	set        *Set
	entityType string

	action string
	seq    *Sequence
	frame  int
	ticks  int
}

// NewPlayer creates a player bound to an entity type. No action is active
// until SetAction is called.
func NewPlayer(set *Set, entityType string) *Player {
	return &Player{set: set, entityType: entityType}
}

// SetAction switches to the named action and restarts it from frame 0.
// It is a no-op when the action is already active unless force is set.
func (p *Player) SetAction(action string, force bool) error {
	if p.action == action && p.seq != nil && !force {
		return nil
	}
	seq, err := p.set.Lookup(p.entityType, action)
	if err != nil {
		return err
	}
	p.action = action
	p.seq = &seq
	p.frame = 0
	p.ticks = 0
	return nil
}

// Advance moves the frame index by delta. Out-of-range indices wrap for
// looping sequences and clamp to the nearest end otherwise.
func (p *Player) Advance(delta int) {
	p.frame += delta
	p.ticks += delta
	if p.seq == nil {
		return
	}
	n := p.seq.Len()
	if n == 0 {
		p.frame = 0
		return
	}
	loop := p.seq.Loops()
	for p.frame < 0 {
		if loop {
			p.frame += n
		} else {
			p.frame = 0
		}
	}
	for p.frame >= n {
		if loop {
			p.frame -= n
		} else {
			p.frame = n - 1
		}
	}
}

// SetFrame jumps to an index without normalising it; the next Advance does.
func (p *Player) SetFrame(frame int) {
	p.frame = frame
}

// Clear drops the active sequence so the owner falls back to a static image.
func (p *Player) Clear() {
	p.seq = nil
	p.action = ""
}

// Frame returns the current frame, or false when no non-empty sequence is active.
func (p *Player) Frame() (FrameID, bool) {
	if p.seq == nil || p.seq.Len() == 0 || p.frame < 0 || p.frame >= p.seq.Len() {
		return "", false
	}
	return p.seq.Frames[p.frame], true
}

// Action returns the current action name.
func (p *Player) Action() string { return p.action }

// FrameIndex returns the current frame index.
func (p *Player) FrameIndex() int { return p.frame }

// Ticks returns the frames advanced since the action started.
func (p *Player) Ticks() int { return p.ticks }

// Tags returns the behaviour tags of the active sequence.
func (p *Player) Tags() []string {
	if p.seq == nil {
		return nil
	}
	return p.seq.Tags
}
