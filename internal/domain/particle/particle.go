// Package particle simulates short-lived decaying visual effects.
package particle

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/younwookim/scroller/internal/domain/entity"
)

// ErrUnknownParticleType is returned when a particle references a type with
// no registered frames.
var ErrUnknownParticleType = errors.New("unknown particle type")

// Catalog reports how many frames each particle type has.
type Catalog interface {
	FrameCount(particleType string) (int, bool)
}

// Counts is a fixed Catalog.
type Counts map[string]int

// FrameCount implements Catalog.
func (c Counts) FrameCount(particleType string) (int, bool) {
	n, ok := c[particleType]
	return n, ok && n > 0
}

// Particle advances through its type's frames at DecayRate frames per tick
// and dies once it runs past the last one.
type Particle struct {
	Pos       entity.Vector
	Type      string
	Motion    entity.Vector
	DecayRate float64
	Frame     float64
	// Color, when set, replaces the key colour of every frame.
	Color *color.RGBA

	frames int
}

// New creates a particle of a registered type.
func New(catalog Catalog, pos entity.Vector, particleType string, motion entity.Vector, decay, startFrame float64, c *color.RGBA) (*Particle, error) {
	n, ok := catalog.FrameCount(particleType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParticleType, particleType)
	}
	return &Particle{
		Pos:       pos,
		Type:      particleType,
		Motion:    motion,
		DecayRate: decay,
		Frame:     startFrame,
		Color:     c,
		frames:    n,
	}, nil
}

// Update advances one tick and returns false once the particle has expired.
func (p *Particle) Update() bool {
	p.Frame += p.DecayRate
	alive := p.Frame <= float64(p.frames-1)
	p.Pos = p.Pos.Add(p.Motion)
	return alive
}

// FrameIndex returns the frame to draw, clamped to the last one.
func (p *Particle) FrameIndex() int {
	f := int(p.Frame)
	if f > p.frames-1 {
		f = p.frames - 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// System owns the live particles.
type System struct {
	catalog   Catalog
	particles []*Particle
}

// NewSystem creates an empty particle system.
func NewSystem(catalog Catalog) *System {
	return &System{catalog: catalog}
}

// Spawn adds a particle; see New.
func (s *System) Spawn(pos entity.Vector, particleType string, motion entity.Vector, decay, startFrame float64, c *color.RGBA) error {
	p, err := New(s.catalog, pos, particleType, motion, decay, startFrame, c)
	if err != nil {
		return err
	}
	s.particles = append(s.particles, p)
	return nil
}

// Update advances every particle and drops the expired ones.
func (s *System) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		if p.Update() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = alive
}

// Particles returns the live particles in spawn order.
func (s *System) Particles() []*Particle { return s.particles }

// Len returns the number of live particles.
func (s *System) Len() int { return len(s.particles) }
