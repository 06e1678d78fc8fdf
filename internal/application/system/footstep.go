package system

import (
	"github.com/younwookim/scroller/internal/domain/entity"
	"github.com/younwookim/scroller/internal/infrastructure/config"
)

// FootstepSystem plays the grass cue when the player lands on or walks
// through decoration tiles, at most once per cooldown.
type FootstepSystem struct {
	config *config.FootstepsConfig
	sounds SoundPlayer
	timer  int
}

// NewFootstepSystem creates a footstep system with an idle cooldown.
func NewFootstepSystem(cfg *config.FootstepsConfig, sounds SoundPlayer) *FootstepSystem {
	return &FootstepSystem{config: cfg, sounds: sounds}
}

// Tick counts the cooldown down, never below zero.
func (s *FootstepSystem) Tick() {
	if s.timer > 0 {
		s.timer--
	}
}

// Update checks a finished movement step and returns true if a cue played.
func (s *FootstepSystem) Update(step Step, body entity.Rect, decorative []entity.Rect) bool {
	if !step.Collisions.Bottom {
		return false
	}
	if step.AirTicks <= s.config.MinAirTicks && step.Movement.X == 0 {
		return false
	}
	if !body.IntersectsAny(decorative) || s.timer != 0 {
		return false
	}
	s.timer = s.config.CooldownTicks
	s.sounds.Play(SoundGrass)
	return true
}

// Cooldown returns the ticks left before another cue may play.
func (s *FootstepSystem) Cooldown() int { return s.timer }
