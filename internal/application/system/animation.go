package system

import (
	"github.com/younwookim/scroller/internal/domain/entity"
)

// Animation actions driven by movement.
const (
	ActionIdle = "idle"
	ActionRun  = "run"
)

// AnimationSystem picks the entity's action from its horizontal movement.
type AnimationSystem struct{}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Select sets the action and facing for a planned movement.
func (s *AnimationSystem) Select(e *entity.Entity, movement entity.Vector) error {
	switch {
	case movement.X > 0:
		e.SetFlip(false)
		return e.SetAction(ActionRun, false)
	case movement.X < 0:
		e.SetFlip(true)
		return e.SetAction(ActionRun, false)
	default:
		return e.SetAction(ActionIdle, false)
	}
}

// Advance moves the animation on by one tick.
func (s *AnimationSystem) Advance(e *entity.Entity) {
	e.Advance(1)
}
