package system

import (
	"github.com/younwookim/scroller/internal/domain/entity"
)

// Step is the outcome of moving the player for one tick.
type Step struct {
	Movement   entity.Vector
	Collisions entity.Collisions
	// AirTicks is the airborne count before this step's collisions applied.
	AirTicks int
}

// Landed reports a bottom collision after at least minAir airborne ticks.
func (s Step) Landed(minAir int) bool {
	return s.Collisions.Bottom && s.AirTicks >= minAir
}

// MovementSystem moves the player with the Intent & Apply model: the
// controller decides the displacement, the body resolves it against tiles.
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update moves e by the controller's displacement against the solid tiles.
func (s *MovementSystem) Update(ctrl *Controller, e *entity.Entity, solid []entity.Rect) Step {
	d := ctrl.Displacement()
	step := Step{Movement: d, AirTicks: ctrl.AirTicks}
	step.Collisions = e.Move(d, solid)
	ctrl.Land(step.Collisions)
	return step
}
