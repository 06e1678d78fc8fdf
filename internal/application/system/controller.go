package system

import (
	"github.com/younwookim/scroller/internal/domain/entity"
	"github.com/younwookim/scroller/internal/infrastructure/config"
)

// Controller holds the player's control state between ticks.
type Controller struct {
	config *config.PlayerConfig

	Left     bool
	Right    bool
	Momentum float64 // vertical, positive is down
	AirTicks int     // ticks since the last bottom collision

	// OnJump is called when a jump starts.
	OnJump func()
}

// NewController creates a controller at rest.
func NewController(cfg *config.PlayerConfig) *Controller {
	return &Controller{config: cfg}
}

// Displacement returns this tick's movement and applies gravity to the
// momentum for the next one.
func (c *Controller) Displacement() entity.Vector {
	var d entity.Vector
	if c.Right {
		d.X += c.config.RunSpeed
	}
	if c.Left {
		d.X -= c.config.RunSpeed
	}
	d.Y = c.Momentum

	c.Momentum += c.config.Gravity
	if c.Momentum > c.config.MaxFall {
		c.Momentum = c.config.MaxFall
	}
	return d
}

// Land updates the airborne state from a movement's collisions.
func (c *Controller) Land(col entity.Collisions) {
	if col.Bottom {
		c.AirTicks = 0
		c.Momentum = 0
		return
	}
	c.AirTicks++
}

// Apply takes an intent into effect for the next tick.
func (c *Controller) Apply(in Intent) {
	c.Left = in.Left
	c.Right = in.Right

	if in.Jump && c.AirTicks < c.config.MaxJumpAirTicks {
		c.Momentum = c.config.JumpImpulse
		if c.OnJump != nil {
			c.OnJump()
		}
	}
	if in.Down && c.Momentum < 0 {
		c.Momentum = 0
	}
	if in.JumpRelease && c.Momentum < 0 {
		c.Momentum = 0
	}
}
