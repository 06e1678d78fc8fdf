package system

import (
	"github.com/younwookim/scroller/internal/domain/entity"
	"github.com/younwookim/scroller/internal/infrastructure/config"
)

// CameraSystem follows an anchor, keeping it at a fixed screen offset.
type CameraSystem struct {
	offset     entity.Vector
	lag        float64
	trueScroll entity.Vector
}

// NewCameraSystem keeps the anchor horizontally centred on a display of the
// given width and cfg.OffsetY pixels from the top.
func NewCameraSystem(cfg *config.CameraConfig, displayWidth int) *CameraSystem {
	lag := cfg.Lag
	if lag < 1 {
		lag = 1
	}
	return &CameraSystem{
		offset: entity.Vec(float64(displayWidth)/2, cfg.OffsetY),
		lag:    lag,
	}
}

// Follow moves the camera towards anchor and returns the integer scroll.
func (s *CameraSystem) Follow(anchor entity.Vector) entity.Vector {
	s.trueScroll.X += (anchor.X - s.trueScroll.X - s.offset.X) / s.lag
	s.trueScroll.Y += (anchor.Y - s.trueScroll.Y - s.offset.Y) / s.lag
	return s.Scroll()
}

// Scroll returns the truncated scroll used for drawing and chunk loading.
func (s *CameraSystem) Scroll() entity.Vector {
	return s.trueScroll.Truncate()
}

// TrueScroll returns the sub-pixel camera position.
func (s *CameraSystem) TrueScroll() entity.Vector { return s.trueScroll }
