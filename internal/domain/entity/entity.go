package entity

import (
	"math"

	"github.com/younwookim/scroller/internal/domain/animation"
)

// Entity is a logical character: a physical body plus how to draw it.
type Entity struct {
	Type string // selects the animation table

	body *Body
	anim *animation.Player

	Flip     bool
	Image    string // static image key used when no animation is active
	Offset   Vector
	Rotation float64 // degrees, counter-clockwise

	alpha    uint8
	hasAlpha bool
}

// SpriteView is everything a renderer needs to draw an entity this tick.
type SpriteView struct {
	Frame    animation.FrameID // empty when drawing the static image
	Image    string
	Flip     bool
	Rotation float64
	Alpha    uint8
	HasAlpha bool
	// X, Y is the screen-space top-left of the unrotated image.
	X, Y int
}

// New creates an entity with an idle action already selected.
func New(x, y float64, w, h int, entityType string, set *animation.Set) (*Entity, error) {
	e := &Entity{
		Type: entityType,
		body: NewBody(x, y, w, h),
		anim: animation.NewPlayer(set, entityType),
	}
	if err := e.anim.SetAction("idle", false); err != nil {
		return nil, err
	}
	return e, nil
}

// Body exposes the physical body.
func (e *Entity) Body() *Body { return e.body }

// Animation exposes the animation state.
func (e *Entity) Animation() *animation.Player { return e.anim }

// Pos returns the sub-pixel position.
func (e *Entity) Pos() Vector {
	return Vector{X: e.body.X, Y: e.body.Y}
}

// SetPos teleports the entity.
func (e *Entity) SetPos(x, y float64) {
	e.body.SetPos(x, y)
}

// Move resolves a displacement against obstacles.
func (e *Entity) Move(d Vector, obstacles []Rect) Collisions {
	return e.body.Move(d, obstacles)
}

// Rect returns the collision rectangle.
func (e *Entity) Rect() Rect {
	return e.body.Rect()
}

// SetFlip mirrors the sprite horizontally when true.
func (e *Entity) SetFlip(flip bool) { e.Flip = flip }

// SetAction switches animation action (see animation.Player.SetAction).
func (e *Entity) SetAction(action string, force bool) error {
	return e.anim.SetAction(action, force)
}

// Advance moves the animation by delta frames.
func (e *Entity) Advance(delta int) { e.anim.Advance(delta) }

// SetImage sets the static fallback image key.
func (e *Entity) SetImage(key string) { e.Image = key }

// SetOffset shifts where the sprite is drawn relative to the body.
func (e *Entity) SetOffset(o Vector) { e.Offset = o }

// SetRotation sets the draw rotation in degrees.
func (e *Entity) SetRotation(deg float64) { e.Rotation = deg }

// SetAlpha sets a draw opacity.
func (e *Entity) SetAlpha(a uint8) {
	e.alpha = a
	e.hasAlpha = true
}

// ClearAlpha draws the sprite fully opaque again.
func (e *Entity) ClearAlpha() { e.hasAlpha = false }

// Center returns the integer centre of the body.
func (e *Entity) Center() Vector {
	r := e.body.Rect()
	return Vector{X: float64(r.X + r.W/2), Y: float64(r.Y + r.H/2)}
}

// AngleTo returns the angle in radians from this entity's centre to other's.
func (e *Entity) AngleTo(other *Entity) float64 {
	a, b := e.Center(), other.Center()
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Sprite returns what to draw relative to scroll, or false if the entity has
// neither an active animation nor a static image.
func (e *Entity) Sprite(scroll Vector) (SpriteView, bool) {
	v := SpriteView{
		Flip:     e.Flip,
		Rotation: e.Rotation,
		Alpha:    e.alpha,
		HasAlpha: e.hasAlpha,
		X:        int(e.body.X) - int(scroll.X) + int(e.Offset.X),
		Y:        int(e.body.Y) - int(scroll.Y) + int(e.Offset.Y),
	}
	if f, ok := e.anim.Frame(); ok {
		v.Frame = f
		return v, true
	}
	if e.Image != "" {
		v.Image = e.Image
		return v, true
	}
	return SpriteView{}, false
}
