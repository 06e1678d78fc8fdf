// Package parallax positions background decoration that scrolls slower than
// the world, anchored on the camera target.
package parallax

import (
	"image/color"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/younwookim/scroller/internal/domain/entity"
)

// Object is a background rectangle with its own parallax factor.
// Parallax is in (0, 1]: 1 moves with the world, values near 0 barely move.
type Object struct {
	Rect     entity.Rect
	Parallax float64
	SpawnX   int
	SpawnY   int
}

// NewObject creates an object and remembers its spawn position.
func NewObject(parallax float64, r entity.Rect) *Object {
	return &Object{Rect: r, Parallax: parallax, SpawnX: r.X, SpawnY: r.Y}
}

// Move shifts the object; positive dy moves it up.
func (o *Object) Move(dx, dy int) {
	o.Rect.X += dx
	o.Rect.Y -= dy
}

// ParallaxMove places the object at a displacement scaled by its parallax.
func (o *Object) ParallaxMove(dx, dy float64, fromSpawn bool) {
	o.PlaceAt(dx*o.Parallax, dy*o.Parallax, fromSpawn)
}

// PlaceAt positions the object absolutely or relative to its spawn point.
func (o *Object) PlaceAt(x, y float64, fromSpawn bool) {
	if fromSpawn {
		o.Rect.X = o.SpawnX + int(x)
		o.Rect.Y = o.SpawnY + int(y)
		return
	}
	o.Rect.X = int(x)
	o.Rect.Y = int(y)
}

// Project returns the screen rectangle of o for a camera following anchor
// and scrolled to scroll:
//
//	pos  = anchor - scroll - (anchor - objPos) * parallax
//	size = objSize * parallax
//
// Distant objects therefore appear to orbit the anchor, not the viewport corner.
func Project(o *Object, anchor, scroll entity.Vector) entity.Rect {
	p := o.Parallax
	x := (anchor.X - scroll.X) - (anchor.X-float64(o.Rect.X))*p
	y := (anchor.Y - scroll.Y) - (anchor.Y-float64(o.Rect.Y))*p
	return entity.Rect{
		X: int(x),
		Y: int(y),
		W: int(float64(o.Rect.W) * p),
		H: int(float64(o.Rect.H) * p),
	}
}

// IsViewable reports whether a projected rectangle overlaps the viewport
// horizontally.
func IsViewable(screen entity.Rect, viewportWidth int) bool {
	return screen.Right() > 0 && screen.X < viewportWidth
}

// Tint returns the flat colour used to draw o: nearer objects are redder,
// distant ones greener, all fully blue.
func Tint(o *Object) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(o.Parallax * 255)),
		G: uint8(math.Round((1 - o.Parallax) * 255)),
		B: 255,
		A: 255,
	}
}

// FieldConfig controls the generated background field.
type FieldConfig struct {
	MinPercent int // smallest parallax, in percent
	MaxPercent int // largest parallax, in percent
	Width      int
	Height     int
	BaseY      int
}

// DefaultFieldConfig matches a 300px display: 95 pillars from 6% to 100%.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{MinPercent: 6, MaxPercent: 100, Width: 40, Height: 100, BaseY: 66}
}

// NewField spawns one object per parallax percentage with a random
// horizontal offset, scaled so it lands inside the display at spawn.
// Objects are ordered far to near, the order they are drawn in.
func NewField(cfg FieldConfig, displayWidth int, rng *rand.Rand) []*Object {
	baseX := -int(math.RoundToEven(float64(cfg.Width) / 2))
	lo := -displayWidth / 2
	hi := (displayWidth-cfg.Width)/2 + cfg.Width

	var objs []*Object
	for pct := cfg.MinPercent; pct <= cfg.MaxPercent; pct++ {
		if pct <= 0 {
			continue
		}
		offset := lo + rng.IntN(hi-lo+1)
		x := baseX + int(math.RoundToEven(float64(offset)*100/float64(pct)))
		objs = append(objs, NewObject(float64(pct)/100, entity.R(x, cfg.BaseY, cfg.Width, cfg.Height)))
	}
	sort.SliceStable(objs, func(i, j int) bool { return objs[i].Parallax < objs[j].Parallax })
	return objs
}
