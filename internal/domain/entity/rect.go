package entity

// Rect is an integer axis-aligned rectangle in world pixels.
// X, Y is the top-left corner; W, H are non-negative.
type Rect struct {
	X, Y int
	W, H int
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// SetRight moves the rectangle so its right edge is at x.
func (r *Rect) SetRight(x int) { r.X = x - r.W }

// SetBottom moves the rectangle so its bottom edge is at y.
func (r *Rect) SetBottom(y int) { r.Y = y - r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports whether r and o overlap.
// Touching edges do not count and empty rectangles never intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// IntersectsAny reports whether r overlaps at least one of rects.
func (r Rect) IntersectsAny(rects []Rect) bool {
	for _, o := range rects {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

// Colliding returns every rectangle in rects that overlaps r, in input order.
func (r Rect) Colliding(rects []Rect) []Rect {
	var hits []Rect
	for _, o := range rects {
		if r.Intersects(o) {
			hits = append(hits, o)
		}
	}
	return hits
}
