package entity

// Sides flags which edges of a moving rectangle touched an obstacle.
type Sides struct {
	Left   bool
	Right  bool
	Top    bool
	Bottom bool
}

// Any returns true if at least one side collided.
func (s Sides) Any() bool {
	return s.Left || s.Right || s.Top || s.Bottom
}

// Hit records one obstacle met during a move and the sides it blocked.
type Hit struct {
	Obstacle Rect
	Sides    Sides
}

// Collisions is the result of Body.Move.
type Collisions struct {
	Sides
	Hits []Hit
}

// Body is an axis-aligned rectangle with sub-pixel position.
// X, Y is the source of truth; the collision rect origin is always their
// truncation and is recomputed after every move.
type Body struct {
	X, Y float64
	W, H int

	rect Rect
}

// NewBody creates a body at the given position.
func NewBody(x, y float64, w, h int) *Body {
	b := &Body{X: x, Y: y, W: w, H: h}
	b.rect = Rect{X: int(x), Y: int(y), W: w, H: h}
	return b
}

// Rect returns the integer collision rectangle.
func (b *Body) Rect() Rect {
	return b.rect
}

// SetPos teleports the body.
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
	b.rect.X = int(x)
	b.rect.Y = int(y)
}

// Move applies displacement against the static obstacles, X axis first and
// then Y. Each axis is tested against the rectangle as already resolved by
// the previous axis, so a diagonal move into a corner slides along the wall
// instead of passing through it.
func (b *Body) Move(d Vector, obstacles []Rect) Collisions {
	var c Collisions

	b.X += d.X
	b.rect.X = int(b.X)
	for _, o := range b.rect.Colliding(obstacles) {
		var s Sides
		if d.X > 0 {
			b.rect.SetRight(o.X)
			c.Right = true
			s.Right = true
		} else if d.X < 0 {
			b.rect.X = o.Right()
			c.Left = true
			s.Left = true
		}
		c.Hits = append(c.Hits, Hit{Obstacle: o, Sides: s})
		b.X = float64(b.rect.X)
	}

	b.Y += d.Y
	b.rect.Y = int(b.Y)
	for _, o := range b.rect.Colliding(obstacles) {
		var s Sides
		if d.Y > 0 {
			b.rect.SetBottom(o.Y)
			c.Bottom = true
			s.Bottom = true
		} else if d.Y < 0 {
			b.rect.Y = o.Bottom()
			c.Top = true
			s.Top = true
		}
		c.Hits = append(c.Hits, Hit{Obstacle: o, Sides: s})
		b.Y = float64(b.rect.Y)
	}

	return c
}
