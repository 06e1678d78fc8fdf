package entity

import "fmt"

// Vector is a 2D pair used for positions, displacements and scroll offsets.
// It is passed by value; Copy exists for call sites that want to be explicit.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Copy returns an independent copy of v.
func (v Vector) Copy() Vector {
	return v
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Truncate drops the fractional part of both components (toward zero).
func (v Vector) Truncate() Vector {
	return Vector{X: float64(int(v.X)), Y: float64(int(v.Y))}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
