package brachistochrone

import "math"

// Vector2 represents a displacement (not a position) in the plane.
type Vector2 struct {
	X, Y Real
}

func (a Vector2) Add(b Vector2) Vector2 { return Vector2{a.X + b.X, a.Y + b.Y} }
func (v Vector2) Mul(s Real) Vector2    { return Vector2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of the vector.
func (v Vector2) Len() Real { return math.Hypot(v.X, v.Y) }
