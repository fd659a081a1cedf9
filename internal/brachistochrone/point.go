package brachistochrone

import "fmt"

// Point2 is a position in the vertical plane, in meters. Y grows upwards,
// so every point of a trace below the release height has Y < 0.
type Point2 struct {
	X, Y Real
}

// Pt returns the point (x, y).
func Pt(x, y Real) Point2 { return Point2{X: x, Y: y} }

// Add lets you translate a Point2 by a Vector2.
func (p Point2) Add(v Vector2) Point2 {
	return Point2{p.X + v.X, p.Y + v.Y}
}

func (p Point2) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Sub returns the displacement from o to p.
func (p Point2) Sub(o Point2) Vector2 {
	return Vector2{p.X - o.X, p.Y - o.Y}
}
