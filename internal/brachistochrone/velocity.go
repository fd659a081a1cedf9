package brachistochrone

import "math"

// VelocityField is one stratum of the optical analogue of gravity: light in it
// travels at the speed a bead released at rest would have reached at that depth,
// v = sqrt(-2·g·depth).
type VelocityField struct {
	depth Real
	g     Real
	speed Real
}

// NewVelocityField builds the stratum at the given signed depth (<= 0, the release
// height is 0). A positive depth would put a negative number under the square root
// and is reported as a *DomainError.
func NewVelocityField(depth, g Real) (VelocityField, error) {
	if !isFinite(depth) {
		return VelocityField{}, &DomainError{Op: "sqrt", Value: depth, Msg: "depth is not finite"}
	}
	if !isFinite(g) || g <= 0 {
		return VelocityField{}, &DomainError{Op: "sqrt", Value: g, Msg: "g must be positive"}
	}
	arg := -2 * g * depth
	if depth > 0 || arg < 0 {
		return VelocityField{}, &DomainError{Op: "sqrt", Value: arg, Msg: "depth above the release height"}
	}
	return VelocityField{depth: depth, g: g, speed: math.Sqrt(arg)}, nil
}

func (f VelocityField) Depth() Real { return f.depth }
func (f VelocityField) G() Real     { return f.g }

// Speed returns the propagation speed in m/s.
func (f VelocityField) Speed() Real { return f.speed }
