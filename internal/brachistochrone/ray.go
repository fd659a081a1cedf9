package brachistochrone

import (
	"fmt"
	"math"
)

// Ray is the direction of the light ray inside the current stratum.
//
// The ray is stored as its vertical step (the stratum thickness) and its angle above
// the horizontal; the horizontal run is always derived from those two, so the angle
// seen by callers and the geometry used for advancing can never drift apart.
// Reflected reverses the vertical direction: a fresh ray travels downwards.
type Ray struct {
	step      Real
	angle     Real
	reflected bool
}

func checkAngle(step, angle Real) error {
	if !isFinite(angle) || angle <= 0 || angle >= math.Pi/2 {
		return &GeometryError{Step: step, Angle: angle, Msg: "angle must be in (0, π/2)"}
	}
	return nil
}

// NewRay constructs a downward ray crossing a stratum of thickness step at the given
// angle (radians, strictly inside (0, π/2)).
func NewRay(step, angle Real) (Ray, error) {
	if !isFinite(step) || step < 0 {
		return Ray{}, &GeometryError{Step: step, Angle: angle, Msg: "step must be >= 0"}
	}
	if err := checkAngle(step, angle); err != nil {
		return Ray{}, err
	}
	return Ray{step: step, angle: angle}, nil
}

func (r Ray) Step() Real      { return r.step }
func (r Ray) Angle() Real     { return r.angle }
func (r Ray) Reflected() bool { return r.reflected }

// Horizontal is the horizontal distance covered while crossing one stratum.
func (r Ray) Horizontal() Real { return r.step / math.Tan(r.angle) }

// Incidence is the angle between the ray and the stratum normal.
func (r Ray) Incidence() Real { return math.Pi/2 - r.angle }

// SignedStep is the vertical magnitude with the reflection applied:
// positive while the ray goes down, negative once it goes back up.
func (r Ray) SignedStep() Real {
	if r.reflected {
		return -r.step
	}
	return r.step
}

// Displacement is the move across one stratum, Y pointing up.
func (r Ray) Displacement() Vector2 {
	return Vector2{r.Horizontal(), -r.SignedStep()}
}

// SetAngle changes the direction. An invalid angle leaves the ray untouched.
func (r *Ray) SetAngle(angle Real) error {
	nr, err := r.WithAngle(angle)
	if err != nil {
		return err
	}
	*r = nr
	return nil
}

// WithAngle returns a copy of the ray with a new angle.
func (r Ray) WithAngle(angle Real) (Ray, error) {
	if err := checkAngle(r.step, angle); err != nil {
		return r, err
	}
	r.angle = angle
	return r, nil
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray{step=%.3g angle=%.6g reflected=%v}", r.step, r.angle, r.reflected)
}
