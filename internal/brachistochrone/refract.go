package brachistochrone

import "math"

// Propagate carries the ray across the interface from f1 into f2 using Snell's law,
// sin(a1)/v1 = sin(a2)/v2, and mutates it in place.
//
// When the deeper stratum is faster and no refracted angle exists the ray is totally
// internally reflected: its vertical direction flips and its angle is kept. Each
// such event toggles the reflection, so a ray can pass any number of turning points.
// Any other case without a legal asin argument is a *DomainError.
func Propagate(r *Ray, f1, f2 VelocityField) (Event, error) {
	v1, v2 := f1.Speed(), f2.Speed()
	if v1 == 0 {
		return EventNone, &DomainError{Op: "asin", Value: math.Inf(1), Msg: "incident stratum has zero speed"}
	}
	w := v2 / v1 * math.Sin(r.Incidence())
	if !isFinite(w) {
		return EventNone, &DomainError{Op: "asin", Value: w, Msg: "speed ratio is not finite"}
	}
	// magnitude first, then direction: a TIR needs a faster second medium
	if math.Abs(w) >= 1 && v2 > v1 {
		r.reflected = !r.reflected
		return EventReflect, nil
	}
	if math.Abs(w) >= 1 || w <= 0 {
		return EventNone, &DomainError{Op: "asin", Value: w, Msg: "no refracted direction"}
	}
	if err := r.SetAngle(math.Pi/2 - math.Asin(w)); err != nil {
		return EventNone, &DomainError{Op: "asin", Value: w, Msg: err.Error()}
	}
	return EventRefract, nil
}
