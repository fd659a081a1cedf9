package brachistochrone

import (
	"fmt"
	"math"
)

type State uint8

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "terminated"
}

// StepResult is the outcome of one Next call: either a new point or the end of the trace.
type StepResult struct {
	Point      Point2
	Event      Event
	Terminated bool
}

// Tracer follows one ray through the strata below the release point (0, 0) and
// records the polyline it draws. A Tracer is not safe for concurrent use;
// independent tracers share nothing.
type Tracer struct {
	ray    Ray
	g      Real
	pos    Point2
	points []Point2
	state  State
	steps  int
	time   Real
	log    traceLogCache
	err    error
}

// NewTracer launches a ray at initAngle (radians above the horizontal, in (0, π/2))
// through strata stepHeight meters thick under gravity g. The first stratum is
// crossed immediately, so the path starts with the release point and one more point.
func NewTracer(initAngle, stepHeight, g Real) (*Tracer, error) {
	if !isFinite(stepHeight) || stepHeight <= 0 {
		return nil, &GeometryError{Step: stepHeight, Angle: initAngle, Msg: "step height must be > 0"}
	}
	if !isFinite(g) || g <= 0 {
		return nil, &DomainError{Op: "sqrt", Value: g, Msg: "g must be positive"}
	}
	ray, err := NewRay(stepHeight, initAngle)
	if err != nil {
		return nil, err
	}
	first, err := NewVelocityField(-stepHeight, g)
	if err != nil {
		return nil, err
	}
	t := &Tracer{ray: ray, g: g}
	t.pos = Point2{}.Add(ray.Displacement())
	t.points = []Point2{{}, t.pos}
	t.time = chordTime(t.pos.Sub(Point2{}).Len(), 0, first.Speed())
	DebugLog("Created tracer angle=%.6f step=%g g=%g first=%v", initAngle, stepHeight, g, t.pos)
	return t, nil
}

// NewDefaultTracer uses DefaultStepHeight and DefaultG.
func NewDefaultTracer(initAngle Real) (*Tracer, error) {
	return NewTracer(initAngle, DefaultStepHeight, DefaultG)
}

// Next crosses one more stratum.
//
// The trace ends when the next stratum would lie at or above the release height,
// where the speed vanishes and no stratum can be built; the result then has
// Terminated set and the path is left as is. A refraction without a legal angle is
// returned as an error and also terminates the tracer. Calls after termination
// are no-ops.
func (t *Tracer) Next() (StepResult, error) {
	if t.state == Terminated {
		return StepResult{Point: t.pos, Terminated: true}, nil
	}
	f1, err := NewVelocityField(t.pos.Y, t.g)
	if err != nil {
		return t.end(err), nil
	}
	f2, err := NewVelocityField(t.pos.Y-t.ray.SignedStep(), t.g)
	if err != nil || f2.Speed() == 0 {
		return t.end(err), nil
	}
	ev, err := Propagate(&t.ray, f1, f2)
	if err != nil {
		t.state = Terminated
		t.err = fmt.Errorf("step %d at %v: %w", t.steps+1, t.pos, err)
		return StepResult{Point: t.pos, Terminated: true}, t.err
	}
	from := t.pos
	d := t.ray.Displacement()
	t.pos = t.pos.Add(d)
	t.time += chordTime(d.Len(), f1.Speed(), t.speedAt(t.pos.Y))
	t.points = append(t.points, t.pos)
	t.steps++
	t.log.add(TraceLog{Step: t.steps, Event: ev, Point: t.pos, Angle: t.ray.Angle(), Time: t.time})
	if ev == EventReflect {
		DebugLog("Turning point at %v after %d steps", from, t.steps)
	}
	return StepResult{Point: t.pos, Event: ev}, nil
}

func (t *Tracer) end(cause error) StepResult {
	t.state = Terminated
	t.log.add(TraceLog{Step: t.steps, Event: EventEnd, Point: t.pos, Angle: t.ray.Angle(), Time: t.time})
	if cause != nil {
		DebugLog("Trace ended after %d steps at %v: %v", t.steps, t.pos, cause)
	} else {
		DebugLog("Trace ended after %d steps at %v: release height reached", t.steps, t.pos)
	}
	return StepResult{Point: t.pos, Terminated: true}
}

// Step advances the trace and reports whether a point was added. It returns false
// once the trace has ended; Err tells a genuine failure apart from normal termination.
//
//	for t.Step() {
//	}
//	if err := t.Err(); err != nil { ... }
func (t *Tracer) Step() bool {
	res, err := t.Next()
	return err == nil && !res.Terminated
}

// Err returns the error that stopped the trace, nil if it ended normally or is still running.
func (t *Tracer) Err() error { return t.err }

// Run steps until termination or until maxSteps steps were taken (maxSteps <= 0 means
// no bound), in which case ErrStepLimit is returned and the tracer stays Running.
func (t *Tracer) Run(maxSteps int) error {
	for n := 0; maxSteps <= 0 || n < maxSteps; n++ {
		if !t.Step() {
			return t.err
		}
	}
	return fmt.Errorf("%w: %d steps, position %v", ErrStepLimit, maxSteps, t.pos)
}

// speedAt is the stratum speed at height y, clamped to zero at the release height.
func (t *Tracer) speedAt(y Real) Real {
	f, err := NewVelocityField(math.Min(y, 0), t.g)
	if err != nil {
		return 0
	}
	return f.Speed()
}

// chordTime is the time needed to slide a straight chord of length l whose end speeds
// are va and vb: the speed grows linearly in time on an incline, so dt = 2·l / (va + vb).
func chordTime(l, va, vb Real) Real {
	if l == 0 {
		return 0
	}
	if va+vb == 0 {
		return math.Inf(1)
	}
	return 2 * l / (va + vb)
}

// Points returns a copy of the path so far, starting at the release point.
func (t *Tracer) Points() []Point2 {
	out := make([]Point2, len(t.points))
	copy(out, t.points)
	return out
}

func (t *Tracer) Position() Point2 { return t.pos }
func (t *Tracer) State() State     { return t.state }
func (t *Tracer) Ray() Ray         { return t.ray }
func (t *Tracer) G() Real          { return t.g }

// Steps is the number of successful Next calls.
func (t *Tracer) Steps() int { return t.steps }

// DescentTime is the time, in seconds, a bead released at rest at (0, 0) needs to
// slide along the path traced so far.
func (t *Tracer) DescentTime() Real { return t.time }

// Log returns one entry per step, plus a final EventEnd entry once terminated.
func (t *Tracer) Log() []TraceLog {
	out := make([]TraceLog, len(t.log.logs))
	copy(out, t.log.logs)
	return out
}

// Reflections counts the turning points passed so far.
func (t *Tracer) Reflections() int { return t.log.count(EventReflect) }

// TurningPoint returns the deepest point of the trace, the position where the ray was
// first totally internally reflected.
func (t *Tracer) TurningPoint() (Point2, bool) {
	l, ok := t.log.first(EventReflect)
	if !ok {
		return Point2{}, false
	}
	// l.Point is already on the way up; points[l.Step] is where the ray turned
	return t.points[l.Step], true
}
