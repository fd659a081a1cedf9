package brachistochrone

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

type SweepOptions struct {
	StepHeight Real
	G          Real
	MaxSteps   int // <= 0 means MaxSteps
	Workers    int // <= 0 means Workers, then runtime.NumCPU()
}

// SweepResult summarizes the trace of one launch angle.
type SweepResult struct {
	Angle       Real
	Steps       int
	End         Point2
	Turning     Point2
	Reflections int
	DescentTime Real
	Points      []Point2
	Err         error
}

// Angles returns n launch angles evenly spaced from loDeg to hiDeg (degrees), in radians.
func Angles(loDeg, hiDeg Real, n int) []Real {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Real{deg2rad(loDeg)}
	}
	return floats.Span(make([]Real, n), deg2rad(loDeg), deg2rad(hiDeg))
}

func traceOne(angle Real, opts SweepOptions) SweepResult {
	res := SweepResult{Angle: angle}
	tr, err := NewTracer(angle, opts.StepHeight, opts.G)
	if err != nil {
		res.Err = err
		return res
	}
	res.Err = tr.Run(opts.MaxSteps)
	res.Steps = tr.Steps()
	res.End = tr.Position()
	res.Turning, _ = tr.TurningPoint()
	res.Reflections = tr.Reflections()
	res.DescentTime = tr.DescentTime()
	res.Points = tr.Points()
	return res
}

// Sweep traces every angle with an independent Tracer, spreading them over worker
// goroutines. Results keep the order of angles; failed traces carry their own Err
// and are also joined into the returned error.
func Sweep(angles []Real, opts SweepOptions) ([]SweepResult, error) {
	if len(angles) == 0 {
		return nil, nil
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = MaxSteps
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = Workers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = imax(1, workers)
	if workers > len(angles) {
		workers = len(angles)
	}
	DebugLogOnce("Sweep: %d angles on %d workers", len(angles), workers)

	results := make([]SweepResult, len(angles))
	per, rem := len(angles)/workers, len(angles)%workers
	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		wg.Add(1)
		// each worker owns results[from:to]
		go func(from, to int) {
			defer wg.Done()
			for i := from; i < to; i++ {
				results[i] = traceOne(angles[i], opts)
			}
		}(start, start+n)
		start += n
	}
	wg.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("angle %.6f: %w", r.Angle, r.Err))
		}
	}
	return results, errors.Join(errs...)
}

// pathDistance is the distance from target to the closest segment of the path.
func pathDistance(path []Point2, target Point2) Real {
	if len(path) == 0 {
		return math.Inf(1)
	}
	p := r2.Vec{X: target.X, Y: target.Y}
	a := r2.Vec{X: path[0].X, Y: path[0].Y}
	best := r2.Norm(r2.Sub(p, a))
	for _, q := range path[1:] {
		b := r2.Vec{X: q.X, Y: q.Y}
		ab := r2.Sub(b, a)
		l2 := r2.Dot(ab, ab)
		c := a
		if l2 > 0 {
			s := math.Max(0, math.Min(1, r2.Dot(r2.Sub(p, a), ab)/l2))
			c = r2.Add(a, r2.Scale(s, ab))
		}
		best = math.Min(best, r2.Norm(r2.Sub(p, c)))
		a = b
	}
	return best
}

// Nearest picks the successful result whose path passes closest to target and
// returns it with that distance. ok is false if no result is usable.
func Nearest(results []SweepResult, target Point2) (best SweepResult, dist Real, ok bool) {
	if len(results) == 0 {
		return SweepResult{}, math.Inf(1), false
	}
	d := make([]Real, len(results))
	for i, r := range results {
		d[i] = math.Inf(1)
		if r.Err == nil {
			d[i] = pathDistance(r.Points, target)
		}
	}
	i := floats.MinIdx(d)
	if math.IsInf(d[i], 1) {
		return SweepResult{}, d[i], false
	}
	return results[i], d[i], true
}
