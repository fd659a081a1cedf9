package brachistochrone

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestAngles(t *testing.T) {
	a := Angles(30, 60, 4)
	if len(a) != 4 {
		t.Fatalf("len %d", len(a))
	}
	want := []Real{6 * math.Pi / 36, 8 * math.Pi / 36, 10 * math.Pi / 36, 12 * math.Pi / 36}
	diff(t, want, a, cmpopts.EquateApprox(0, 1e-12))
	if got := Angles(45, 80, 1); len(got) != 1 || got[0] != deg2rad(45) {
		t.Fatalf("single angle: %v", got)
	}
	if Angles(1, 2, 0) != nil {
		t.Fatal("expected nil for n=0")
	}
}

func TestSweepMatchesSequential(t *testing.T) {
	angles := Angles(40, 75, 9)
	opts := SweepOptions{StepHeight: 0.1, G: DefaultG, MaxSteps: 10_000, Workers: 3}
	results, err := Sweep(angles, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(angles) {
		t.Fatalf("results %d want %d", len(results), len(angles))
	}
	for i, r := range results {
		if r.Angle != angles[i] {
			t.Fatalf("result %d out of order: %g vs %g", i, r.Angle, angles[i])
		}
		tr, err := NewTracer(angles[i], 0.1, DefaultG)
		if err != nil {
			t.Fatal(err)
		}
		traceToEnd(t, tr, 10_000)
		diff(t, tr.Points(), r.Points)
		if r.Steps != tr.Steps() || r.End != tr.Position() || r.Reflections != 1 {
			t.Fatalf("angle %g: steps=%d/%d end=%v/%v reflections=%d", r.Angle, r.Steps, tr.Steps(), r.End, tr.Position(), r.Reflections)
		}
		if !scalar.EqualWithinAbs(r.DescentTime, tr.DescentTime(), 0) {
			t.Fatalf("descent time %g vs %g", r.DescentTime, tr.DescentTime())
		}
	}
}

func TestSweepReportsErrors(t *testing.T) {
	angles := []Real{0, math.Pi / 3, math.Pi / 2.4}
	results, err := Sweep(angles, SweepOptions{StepHeight: 0.1, G: DefaultG, MaxSteps: 20})
	if !errors.Is(err, ErrInvalidGeometry) || !errors.Is(err, ErrStepLimit) {
		t.Fatalf("joined error missing kinds: %v", err)
	}
	if !errors.Is(results[0].Err, ErrInvalidGeometry) || results[1].Err != nil || !errors.Is(results[2].Err, ErrStepLimit) {
		t.Fatalf("per-result errors: %v / %v / %v", results[0].Err, results[1].Err, results[2].Err)
	}
	if res, err := Sweep(nil, SweepOptions{}); res != nil || err != nil {
		t.Fatalf("empty sweep: %v %v", res, err)
	}
}

func TestPathDistance(t *testing.T) {
	path := []Point2{{0, 0}, {1, -1}, {2, -1}}
	cases := []struct {
		p    Point2
		want Real
	}{
		{Pt(0, 0), 0},
		{Pt(1.5, -1), 0},
		{Pt(1.5, 0), 1},
		{Pt(0, -1), math.Sqrt2 / 2},
		{Pt(3, -1), 1},
	}
	for _, c := range cases {
		if got := pathDistance(path, c.p); !scalar.EqualWithinAbs(got, c.want, 1e-12) {
			t.Fatalf("distance to %v: %g want %g", c.p, got, c.want)
		}
	}
	if !math.IsInf(pathDistance(nil, Pt(0, 0)), 1) {
		t.Fatal("empty path should be infinitely far")
	}
}

func TestNearest(t *testing.T) {
	results := []SweepResult{
		{Angle: 1, Points: []Point2{{0, 0}, {1, -1}}},
		{Angle: 2, Points: []Point2{{0, 0}, {3, -1}}},
		{Angle: 3, Points: []Point2{{0, 0}, {3, -1}}, Err: ErrStepLimit},
	}
	best, d, ok := Nearest(results, Pt(3, -1))
	if !ok || best.Angle != 2 || d != 0 {
		t.Fatalf("best=%v d=%g ok=%v", best.Angle, d, ok)
	}
	if _, _, ok := Nearest(results[2:], Pt(0, 0)); ok {
		t.Fatal("failed results must not be picked")
	}
	if _, _, ok := Nearest(nil, Pt(0, 0)); ok {
		t.Fatal("empty results must not be picked")
	}
}
