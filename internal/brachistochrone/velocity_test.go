package brachistochrone

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestVelocityFieldSpeed(t *testing.T) {
	cases := []struct {
		depth, g Real
	}{
		{0, DefaultG},
		{-5, DefaultG},
		{-0.1, 1},
		{-1e-9, 20},
		{-1234.5, 100},
	}
	for _, c := range cases {
		f, err := NewVelocityField(c.depth, c.g)
		if err != nil {
			t.Fatalf("depth=%g g=%g: unexpected error %v", c.depth, c.g, err)
		}
		if want := math.Sqrt(-2 * c.g * c.depth); f.Speed() != want {
			t.Fatalf("depth=%g g=%g: speed %.17g want %.17g", c.depth, c.g, f.Speed(), want)
		}
		if f.Depth() != c.depth || f.G() != c.g {
			t.Fatalf("accessors mismatch: %+v", f)
		}
	}
}

func TestVelocityFieldScenario(t *testing.T) {
	f, err := NewVelocityField(-5, DefaultG)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(f.Speed(), 9.9028, 1e-4) {
		t.Fatalf("speed %.6f want ~9.9028", f.Speed())
	}
}

func TestVelocityFieldDomain(t *testing.T) {
	for _, depth := range []Real{1e-12, 0.1, 5, math.Inf(1), math.NaN()} {
		_, err := NewVelocityField(depth, DefaultG)
		if !errors.Is(err, ErrDomain) {
			t.Fatalf("depth=%g: expected domain error, got %v", depth, err)
		}
	}
	for _, g := range []Real{0, -9.8, math.NaN()} {
		if _, err := NewVelocityField(-1, g); !errors.Is(err, ErrDomain) {
			t.Fatalf("g=%g: expected domain error, got %v", g, err)
		}
	}
}
