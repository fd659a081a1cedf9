package brachistochrone

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	if !isFinite(1) || isFinite(math.Inf(1)) || isFinite(math.NaN()) {
		t.Fatal("isFinite failed")
	}
}

func TestIMax(t *testing.T) {
	if imax(3, 5) != 5 || imax(5, 3) != 5 {
		t.Fatal("imax failed")
	}
}

func TestDeg2Rad(t *testing.T) {
	if math.Abs(deg2rad(180)-math.Pi) > 1e-15 || deg2rad(0) != 0 {
		t.Fatalf("deg2rad wrong: %v", deg2rad(180))
	}
}
