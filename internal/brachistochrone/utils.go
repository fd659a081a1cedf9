package brachistochrone

import (
	"math"
)

type Real = float64

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func deg2rad(d Real) Real { return d * math.Pi / 180 }
