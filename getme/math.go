package getme

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

func r3Sub(a, b r3.Vec) r3.Vec { return r3.Sub(a, b) }

// pow23 computes x^(2/3) for the non-negative sigma values the quality
// kernel guards for before calling it.
func pow23(x float64) float64 {
	return math.Pow(x, 2.0/3.0)
}
