// Package utils collects small numeric helpers shared by the getme kernels,
// the way gocfd's own utils package wraps gonum for its DG kernels.
package utils

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Det3 returns the determinant of the 3x3 matrix whose rows are p1, p2, p3.
func Det3(p1, p2, p3 r3.Vec) float64 {
	m := mat.NewDense(3, 3, []float64{
		p1.X, p1.Y, p1.Z,
		p2.X, p2.Y, p2.Z,
		p3.X, p3.Y, p3.Z,
	})
	return mat.Det(m)
}

// MagSqr returns the sum of squared magnitudes of p1, p2, p3, matching the
// original's magSqr(mA) over the tensor rows.
func MagSqr(p1, p2, p3 r3.Vec) float64 {
	return r3.Dot(p1, p1) + r3.Dot(p2, p2) + r3.Dot(p3, p3)
}

// Mean returns the average of vs. Mean of an empty slice is the zero vector.
func Mean(vs ...r3.Vec) r3.Vec {
	if len(vs) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, v := range vs {
		sum = r3.Add(sum, v)
	}
	return r3.Scale(1/float64(len(vs)), sum)
}
