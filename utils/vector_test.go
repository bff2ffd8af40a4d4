package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestDet3Identity(t *testing.T) {
	d := Det3(
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
		r3.Vec{X: 0, Y: 0, Z: 1},
	)
	require.InDelta(t, 1.0, d, 1e-12)
}

func TestDet3Degenerate(t *testing.T) {
	d := Det3(
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 2, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
	)
	require.InDelta(t, 0.0, d, 1e-12)
}

func TestMean(t *testing.T) {
	m := Mean(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 2, Y: 4, Z: 6},
	)
	require.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, m)
}

func TestMeanEmpty(t *testing.T) {
	require.Equal(t, r3.Vec{}, Mean())
}
