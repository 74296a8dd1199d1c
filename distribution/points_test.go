package distribution

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"
)

func TestPointsCounts(t *testing.T) {
	cases := []struct {
		h, v int
	}{
		{1, 1}, {1, 4}, {4, 1}, {4, 2}, {16, 8}, {7, 3},
	}
	for _, c := range cases {
		for _, half := range []bool{false, true} {
			total := c.h * c.v
			for _, typ := range []Type{TypeLinear, TypeUniform, TypeEquatorDense} {
				points, err := Points(typ, c.h, c.v, half)
				require.NoError(t, err)
				assert.Len(t, points, total, "%s %dx%d half=%v", typ, c.h, c.v, half)
			}

			fib, err := Points(TypeFibonacci, c.h, c.v, half)
			require.NoError(t, err)
			if half {
				assert.LessOrEqual(t, len(fib), total)
			} else {
				assert.Len(t, fib, total)
			}

			weighted, err := Points(TypeWeighted, c.h, c.v, half)
			require.NoError(t, err)
			assert.Len(t, weighted, total, "weighted %dx%d", c.h, c.v)
		}
	}
}

func TestPointsZeroCountsEmpty(t *testing.T) {
	for _, typ := range Types() {
		for _, c := range [][2]int{{0, 4}, {4, 0}, {0, 0}, {-1, 3}} {
			points, err := Points(typ, c[0], c[1], false)
			require.NoError(t, err)
			assert.Empty(t, points, "%s %v", typ, c)
		}
	}
}

func TestPointsUnknownType(t *testing.T) {
	_, err := Points(Type("spiral"), 4, 4, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestLinearFullSphereAngles(t *testing.T) {
	points := Linear(4, 2, 1.0, false)
	require.Len(t, points, 8)

	// Rings at theta = pi*(v+1)/3 for v in {0, 1}, four points each.
	for v := 0; v < 2; v++ {
		wantZ := math.Cos(math.Pi * float64(v+1) / 3)
		for h := 0; h < 4; h++ {
			p := points[v*4+h]
			assert.InDelta(t, wantZ, p.Z, 1e-9)
			assert.InDelta(t, 1.0, p.Norm(), 1e-9)
		}
	}
	// First point of each ring sits at phi=0 (+X side).
	assert.InDelta(t, 0, points[0].Y, 1e-9)
	assert.Greater(t, points[0].X, 0.0)
}

func TestHalfSphereStaysAboveEquator(t *testing.T) {
	for _, typ := range []Type{TypeLinear, TypeUniform, TypeEquatorDense, TypeFibonacci} {
		points, err := Points(typ, 6, 4, true)
		require.NoError(t, err)
		require.NotEmpty(t, points)
		for i, p := range points {
			assert.GreaterOrEqual(t, p.Z, -1e-9, "%s point %d", typ, i)
		}
	}
}

func TestSingleRingDoesNotDivideByZero(t *testing.T) {
	// A single vertical ring exercises every count-1 denominator.
	assert.Len(t, Linear(4, 1, 1.0, true), 4)
	assert.Len(t, Uniform(4, 1, 1.0, true), 4)
	assert.Len(t, SpherePoints(4, 1, 1.0, TopHemisphere), 4)
	fib := Fibonacci(1, 1.0, false)
	require.Len(t, fib, 1)
	assert.InDelta(t, 1.0, fib[0].Z, 1e-9)
}

func TestFibonacciUnitSphere(t *testing.T) {
	points := Fibonacci(50, 1.0, false)
	require.Len(t, points, 50)
	assert.InDelta(t, 1.0, points[0].Z, 1e-9)
	assert.InDelta(t, -1.0, points[49].Z, 1e-9)
	for _, p := range points {
		assert.InDelta(t, 1.0, p.Norm(), 1e-9)
	}

	half := Fibonacci(50, 1.0, true)
	assert.Less(t, len(half), 50)
	for _, p := range half {
		assert.GreaterOrEqual(t, p.Z, 0.0)
	}
}

func TestWeightedSplit(t *testing.T) {
	points := Weighted(10, 0.8)
	require.Len(t, points, 10)

	// floor(10*0.8) = 8 top points, 2 bottom points, in that order.
	for i := 0; i < 8; i++ {
		assert.GreaterOrEqual(t, points[i].Z, -1e-9, "top point %d", i)
	}
	for i := 8; i < 10; i++ {
		assert.LessOrEqual(t, points[i].Z, 1e-9, "bottom point %d", i)
	}
}

func TestWeightedIgnoresHalfSphere(t *testing.T) {
	full, err := Points(TypeWeighted, 4, 4, false)
	require.NoError(t, err)
	half, err := Points(TypeWeighted, 4, 4, true)
	require.NoError(t, err)
	assert.Equal(t, full, half)
}

func TestSpherePointsHemispheres(t *testing.T) {
	top := SpherePoints(4, 3, 1.0, TopHemisphere)
	require.Len(t, top, 12)
	for _, p := range top {
		assert.GreaterOrEqual(t, p.Z, -1e-9)
	}

	bottom := SpherePoints(4, 3, 1.0, BottomHemisphere)
	require.Len(t, bottom, 12)
	for _, p := range bottom {
		assert.LessOrEqual(t, p.Z, 1e-9)
	}

	full := SpherePoints(4, 3, 2.5, FullSphere)
	require.Len(t, full, 12)
	assert.InDelta(t, 2.5, full[0].Z, 1e-9)
	assert.InDelta(t, -2.5, full[len(full)-1].Z, 1e-9)
}

func TestTypesListsEveryStrategy(t *testing.T) {
	assert.Equal(t, []Type{
		TypeLinear, TypeUniform, TypeFibonacci, TypeEquatorDense, TypeWeighted,
	}, Types())
}

func sum(points []model3d.Coord3D) model3d.Coord3D {
	var s model3d.Coord3D
	for _, p := range points {
		s = s.Add(p)
	}
	return s
}

func TestLinearRingsAreBalanced(t *testing.T) {
	// Every full ring of points sums to zero in X/Y by symmetry.
	points := Linear(8, 3, 1.0, false)
	for v := 0; v < 3; v++ {
		ring := sum(points[v*8 : (v+1)*8])
		assert.InDelta(t, 0, ring.X, 1e-9)
		assert.InDelta(t, 0, ring.Y, 1e-9)
	}
}
