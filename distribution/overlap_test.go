package distribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"
)

func TestFilterOverlappingKeepsFirstOfCluster(t *testing.T) {
	points := []model3d.Coord3D{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(0, 0, 0.05),
		model3d.XYZ(0, 0, 0.2),
	}
	filtered := FilterOverlapping(points, 0.1)
	require.Len(t, filtered, 2)
	assert.Equal(t, points[0], filtered[0])
	assert.Equal(t, points[2], filtered[1])
}

func TestFilterOverlappingZeroThresholdKeepsAll(t *testing.T) {
	points := Fibonacci(30, 1.0, false)
	assert.Equal(t, points, FilterOverlapping(points, 0))
}

func TestFilterOverlappingPairwiseDistance(t *testing.T) {
	points := Weighted(100, 0.8)
	const threshold = 0.4
	filtered := FilterOverlapping(points, threshold)
	require.NotEmpty(t, filtered)
	assert.Less(t, len(filtered), len(points))

	for i, a := range filtered {
		for _, b := range filtered[i+1:] {
			assert.GreaterOrEqual(t, a.Dist(b), threshold)
		}
	}
}

func TestFilterOverlappingPreservesOrder(t *testing.T) {
	points := Linear(6, 4, 1.0, false)
	filtered := FilterOverlapping(points, 0.5)

	// Every accepted point appears in the input, in the same relative order.
	next := 0
	for _, p := range filtered {
		found := false
		for ; next < len(points); next++ {
			if points[next] == p {
				found = true
				next++
				break
			}
		}
		require.True(t, found, "filtered point out of order or missing")
	}
}

func TestFilterOverlappingEmptyInput(t *testing.T) {
	assert.Empty(t, FilterOverlapping(nil, 0.5))
}
