package distribution

import "github.com/unixpickle/model3d/model3d"

// FilterOverlapping drops points that sit closer than threshold to an
// earlier accepted point. The walk is greedy in input order, so the result
// is an order-preserving subset; it is not a maximum independent set, which
// is fine for the tens-to-hundreds of cameras this feeds.
func FilterOverlapping(points []model3d.Coord3D, threshold float64) []model3d.Coord3D {
	filtered := make([]model3d.Coord3D, 0, len(points))
	for _, p := range points {
		ok := true
		for _, accepted := range filtered {
			if p.Dist(accepted) < threshold {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
