// Package distribution generates ordered point layouts on the surface of a
// sphere. Each strategy maps a horizontal/vertical sample count to a slice of
// model3d coordinates; callers scale and offset the points to place cameras.
package distribution

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A Type identifies a sphere point layout strategy.
type Type string

const (
	TypeLinear       Type = "linear"
	TypeUniform      Type = "uniform"
	TypeFibonacci    Type = "fibonacci"
	TypeEquatorDense Type = "equator_dense"
	TypeWeighted     Type = "weighted"
)

// ErrUnknownType is returned when a Type does not name a strategy.
var ErrUnknownType = errors.New("unknown distribution type")

// DefaultBiasRatio is the fraction of weighted-distribution points placed in
// the top hemisphere.
const DefaultBiasRatio = 0.8

// Types lists every strategy, for configuration surfaces that enumerate them.
func Types() []Type {
	return []Type{TypeLinear, TypeUniform, TypeFibonacci, TypeEquatorDense, TypeWeighted}
}

// Points dispatches to the strategy named by typ at unit radius.
//
// The fibonacci strategy may return fewer than horizontal*vertical points
// when halfSphere is set; all other strategies return exactly
// horizontal*vertical points (weighted splits that total across hemispheres
// and ignores halfSphere entirely).
func Points(typ Type, horizontal, vertical int, halfSphere bool) ([]model3d.Coord3D, error) {
	switch typ {
	case TypeLinear:
		return Linear(horizontal, vertical, 1.0, halfSphere), nil
	case TypeUniform:
		return Uniform(horizontal, vertical, 1.0, halfSphere), nil
	case TypeFibonacci:
		return Fibonacci(horizontal*vertical, 1.0, halfSphere), nil
	case TypeEquatorDense:
		return EquatorDense(horizontal, vertical, 1.0, halfSphere), nil
	case TypeWeighted:
		return Weighted(horizontal*vertical, DefaultBiasRatio), nil
	default:
		return nil, errors.Wrapf(ErrUnknownType, "%q", typ)
	}
}

// A Hemisphere restricts SpherePoints to half of the sphere.
type Hemisphere int

const (
	FullSphere Hemisphere = iota
	TopHemisphere
	BottomHemisphere
)

// SpherePoints lays out vertical rings of horizontal points using plain
// spherical coordinates, optionally restricted to one hemisphere. The
// vertical angle is measured from the +Z pole.
func SpherePoints(horizontal, vertical int, radius float64, hemi Hemisphere) []model3d.Coord3D {
	if horizontal <= 0 || vertical <= 0 {
		return nil
	}
	points := make([]model3d.Coord3D, 0, horizontal*vertical)
	for i := 0; i < vertical; i++ {
		// A single ring sits at the pole rather than dividing by zero.
		frac := 0.0
		if vertical > 1 {
			frac = float64(i) / float64(vertical-1)
		}
		var theta float64
		switch hemi {
		case TopHemisphere:
			theta = (math.Pi / 2) * frac
		case BottomHemisphere:
			theta = (math.Pi/2)*frac + math.Pi/2
		default:
			theta = math.Pi * frac
		}
		points = appendRing(points, horizontal, radius, theta)
	}
	return points
}

// Linear spaces rings at equal vertical-angle increments. The full sphere
// uses the open interval (0, pi) so no ring degenerates to a pole; the half
// sphere spans [0, pi/2] inclusive.
func Linear(horizontal, vertical int, radius float64, halfSphere bool) []model3d.Coord3D {
	if horizontal <= 0 || vertical <= 0 {
		return nil
	}
	points := make([]model3d.Coord3D, 0, horizontal*vertical)
	for v := 0; v < vertical; v++ {
		var theta float64
		if halfSphere {
			if vertical > 1 {
				theta = (math.Pi / 2) * float64(v) / float64(vertical-1)
			}
		} else {
			theta = math.Pi * float64(v+1) / float64(vertical+1)
		}
		points = appendRing(points, horizontal, radius, theta)
	}
	return points
}

// Uniform spaces rings by an inverse-cosine mapping so each ring covers an
// equal slice of sphere area instead of an equal vertical angle.
func Uniform(horizontal, vertical int, radius float64, halfSphere bool) []model3d.Coord3D {
	if horizontal <= 0 || vertical <= 0 {
		return nil
	}
	points := make([]model3d.Coord3D, 0, horizontal*vertical)
	for v := 0; v < vertical; v++ {
		var theta float64
		if halfSphere {
			if vertical > 1 {
				theta = math.Acos(1-2*float64(v)/float64(vertical-1)) / 2
			}
		} else {
			theta = math.Acos(1 - 2*float64(v+1)/float64(vertical+1))
		}
		points = appendRing(points, horizontal, radius, theta)
	}
	return points
}

// EquatorDense concentrates rings near the equator via an arcsine remapping
// of the normalized ring index.
func EquatorDense(horizontal, vertical int, radius float64, halfSphere bool) []model3d.Coord3D {
	if horizontal <= 0 || vertical <= 0 {
		return nil
	}
	points := make([]model3d.Coord3D, 0, horizontal*vertical)
	for v := 0; v < vertical; v++ {
		t := (float64(v) + 0.5) / float64(vertical)
		var theta float64
		if halfSphere {
			theta = math.Asin(t)
		} else {
			theta = math.Asin(2*t-1) + math.Pi/2
		}
		points = appendRing(points, horizontal, radius, theta)
	}
	return points
}

// Fibonacci lays out samples along a golden-angle spiral with z running
// linearly from 1 to -1. With halfSphere set, points below the equator are
// skipped, so the result holds fewer than samples points.
func Fibonacci(samples int, radius float64, halfSphere bool) []model3d.Coord3D {
	if samples <= 0 {
		return nil
	}
	if samples == 1 {
		return []model3d.Coord3D{model3d.XYZ(0, 0, radius)}
	}
	golden := math.Pi * (3 - math.Sqrt(5))
	points := make([]model3d.Coord3D, 0, samples)
	for i := 0; i < samples; i++ {
		z := 1 - 2*float64(i)/float64(samples-1)
		if halfSphere && z < 0 {
			continue
		}
		ringRadius := math.Sqrt(1 - z*z)
		theta := golden * float64(i)
		points = append(points, model3d.XYZ(
			math.Cos(theta)*ringRadius*radius,
			math.Sin(theta)*ringRadius*radius,
			z*radius,
		))
	}
	return points
}

// Weighted splits total points between the hemispheres by biasRatio
// (top = floor(total*biasRatio)), lays each hemisphere out on a roughly
// square grid, and truncates each grid to its exact allotment. The layout
// always covers both hemispheres; there is no half-sphere variant.
func Weighted(total int, biasRatio float64) []model3d.Coord3D {
	if total <= 0 {
		return nil
	}
	top := int(float64(total) * biasRatio)
	bottom := total - top

	topPoints := hemisphereGrid(top, TopHemisphere)
	bottomPoints := hemisphereGrid(bottom, BottomHemisphere)
	return append(topPoints, bottomPoints...)
}

func hemisphereGrid(count int, hemi Hemisphere) []model3d.Coord3D {
	if count <= 0 {
		return nil
	}
	horizontal := int(math.Ceil(math.Sqrt(float64(count))))
	vertical := int(math.Ceil(float64(count) / float64(horizontal)))
	points := SpherePoints(horizontal, vertical, 1.0, hemi)
	if len(points) > count {
		points = points[:count]
	}
	return points
}

func appendRing(points []model3d.Coord3D, horizontal int, radius, theta float64) []model3d.Coord3D {
	sinT, cosT := math.Sin(theta), math.Cos(theta)
	for h := 0; h < horizontal; h++ {
		phi := 2 * math.Pi * float64(h) / float64(horizontal)
		points = append(points, model3d.XYZ(
			radius*sinT*math.Cos(phi),
			radius*sinT*math.Sin(phi),
			radius*cosT,
		))
	}
	return points
}
