// Package placement creates and removes the managed camera sphere around a
// target object. Cameras are linked into the scene under the
// "<target>_ai_<index>" naming convention; that name pattern, not any
// in-memory registry, is what ties creation, batch rendering, and deletion
// together.
package placement

import (
	"fmt"
	"math/rand"
	"regexp"

	"github.com/pkg/errors"

	"github.com/glenn-de-backer/anglecraft/distribution"
	"github.com/glenn-de-backer/anglecraft/scene"
)

// managedPattern matches the names of cameras this package owns. The match
// is a substring search so host-style duplicate suffixes ("Target_ai_3.001")
// still count as managed, while names with no digits after "_ai_" do not.
var managedPattern = regexp.MustCompile(`_ai_\d+`)

// Managed reports whether name follows the managed-camera convention.
func Managed(name string) bool {
	return managedPattern.MatchString(name)
}

// A Config describes one camera-sphere creation pass.
type Config struct {
	// ObjectName is the target object the sphere centers on.
	ObjectName string

	// Each camera sits at a radius drawn uniformly from [MinRadius, MaxRadius].
	MinRadius float64
	MaxRadius float64

	Horizontal int
	Vertical   int

	Distribution distribution.Type
	HalfSphere   bool

	// CameraBase optionally names a camera whose data block every created
	// camera clones. Empty (or "None") creates default cameras.
	CameraBase string

	RemoveOverlapping bool
	OverlapThreshold  float64
}

// DefaultConfig mirrors the tool's stock settings.
func DefaultConfig() Config {
	return Config{
		MinRadius:        10,
		MaxRadius:        10,
		Horizontal:       16,
		Vertical:         8,
		Distribution:     distribution.TypeWeighted,
		OverlapThreshold: 0.1,
	}
}

// CreateCameras distributes points around cfg.ObjectName and links one
// camera per point, aimed at the target and named "<target>_ai_<index>"
// with indices following point generation order. rng drives the
// per-camera radius sampling.
//
// The target and, when named, the base camera must resolve; a missing one
// fails with scene.ErrNotFound before any camera is created. An unknown
// distribution type fails with distribution.ErrUnknownType.
func CreateCameras(sc *scene.Scene, cfg Config, rng *rand.Rand) ([]*scene.Object, error) {
	target, ok := sc.Get(cfg.ObjectName)
	if !ok {
		return nil, errors.Wrapf(scene.ErrNotFound, "target object %q", cfg.ObjectName)
	}

	var base *scene.Object
	if cfg.CameraBase != "" && cfg.CameraBase != "None" {
		base, ok = sc.Get(cfg.CameraBase)
		if !ok {
			return nil, errors.Wrapf(scene.ErrNotFound, "base camera %q", cfg.CameraBase)
		}
	}

	points, err := distribution.Points(cfg.Distribution, cfg.Horizontal, cfg.Vertical, cfg.HalfSphere)
	if err != nil {
		return nil, err
	}
	if cfg.RemoveOverlapping {
		points = distribution.FilterOverlapping(points, cfg.OverlapThreshold)
	}

	cameras := make([]*scene.Object, 0, len(points))
	for idx, point := range points {
		radius := cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius)
		location := target.Location.Add(point.Scale(radius))

		var cam *scene.Object
		if base != nil {
			cam = sc.Duplicate(base)
		} else {
			cam = sc.Add(&scene.Object{
				Kind:   scene.KindCamera,
				Camera: scene.DefaultCamera(),
			})
		}
		cam.Location = location
		cam.Rotation = scene.LookAt(location, target.Location)
		sc.Rename(cam, fmt.Sprintf("%s_ai_%d", target.Name, idx))

		cameras = append(cameras, cam)
	}
	return cameras, nil
}

// DeleteCameras unlinks every managed camera and returns how many it
// removed. With no managed cameras in the scene it removes nothing and
// returns 0, so repeated calls are safe.
func DeleteCameras(sc *scene.Scene) int {
	var doomed []*scene.Object
	for _, obj := range sc.ByKind(scene.KindCamera) {
		if Managed(obj.Name) {
			doomed = append(doomed, obj)
		}
	}
	for _, obj := range doomed {
		sc.Remove(obj.Name)
	}
	return len(doomed)
}
