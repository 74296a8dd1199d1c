package scene

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// A Camera is the data block attached to camera objects: lens and sensor
// geometry plus clip distances, in the host's units (millimeters for lens
// and sensor, scene units for clipping).
type Camera struct {
	Lens         float64
	SensorWidth  float64
	SensorHeight float64
	ClipStart    float64
	ClipEnd      float64
}

// DefaultCamera matches the host's stock camera: 50mm lens on a full-frame
// 36x24mm sensor.
func DefaultCamera() *Camera {
	return &Camera{
		Lens:         50,
		SensorWidth:  36,
		SensorHeight: 24,
		ClipStart:    0.1,
		ClipEnd:      1000,
	}
}

// FOV returns the horizontal field of view in radians.
func (c *Camera) FOV() float64 {
	return 2 * math.Atan(c.SensorWidth/(2*c.Lens))
}

// A Rotation is an orthonormal basis giving an object's local axes in world
// space. Cameras look along -Z with +Y up, so Forward is -Z.
type Rotation struct {
	X model3d.Coord3D
	Y model3d.Coord3D
	Z model3d.Coord3D
}

// IdentityRotation aligns the local axes with the world axes.
func IdentityRotation() Rotation {
	return Rotation{
		X: model3d.XYZ(1, 0, 0),
		Y: model3d.XYZ(0, 1, 0),
		Z: model3d.XYZ(0, 0, 1),
	}
}

// Forward returns the direction the object faces (-Z).
func (r Rotation) Forward() model3d.Coord3D {
	return r.Z.Scale(-1)
}

// LookAt builds the rotation that points a camera at to from from: -Z aims
// along the view direction and +Y leans toward world +Z as far as the
// direction allows. A degenerate (zero-length) direction yields the
// identity; a straight-up or straight-down direction falls back to world +Y
// for the up axis.
func LookAt(from, to model3d.Coord3D) Rotation {
	dir := to.Sub(from)
	if dir.Norm() < 1e-12 {
		return IdentityRotation()
	}
	forward := dir.Normalize()

	worldUp := model3d.XYZ(0, 0, 1)
	up := worldUp.Sub(forward.Scale(worldUp.Dot(forward)))
	if up.Norm() < 1e-9 {
		worldUp = model3d.XYZ(0, 1, 0)
		up = worldUp.Sub(forward.Scale(worldUp.Dot(forward)))
	}
	up = up.Normalize()

	back := forward.Scale(-1)
	return Rotation{
		X: up.Cross(back),
		Y: up,
		Z: back,
	}
}
