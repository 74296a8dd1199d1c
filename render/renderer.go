package render

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/render3d"

	"github.com/glenn-de-backer/anglecraft/scene"
)

// A Renderer writes one still image for the given camera to path. The batch
// owns all per-frame scene mutation; implementations only read the scene.
type Renderer interface {
	Render(ctx *Context, sc *scene.Scene, cam *scene.Object, path string) error
}

// RayCaster renders frames by ray casting the scene's visible mesh surfaces
// under its point lights.
type RayCaster struct{}

func (RayCaster) Render(ctx *Context, sc *scene.Scene, cam *scene.Object, path string) error {
	if cam == nil || cam.Kind != scene.KindCamera {
		return errors.New("active object is not a camera")
	}

	fov := scene.DefaultCamera().FOV()
	if cam.Camera != nil {
		fov = cam.Camera.FOV()
	}
	camera := render3d.NewCameraAt(cam.Location, cam.Location.Add(cam.Rotation.Forward()), fov)

	var surfaces render3d.JoinedObject
	for _, obj := range sc.ByKind(scene.KindMesh) {
		if !obj.HideRender && obj.Surface != nil {
			surfaces = append(surfaces, obj.Surface)
		}
	}
	var lights []*render3d.PointLight
	for _, obj := range sc.ByKind(scene.KindLight) {
		if !obj.HideRender {
			lights = append(lights, &render3d.PointLight{
				Origin: obj.Location,
				Color:  obj.Color,
			})
		}
	}

	img := render3d.NewImage(ctx.Width, ctx.Height)
	if len(surfaces) > 0 {
		caster := &render3d.RayCaster{
			Camera: camera,
			Lights: lights,
		}
		caster.Render(img, surfaces)
	}
	return errors.Wrapf(img.Save(path), "save %s", path)
}
