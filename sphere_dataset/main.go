// Command sphere_dataset surrounds an STL model with a sphere of cameras and
// renders one image per camera, producing a multi-view dataset.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"

	"github.com/glenn-de-backer/anglecraft/placement"
	"github.com/glenn-de-backer/anglecraft/render"
	"github.com/glenn-de-backer/anglecraft/scene"
)

const targetName = "Target"

func main() {
	var configPath string
	var clean bool
	color := VectorFlag{Value: model3d.XYZ(0.8, 0.8, 0.0)}
	job := DefaultJob()

	flag.StringVar(&configPath, "config", "", "TOML job file applied on top of the flags")
	flag.StringVar(&job.Model, "model", "", "path of the STL model to photograph")
	flag.Int64Var(&job.Seed, "seed", 0, "seed for Go's random number generation")
	flag.IntVar(&job.Lights, "lights", job.Lights, "number of lights to put into the scene")
	flag.Float64Var(&job.LightBrightness, "light-brightness", job.LightBrightness, "brightness of lights")
	flag.Var(&color, "color", "color of the model, as 'r,g,b'")

	flag.BoolVar(&job.Floor.Enabled, "floor", job.Floor.Enabled, "add a ground plane under the model")
	flag.Float64Var(&job.Floor.Height, "floor-height", job.Floor.Height, "height of the ground plane")

	flag.Float64Var(&job.Sphere.MinRadius, "min-radius", job.Sphere.MinRadius, "minimum camera distance")
	flag.Float64Var(&job.Sphere.MaxRadius, "max-radius", job.Sphere.MaxRadius, "maximum camera distance")
	flag.IntVar(&job.Sphere.Horizontal, "horizontal", job.Sphere.Horizontal, "cameras per ring")
	flag.IntVar(&job.Sphere.Vertical, "vertical", job.Sphere.Vertical, "number of rings")
	flag.StringVar(&job.Sphere.Type, "type", job.Sphere.Type,
		"distribution type (linear, uniform, fibonacci, equator_dense, weighted)")
	flag.BoolVar(&job.Sphere.HalfSphere, "half-sphere", job.Sphere.HalfSphere, "only place cameras above the equator")
	flag.BoolVar(&job.Sphere.RemoveOverlapping, "remove-overlapping", job.Sphere.RemoveOverlapping,
		"drop cameras closer together than -overlap-threshold")
	flag.Float64Var(&job.Sphere.OverlapThreshold, "overlap-threshold", job.Sphere.OverlapThreshold,
		"minimum distance between cameras")

	flag.StringVar(&job.Render.OutputDir, "output-dir", job.Render.OutputDir, "directory for rendered images")
	flag.IntVar(&job.Render.Width, "width", job.Render.Width, "render width")
	flag.IntVar(&job.Render.Height, "height", job.Render.Height, "render height")
	flag.IntVar(&job.Render.Samples, "samples", job.Render.Samples, "render samples")
	flag.StringVar(&job.Render.HDRIDir, "hdri-dir", job.Render.HDRIDir, "directory of .hdr/.exr environment maps")
	flag.BoolVar(&job.Render.OverrideWorld, "override-world", job.Render.OverrideWorld,
		"swap in a random environment map for every camera")

	flag.BoolVar(&clean, "clean", false, "delete the managed cameras after rendering")
	flag.Parse()

	if configPath != "" {
		essentials.Must(LoadJob(configPath, &job))
	}
	if job.Model == "" {
		fmt.Fprintln(os.Stderr, "Usage: sphere_dataset -model <input.stl> [flags]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(job.Seed))

	log.Println("Loading model...")
	sc := scene.New()
	sc.Add(&scene.Object{Name: targetName, Kind: scene.KindEmpty})
	sc.Add(&scene.Object{
		Name:    "Model",
		Kind:    scene.KindMesh,
		Surface: readObject(job.Model, color.Value),
	})

	floorName := ""
	if job.Floor.Enabled {
		floorName = "Floor"
		sc.Add(&scene.Object{
			Name:     floorName,
			Kind:     scene.KindMesh,
			Location: model3d.XYZ(0, 0, job.Floor.Height),
			Surface:  floorSurface(job.Floor),
		})
	}

	log.Println("Creating random lights...")
	addRandomLights(sc, job.Lights, job.LightBrightness)

	log.Println("Creating cameras...")
	cameras, err := placement.CreateCameras(sc, job.PlacementConfig(targetName), rng)
	essentials.Must(err)
	log.Printf("Created %d cameras around %q.", len(cameras), targetName)

	count, err := render.Run(sc, job.RenderConfig(floorName), render.RayCaster{}, &render.LogProgress{}, rng)
	essentials.Must(err)
	log.Printf("Rendered %d images to %s.", count, job.Render.OutputDir)

	if clean {
		log.Printf("Deleted %d cameras.", placement.DeleteCameras(sc))
	}
}

// readObject loads an STL file as a single-color renderable surface,
// centered on the origin and scaled to roughly unit size.
func readObject(path string, color model3d.Coord3D) render3d.Object {
	r, err := os.Open(path)
	essentials.Must(err)
	defer r.Close()

	triangles, err := model3d.ReadSTL(r)
	essentials.Must(err)
	mesh := normalizeMesh(model3d.NewMeshTriangles(triangles))

	collider := model3d.MeshToCollider(mesh)
	return render3d.Objectify(
		collider,
		func(c model3d.Coord3D, rc model3d.RayCollision) render3d.Color {
			return render3d.NewColorRGB(color.X, color.Y, color.Z)
		},
	)
}

func normalizeMesh(mesh *model3d.Mesh) *model3d.Mesh {
	mesh = mesh.Translate(mesh.Min().Mid(mesh.Max()).Scale(-1))
	m := mesh.Max()
	size := math.Max(math.Max(m.X, m.Y), m.Z)
	return mesh.Scale(1 / size)
}

// floorSurface builds a thin gray slab centered under the model.
func floorSurface(cfg FloorJob) render3d.Object {
	half := cfg.Size / 2
	mesh := model3d.NewMeshRect(
		model3d.XYZ(-half, -half, cfg.Height-0.05),
		model3d.XYZ(half, half, cfg.Height),
	)
	collider := model3d.MeshToCollider(mesh)
	return render3d.Objectify(
		collider,
		func(c model3d.Coord3D, rc model3d.RayCollision) render3d.Color {
			return render3d.NewColor(0.5)
		},
	)
}

func addRandomLights(sc *scene.Scene, n int, brightness float64) {
	for i := 0; i < n; i++ {
		direction := model3d.NewCoord3DRandUnit()
		sc.Add(&scene.Object{
			Kind:     scene.KindLight,
			Location: direction.Scale(1000),
			Color:    render3d.NewColor(brightness),
		})
	}
}
