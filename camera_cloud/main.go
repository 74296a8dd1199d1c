// Command camera_cloud places a camera sphere without rendering and writes
// the camera positions as a thickened point-cloud STL, for checking what a
// distribution looks like before committing to a long render.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"

	"github.com/glenn-de-backer/anglecraft/distribution"
	"github.com/glenn-de-backer/anglecraft/placement"
	"github.com/glenn-de-backer/anglecraft/scene"
)

func main() {
	var thickness float64
	var delta float64
	var seed int64
	var outputPath string
	cfg := placement.DefaultConfig()

	flag.Float64Var(&thickness, "thickness", 0.2, "radius of each point")
	flag.Float64Var(&delta, "delta", 0.1, "marching cubes delta")
	flag.Int64Var(&seed, "seed", 0, "seed for Go's random number generation")
	flag.StringVar(&outputPath, "output-path", "", "output STL path")

	var distType string
	flag.Float64Var(&cfg.MinRadius, "min-radius", cfg.MinRadius, "minimum camera distance")
	flag.Float64Var(&cfg.MaxRadius, "max-radius", cfg.MaxRadius, "maximum camera distance")
	flag.IntVar(&cfg.Horizontal, "horizontal", cfg.Horizontal, "cameras per ring")
	flag.IntVar(&cfg.Vertical, "vertical", cfg.Vertical, "number of rings")
	flag.StringVar(&distType, "type", string(cfg.Distribution),
		"distribution type (linear, uniform, fibonacci, equator_dense, weighted)")
	flag.BoolVar(&cfg.HalfSphere, "half-sphere", cfg.HalfSphere, "only place cameras above the equator")
	flag.BoolVar(&cfg.RemoveOverlapping, "remove-overlapping", cfg.RemoveOverlapping,
		"drop cameras closer together than -overlap-threshold")
	flag.Float64Var(&cfg.OverlapThreshold, "overlap-threshold", cfg.OverlapThreshold,
		"minimum distance between cameras")
	flag.Parse()
	if outputPath == "" {
		essentials.Die("Must specify -output-path")
	}
	cfg.Distribution = distribution.Type(distType)
	cfg.ObjectName = "Target"

	log.Println("Placing cameras...")
	sc := scene.New()
	sc.Add(&scene.Object{Name: cfg.ObjectName, Kind: scene.KindEmpty})
	cameras, err := placement.CreateCameras(sc, cfg, rand.New(rand.NewSource(seed)))
	essentials.Must(err)
	if len(cameras) == 0 {
		essentials.Die("no cameras placed; check -horizontal and -vertical")
	}
	log.Printf("Placed %d cameras.", len(cameras))

	points := make([]model3d.Coord3D, len(cameras))
	for i, cam := range cameras {
		points[i] = cam.Location
	}

	log.Println("Constructing solid...")
	min := points[0]
	max := points[0]
	for _, p := range points {
		min = min.Min(p)
		max = max.Max(p)
	}
	pad := model3d.XYZ(thickness, thickness, thickness)
	tree := model3d.NewCoordTree(points)
	solid := model3d.CheckedFuncSolid(
		min.Sub(pad),
		max.Add(pad),
		func(c model3d.Coord3D) bool {
			return tree.Dist(c) < thickness
		},
	)

	log.Println("Creating mesh...")
	mesh := model3d.MarchingCubesSearch(solid, delta, 8)

	log.Println("Saving mesh...")
	mesh.SaveGroupedSTL(outputPath)
}
