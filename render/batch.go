package render

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/glenn-de-backer/anglecraft/placement"
	"github.com/glenn-de-backer/anglecraft/scene"
)

// Environment map files are recognized by extension only.
var environmentExtensions = map[string]bool{
	".hdr": true,
	".exr": true,
}

// Run renders every managed camera in scene-enumeration order and returns
// how many images it wrote. Per camera it activates the camera, optionally
// swaps in a random environment map, hides the configured floor when the
// camera sits below it (restoring visibility after the frame no matter how
// the frame ends), and writes render_NNN.png into cfg.OutputDir.
//
// rng drives environment-map selection; pass a seeded source for
// reproducible batches. A render failure aborts the batch: Run returns the
// frames completed so far along with the error, with no retry and no
// cleanup of images already written.
func Run(sc *scene.Scene, cfg Config, renderer Renderer, progress Progress, rng *rand.Rand) (int, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return 0, errors.Wrapf(err, "create output directory %s", cfg.OutputDir)
	}

	maps := listEnvironmentMaps(cfg.HDRIDir)

	var cameras []*scene.Object
	for _, obj := range sc.ByKind(scene.KindCamera) {
		if placement.Managed(obj.Name) {
			cameras = append(cameras, obj)
		}
	}

	ctx := NewContext(cfg)

	var floor *scene.Object
	if cfg.FloorObject != "" && cfg.FloorObject != "NONE" {
		f, ok := sc.Get(cfg.FloorObject)
		if !ok {
			return 0, errors.Wrapf(scene.ErrNotFound, "floor object %q", cfg.FloorObject)
		}
		floor = f
	}

	if progress == nil {
		progress = &LogProgress{}
	}
	progress.Begin(len(cameras))
	defer progress.End()

	count := 0
	for i, cam := range cameras {
		ctx.ActiveCamera = cam

		if len(maps) > 0 && (cfg.OverrideWorld || sc.World == nil) {
			img := maps[rng.Intn(len(maps))]
			if sc.World == nil {
				sc.World = scene.NewWorld("World")
			}
			sc.World.UseNodes = true
			sc.World.EnsureEnvironment(img)
		}

		if floor != nil && cam.Location.Z < floor.Location.Z {
			floor.HideRender = true
		}

		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("render_%03d.png", i))
		err := renderer.Render(ctx, sc, cam, path)

		// Restore unconditionally so a failed frame never leaves the floor
		// hidden for the caller.
		if floor != nil {
			floor.HideRender = false
		}
		if err != nil {
			return count, errors.Wrapf(err, "render camera %q", cam.Name)
		}

		count++
		progress.Update(i + 1)
	}
	return count, nil
}

// listEnvironmentMaps returns the environment map paths under dir in
// directory order. A missing or unreadable directory yields none; the batch
// then runs with the scene's existing world.
func listEnvironmentMaps(dir string) []string {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var maps []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if environmentExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			maps = append(maps, filepath.Join(dir, e.Name()))
		}
	}
	return maps
}
