package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/glenn-de-backer/anglecraft/distribution"
	"github.com/glenn-de-backer/anglecraft/placement"
	"github.com/glenn-de-backer/anglecraft/render"
)

// A Job is the full description of one dataset run. Every field can be set
// from flags; a TOML job file set with -config is applied on top.
type Job struct {
	Model string `toml:"model"`
	Seed  int64  `toml:"seed"`

	Lights          int     `toml:"lights"`
	LightBrightness float64 `toml:"light_brightness"`

	Floor  FloorJob  `toml:"floor"`
	Sphere SphereJob `toml:"sphere"`
	Render RenderJob `toml:"render"`
}

// A FloorJob adds a ground plane under the model.
type FloorJob struct {
	Enabled bool    `toml:"enabled"`
	Height  float64 `toml:"height"`
	Size    float64 `toml:"size"`
}

// A SphereJob configures camera placement.
type SphereJob struct {
	MinRadius         float64 `toml:"min_radius"`
	MaxRadius         float64 `toml:"max_radius"`
	Horizontal        int     `toml:"horizontal"`
	Vertical          int     `toml:"vertical"`
	Type              string  `toml:"type"`
	HalfSphere        bool    `toml:"half_sphere"`
	RemoveOverlapping bool    `toml:"remove_overlapping"`
	OverlapThreshold  float64 `toml:"overlap_threshold"`
}

// A RenderJob configures the batch render.
type RenderJob struct {
	OutputDir     string `toml:"output_dir"`
	Samples       int    `toml:"samples"`
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	Denoise       bool   `toml:"denoise"`
	Denoiser      string `toml:"denoiser"`
	HDRIDir       string `toml:"hdri_dir"`
	OverrideWorld bool   `toml:"override_world"`
}

func DefaultJob() Job {
	pcfg := placement.DefaultConfig()
	rcfg := render.DefaultConfig()
	return Job{
		Lights:          5,
		LightBrightness: 0.5,
		Floor:           FloorJob{Height: 0, Size: 40},
		Sphere: SphereJob{
			MinRadius:        pcfg.MinRadius,
			MaxRadius:        pcfg.MaxRadius,
			Horizontal:       pcfg.Horizontal,
			Vertical:         pcfg.Vertical,
			Type:             string(pcfg.Distribution),
			OverlapThreshold: pcfg.OverlapThreshold,
		},
		Render: RenderJob{
			OutputDir: rcfg.OutputDir,
			Samples:   rcfg.Samples,
			Width:     rcfg.Width,
			Height:    rcfg.Height,
			Denoise:   rcfg.DenoiseEnabled,
			Denoiser:  rcfg.Denoiser,
		},
	}
}

// LoadJob overlays the TOML file at path onto job.
func LoadJob(path string, job *Job) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read job file %s", path)
	}
	if err := toml.Unmarshal(data, job); err != nil {
		return errors.Wrapf(err, "parse job file %s", path)
	}
	return nil
}

// PlacementConfig translates the job into a placement pass around target.
func (j Job) PlacementConfig(target string) placement.Config {
	return placement.Config{
		ObjectName:        target,
		MinRadius:         j.Sphere.MinRadius,
		MaxRadius:         j.Sphere.MaxRadius,
		Horizontal:        j.Sphere.Horizontal,
		Vertical:          j.Sphere.Vertical,
		Distribution:      distribution.Type(j.Sphere.Type),
		HalfSphere:        j.Sphere.HalfSphere,
		RemoveOverlapping: j.Sphere.RemoveOverlapping,
		OverlapThreshold:  j.Sphere.OverlapThreshold,
	}
}

// RenderConfig translates the job into a batch config; floorName is the
// scene name of the floor object, or empty when no floor is present.
func (j Job) RenderConfig(floorName string) render.Config {
	return render.Config{
		OutputDir:      j.Render.OutputDir,
		Samples:        j.Render.Samples,
		Width:          j.Render.Width,
		Height:         j.Render.Height,
		DenoiseEnabled: j.Render.Denoise,
		Denoiser:       j.Render.Denoiser,
		HDRIDir:        j.Render.HDRIDir,
		OverrideWorld:  j.Render.OverrideWorld,
		FloorObject:    floorName,
	}
}
