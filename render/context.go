package render

import "github.com/glenn-de-backer/anglecraft/scene"

// A Context is the renderer state a batch applies once and then hands to
// the Renderer for every frame: engine selection, sampling, resolution,
// color management, output format, and the camera currently active. It
// replaces ambient global renderer settings with an explicit value.
type Context struct {
	Engine  string
	Samples int
	Width   int
	Height  int

	// Color management: tone-mapping view transform plus contrast look.
	ViewTransform string
	Look          string

	FileFormat string

	DenoiseEnabled bool
	Denoiser       string

	ActiveCamera *scene.Object
}

// NewContext applies cfg to a fresh context with the batch's fixed
// settings: Cycles-style engine, Filmic view transform with a high-contrast
// look, PNG output.
func NewContext(cfg Config) *Context {
	return &Context{
		Engine:         "CYCLES",
		Samples:        cfg.Samples,
		Width:          cfg.Width,
		Height:         cfg.Height,
		ViewTransform:  "Filmic",
		Look:           "High Contrast",
		FileFormat:     "PNG",
		DenoiseEnabled: cfg.DenoiseEnabled,
		Denoiser:       cfg.Denoiser,
	}
}
