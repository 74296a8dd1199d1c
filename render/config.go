// Package render drives a batch render of the managed camera sphere: one
// image per managed camera, with optional randomized environment lighting
// and floor hiding for shots taken from below.
package render

// Denoiser choices, named after the host renderer's options.
const (
	DenoiserOptiX            = "OPTIX"
	DenoiserOpenImageDenoise = "OPENIMAGEDENOISE"
	DenoiserNone             = "NONE"
)

// A Config describes one render batch.
type Config struct {
	// OutputDir receives the render_NNN.png files; it is created if absent.
	OutputDir string

	Samples int
	Width   int
	Height  int

	DenoiseEnabled bool
	Denoiser       string

	// HDRIDir optionally holds environment maps (.hdr/.exr). A missing or
	// empty directory means renders keep whatever world is configured.
	HDRIDir string

	// OverrideWorld swaps in a random environment map for every camera even
	// when the scene already has a world.
	OverrideWorld bool

	// FloorObject optionally names an object hidden from renders taken from
	// below it.
	FloorObject string
}

// DefaultConfig mirrors the tool's stock render settings.
func DefaultConfig() Config {
	return Config{
		OutputDir:      "output",
		Samples:        128,
		Width:          512,
		Height:         512,
		DenoiseEnabled: true,
		Denoiser:       DenoiserOptiX,
	}
}
