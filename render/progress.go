package render

import "log"

// A Progress receives batch progress: Begin with the camera count, Update
// after each frame with the number completed, End when the batch stops
// (including on error).
type Progress interface {
	Begin(total int)
	Update(done int)
	End()
}

// LogProgress reports progress through the standard logger.
type LogProgress struct {
	total int
}

func (p *LogProgress) Begin(total int) { p.total = total }

func (p *LogProgress) Update(done int) {
	log.Printf("Rendered image %d/%d...", done, p.total)
}

func (p *LogProgress) End() {}

// NopProgress discards progress reports.
type NopProgress struct{}

func (NopProgress) Begin(int)  {}
func (NopProgress) Update(int) {}
func (NopProgress) End()       {}
