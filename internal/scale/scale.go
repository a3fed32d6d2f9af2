// Package scale fits rasters into a viewport bound while preserving
// aspect ratio.
package scale

import (
	"image"
	"math"

	"viewd/internal/log"
	"viewd/pkg/types"

	"github.com/nfnt/resize"
)

// Sink receives the original resolution of every raster passed through
// the scaler, before the scaled frame is handed to the display.
type Sink interface {
	OriginalResolution(cols, rows int)
}

// LogSink reports resolutions through the application log.
type LogSink struct{}

// OriginalResolution implements Sink.
func (LogSink) OriginalResolution(cols, rows int) {
	log.Info("\t%dx%d", cols, rows)
}

type nopSink struct{}

func (nopSink) OriginalResolution(int, int) {}

// Scaler computes uniformly scaled frames that fit inside a fixed
// bound. The bound is immutable for the life of the scaler.
type Scaler struct {
	bound types.Viewport
	sink  Sink
}

// New returns a scaler for the given bound. A nil sink disables
// resolution reporting.
func New(bound types.Viewport, sink Sink) *Scaler {
	if sink == nil {
		sink = nopSink{}
	}
	return &Scaler{bound: bound, sink: sink}
}

// Bound returns the viewport the scaler fits frames into.
func (s *Scaler) Bound() types.Viewport {
	return s.bound
}

// Fit scales src so it fits inside the bound with its aspect ratio
// preserved. Both dimensions are multiplied by the same ratio, the
// smaller of bound.cols/src.cols and bound.rows/src.rows.
//
// The ratio is deliberately not clamped at 1: an image smaller than the
// bound in both dimensions is upscaled to fill it rather than shown at
// native size.
func (s *Scaler) Fit(src image.Image) image.Image {
	b := src.Bounds()
	cols, rows := b.Dx(), b.Dy()

	s.sink.OriginalResolution(cols, rows)

	ratioCols := float64(s.bound.Cols) / float64(cols)
	ratioRows := float64(s.bound.Rows) / float64(rows)
	ratio := math.Min(ratioCols, ratioRows)

	outCols := uint(math.Round(float64(cols) * ratio))
	outRows := uint(math.Round(float64(rows) * ratio))

	return resize.Resize(outCols, outRows, src, resize.Bilinear)
}
