// Package pdf materializes rendered quotation markup into PDF bytes.
// Two interchangeable backends exist: a print backend that drives a
// headless Chrome page through its native PDF printer, and a raster
// backend that screenshots the page and assembles the capture into A4
// pages. Both honor the same page geometry so output is visually
// equivalent; any backend failure surfaces as MaterializationFailed and
// never as partial bytes.
package pdf

import "context"

// PageOptions fixes the page geometry shared by all backends.
type PageOptions struct {
	WidthInches  float64
	HeightInches float64
	MarginInches float64

	PrintBackground bool

	// DeviceScale is the rasterization scale factor (raster backend only).
	DeviceScale float64
}

// A4 returns the standard page setup: A4 portrait, 0.4 in margins,
// backgrounds printed, 2x raster scale.
func A4() PageOptions {
	return PageOptions{
		WidthInches:     8.27,
		HeightInches:    11.69,
		MarginInches:    0.4,
		PrintBackground: true,
		DeviceScale:     2,
	}
}

// Materializer converts self-contained HTML markup into PDF bytes.
type Materializer interface {
	Materialize(ctx context.Context, html string, opts PageOptions) ([]byte, error)
}
