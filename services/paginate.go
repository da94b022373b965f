package services

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// RasterOptions controls how the document is captured before slicing.
// Zero values select the canonical capture: scale 1, A4 logical width,
// white background.
type RasterOptions struct {
	// Scale multiplies the logical pixel size of the capture.
	Scale int
	// Width is the logical capture width in pixels.
	Width int
	// Background fills the capture surface before drawing.
	Background color.Color
	// BeforeCapture may mutate the document just before rasterization,
	// e.g. to strip preview-only decoration.
	BeforeCapture func(*QuoteDocument)
}

func (o RasterOptions) withDefaults() RasterOptions {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Width <= 0 {
		o.Width = A4WidthPx
	}
	if o.Background == nil {
		o.Background = color.White
	}
	return o
}

// Rasterizer turns a document layout into a single tall raster image at
// the requested scale and width.
type Rasterizer interface {
	Rasterize(doc QuoteDocument, opts RasterOptions) (image.Image, error)
}

// PageEncoder accepts successive page-sized image bands and produces the
// final downloadable artifact.
type PageEncoder interface {
	AddPage(band image.Image) error
	Close() ([]byte, error)
}

// PageCount returns the number of fixed-height pages needed to hold a
// raster of the given height.
func PageCount(height, pageHeight int) int {
	if height <= 0 || pageHeight <= 0 {
		return 0
	}
	return (height + pageHeight - 1) / pageHeight
}

// ExportPaginated captures the document through the rasterizer, slices the
// raster into successive A4-height bands and feeds each band to the
// encoder as one page. Every pixel of the capture lands on exactly one
// page; the last band may be shorter than a full page. Failures from
// either collaborator are returned, never panicked.
func ExportPaginated(doc QuoteDocument, r Rasterizer, enc PageEncoder, opts RasterOptions) ([]byte, error) {
	opts = opts.withDefaults()
	if opts.BeforeCapture != nil {
		opts.BeforeCapture(&doc)
	}

	raster, err := r.Rasterize(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("rasterize document: %w", err)
	}

	bounds := raster.Bounds()
	pageHeight := A4HeightPx * opts.Scale

	for top := bounds.Min.Y; top < bounds.Max.Y; top += pageHeight {
		bottom := top + pageHeight
		if bottom > bounds.Max.Y {
			bottom = bounds.Max.Y
		}
		band := imaging.Crop(raster, image.Rect(bounds.Min.X, top, bounds.Max.X, bottom))
		if err := enc.AddPage(band); err != nil {
			return nil, fmt.Errorf("encode page: %w", err)
		}
	}

	out, err := enc.Close()
	if err != nil {
		return nil, fmt.Errorf("finalize document: %w", err)
	}
	return out, nil
}
