package services

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	marotoimage "github.com/johnfercher/maroto/v2/pkg/components/image"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// pageBodyHeightMM is the row height available for one image band on an
// A4 page after the default margins. Kept below the printable limit so a
// band never triggers an implicit page break.
const pageBodyHeightMM = 267

// PDFPageEncoder is the built-in PageEncoder: each band becomes one A4
// page of a PDF built with maroto.
type PDFPageEncoder struct {
	bands [][]byte
}

// NewPDFPageEncoder returns an encoder ready to accept bands.
func NewPDFPageEncoder() *PDFPageEncoder {
	return &PDFPageEncoder{}
}

// AddPage encodes the band as PNG and queues it as the next page.
func (e *PDFPageEncoder) AddPage(band image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, band); err != nil {
		return fmt.Errorf("encode band: %w", err)
	}
	e.bands = append(e.bands, buf.Bytes())
	return nil
}

// Close assembles the queued pages into the final PDF.
func (e *PDFPageEncoder) Close() ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	for _, band := range e.bands {
		m.AddPages(
			page.New().Add(
				row.New(pageBodyHeightMM).Add(
					col.New(12).Add(
						marotoimage.NewFromBytes(band, extension.Png, props.Rect{
							Center:  true,
							Percent: 100,
						}),
					),
				),
			),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}
