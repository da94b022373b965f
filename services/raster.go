package services

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Capture geometry, mirroring the on-screen document padding.
const (
	rasterMarginX   = 45
	rasterMarginY   = 38
	rasterLineH     = 18
	rasterDescWidth = 48 // characters of the description column
)

// DocumentRasterizer renders a QuoteDocument onto a plain raster surface.
// It is the built-in Rasterizer implementation; the layout grows downward
// as needed, so the capture height is unbounded while the width is fixed.
type DocumentRasterizer struct{}

func (DocumentRasterizer) Rasterize(doc QuoteDocument, opts RasterOptions) (image.Image, error) {
	opts = opts.withDefaults()

	lines := documentLines(doc)

	height := 2*rasterMarginY + len(lines)*rasterLineH
	if height < A4HeightPx {
		height = A4HeightPx
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(rasterMarginX, rasterMarginY+(i+1)*rasterLineH)
		drawer.DrawString(line)
	}

	if opts.Scale > 1 {
		return imaging.Resize(img, opts.Width*opts.Scale, height*opts.Scale, imaging.NearestNeighbor), nil
	}
	return img, nil
}

// documentLines flattens the layout model into the text lines drawn on the
// capture surface, top to bottom in document order.
func documentLines(doc QuoteDocument) []string {
	var lines []string

	lines = append(lines,
		doc.Company.Name,
		doc.Company.Tagline,
		doc.Company.Address,
		"GST: "+doc.Company.GSTIN,
		"Ph: "+doc.Company.Phone,
		"",
		doc.Title,
		"Quote No: "+doc.QuoteNumber,
		"Date: "+doc.QuoteDate,
		"Valid Till: "+doc.Validity,
		"",
		"CLIENT DETAILS",
		doc.Client.Name,
		doc.Client.Address,
		doc.Client.Phone,
		"Project: "+doc.Client.ProjectType,
		"",
	)

	lines = append(lines, tableLine("S.No", "Description", "Qty", "Rate", "Amount"))
	if doc.NoItems {
		lines = append(lines, EmptyItemsPlaceholder)
	}
	for _, row := range doc.Rows {
		lines = append(lines, tableLine(fmt.Sprintf("%d", row.SNo), row.Description, row.Qty, row.Rate, row.Amount))
	}
	lines = append(lines, "")

	for _, total := range doc.Totals {
		lines = append(lines, fmt.Sprintf("%*s  %s", rasterDescWidth, total.Label, total.Value))
	}
	lines = append(lines, "")

	lines = append(lines, "TERMS & CONDITIONS")
	for i, term := range doc.Terms {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, term))
	}
	lines = append(lines, "",
		"BANK DETAILS",
		"Bank: "+doc.Bank.BankName,
		"A/c Name: "+doc.Bank.AccountName,
		"A/c No: "+doc.Bank.AccountNumber,
		"IFSC: "+doc.Bank.IFSC,
		"PhonePe: "+doc.Bank.PhonePe+"  G-Pay: "+doc.Bank.GooglePay,
		"",
		doc.Disclaimer,
		"____________________",
		doc.Signature,
	)

	return lines
}

// tableLine formats one items-table line in fixed columns.
func tableLine(sno, desc, qty, rate, amount string) string {
	if r := []rune(desc); len(r) > rasterDescWidth {
		desc = string(r[:rasterDescWidth-1]) + "…"
	}
	return fmt.Sprintf("%-5s %-*s %10s %14s %14s", sno, rasterDescWidth, desc, qty, rate, amount)
}
