package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// QuotePDFFileName derives the PDF download name from the client name and
// quote number, e.g. Quotation_Rahul-Sharma_INT-2026-042.pdf.
func QuotePDFFileName(data QuoteData) string {
	name := data.Client.Name
	if name == "" {
		name = "Client"
	}
	return fmt.Sprintf("Quotation_%s_%s.pdf", sanitizeFilename(name), data.Client.QuoteNumber)
}

// GenerateQuotePDF creates the print-quality vector PDF of a quotation
// using maroto/v2. The layout mirrors the on-screen document: header,
// client block, items table, totals, terms and bank details, signature.
func GenerateQuotePDF(doc QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(10).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, doc)
	addClientBlock(m, doc)
	addItemsTable(m, doc)
	addTotalsBlock(m, doc)
	addFooterBlock(m, doc)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}
	return out.GetBytes(), nil
}

// addQuoteHeader adds the issuer letterhead on the left and the document
// title with quote number, date and validity on the right.
func addQuoteHeader(m core.Maroto, doc QuoteDocument) {
	muted := &props.Color{Red: 120, Green: 120, Blue: 120}

	m.AddRows(
		row.New(9).Add(
			col.New(7).Add(
				text.New(doc.Company.Name, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(5).Add(
				text.New(doc.Title, props.Text{
					Size:  16,
					Style: fontstyle.Italic,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(5).Add(
			col.New(7).Add(
				text.New(doc.Company.Tagline, props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: muted}),
			),
			col.New(5).Add(
				text.New(fmt.Sprintf("Quote No: %s", doc.QuoteNumber), props.Text{Size: 8, Align: align.Right}),
			),
		),
	)

	m.AddRows(
		row.New(5).Add(
			col.New(7).Add(
				text.New(doc.Company.Address, props.Text{Size: 7, Align: align.Left, Color: muted}),
			),
			col.New(5).Add(
				text.New(fmt.Sprintf("Date: %s", doc.QuoteDate), props.Text{Size: 8, Align: align.Right}),
			),
		),
	)

	m.AddRows(
		row.New(5).Add(
			col.New(7).Add(
				text.New(fmt.Sprintf("GST: %s  |  Ph: %s", doc.Company.GSTIN, doc.Company.Phone), props.Text{Size: 7, Align: align.Left, Color: muted}),
			),
			col.New(5).Add(
				text.New(fmt.Sprintf("Valid Till: %s", doc.Validity), props.Text{Size: 8, Align: align.Right}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addClientBlock adds the client details with placeholder text already
// applied by BuildDocument.
func addClientBlock(m core.Maroto, doc QuoteDocument) {
	label := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 120, Green: 120, Blue: 120},
	}

	m.AddRows(
		row.New(5).Add(col.New(12).Add(text.New("CLIENT DETAILS", label))),
		row.New(6).Add(col.New(12).Add(text.New(doc.Client.Name, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}))),
		row.New(5).Add(col.New(12).Add(text.New(doc.Client.Address, props.Text{Size: 8, Align: align.Left}))),
		row.New(5).Add(col.New(12).Add(text.New(doc.Client.Phone, props.Text{Size: 8, Align: align.Left}))),
		row.New(5).Add(col.New(12).Add(text.New(fmt.Sprintf("Project: %s", doc.Client.ProjectType), props.Text{Size: 8, Style: fontstyle.Italic, Align: align.Left}))),
	)

	m.AddRows(row.New(3))
}

// addItemsTable adds the items table, or the empty-state placeholder row
// when the quotation has no items.
func addItemsTable(m core.Maroto, doc QuoteDocument) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := &props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New("S.No", headerText)).WithStyle(headerCell),
			col.New(5).Add(text.New("Description", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Qty", headerTextRight)).WithStyle(headerCell),
			col.New(2).Add(text.New("Rate", headerTextRight)).WithStyle(headerCell),
			col.New(2).Add(text.New("Amount", headerTextRight)).WithStyle(headerCell),
		),
	)

	if doc.NoItems {
		m.AddRows(
			row.New(10).Add(
				col.New(12).Add(text.New(EmptyItemsPlaceholder, props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Center,
					Color: &props.Color{Red: 160, Green: 160, Blue: 160},
				})),
			),
		)
	}

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	for i, r := range doc.Rows {
		bodyLeft := props.Text{Size: 7, Align: align.Left}
		bodyRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colSNo := col.New(1).Add(text.New(fmt.Sprintf("%d", r.SNo), bodyLeft))
		colDesc := col.New(5).Add(text.New(r.Description, bodyLeft))
		colQty := col.New(2).Add(text.New(r.Qty, bodyRight))
		colRate := col.New(2).Add(text.New(r.Rate, bodyRight))
		colAmount := col.New(2).Add(text.New(r.Amount, bodyRight))

		if cellStyle != nil {
			colSNo = colSNo.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colRate = colRate.WithStyle(cellStyle)
			colAmount = colAmount.WithStyle(cellStyle)
		}

		m.AddRows(row.New(6).Add(colSNo, colDesc, colQty, colRate, colAmount))
	}

	m.AddRows(row.New(3))
}

// addTotalsBlock adds the right-aligned totals. Which lines appear is
// decided by BuildDocument; the grand total line gets the dark banner.
func addTotalsBlock(m core.Maroto, doc QuoteDocument) {
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	grandCell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}
	green := &props.Color{Red: 5, Green: 150, Blue: 105}

	for _, line := range doc.Totals {
		labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
		valueStyle := props.Text{Size: 8, Align: align.Right}
		cell := summaryCell
		height := 6.0

		if line.Emphasis {
			labelStyle = props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: white}
			valueStyle = props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: white}
			cell = grandCell
			height = 8
		} else if line.Credit {
			valueStyle.Color = green
		}

		m.AddRows(
			row.New(height).Add(
				col.New(9).Add(text.New(line.Label, labelStyle)).WithStyle(cell),
				col.New(3).Add(text.New(line.Value, valueStyle)).WithStyle(cell),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addFooterBlock adds terms and bank details side by side, then the
// disclaimer and signature line.
func addFooterBlock(m core.Maroto, doc QuoteDocument) {
	sectionLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 120, Green: 120, Blue: 120},
	}
	small := props.Text{Size: 6.5, Align: align.Left, Color: &props.Color{Red: 100, Green: 100, Blue: 100}}

	m.AddRows(
		row.New(5).Add(
			col.New(7).Add(text.New("TERMS & CONDITIONS", sectionLabel)),
			col.New(5).Add(text.New("BANK DETAILS", sectionLabel)),
		),
	)

	bankLines := []string{
		fmt.Sprintf("Bank: %s", doc.Bank.BankName),
		fmt.Sprintf("A/c Name: %s", doc.Bank.AccountName),
		fmt.Sprintf("A/c No: %s", doc.Bank.AccountNumber),
		fmt.Sprintf("IFSC: %s", doc.Bank.IFSC),
		fmt.Sprintf("PhonePe: %s  |  G-Pay: %s", doc.Bank.PhonePe, doc.Bank.GooglePay),
	}

	rows := len(doc.Terms)
	if len(bankLines) > rows {
		rows = len(bankLines)
	}
	for i := 0; i < rows; i++ {
		term := ""
		if i < len(doc.Terms) {
			term = fmt.Sprintf("%d. %s", i+1, doc.Terms[i])
		}
		bank := ""
		if i < len(bankLines) {
			bank = bankLines[i]
		}
		m.AddRows(
			row.New(4).Add(
				col.New(7).Add(text.New(term, small)),
				col.New(5).Add(text.New(bank, small)),
			),
		)
	}

	m.AddRows(row.New(8))
	m.AddRows(
		row.New(5).Add(
			col.New(7).Add(text.New(doc.Disclaimer, props.Text{
				Size:  6,
				Style: fontstyle.Italic,
				Align: align.Left,
				Color: &props.Color{Red: 170, Green: 170, Blue: 170},
			})),
			col.New(5).Add(text.New("____________________________", props.Text{
				Size:  8,
				Align: align.Center,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
		row.New(5).Add(
			col.New(7),
			col.New(5).Add(text.New(doc.Signature, props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: align.Center,
				Color: &props.Color{Red: 120, Green: 120, Blue: 120},
			})),
		),
	)
}
