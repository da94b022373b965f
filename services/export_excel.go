package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel workbook for a quotation: client
// block, items table and the conditional totals breakdown. Returns the
// file contents as a byte slice.
func GenerateQuoteExcel(data QuoteData) ([]byte, error) {
	doc := BuildDocument(data)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotation"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through E).
	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 48, 12, 16, 16}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", Company.Name+" — Quotation")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge quote no: %w", err)
	}
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Quote No: %s    Date: %s", doc.QuoteNumber, doc.QuoteDate))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge client: %w", err)
	}
	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Client: %s    Project: %s", doc.Client.Name, doc.Client.ProjectType))
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Column headers (row 5) ──────────────────────────────────────────

	headers := []string{"S.No", "Description", "Qty", "Rate", "Amount"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Item rows (starting row 6) ──────────────────────────────────────

	rowNum := 6
	if doc.NoItems {
		rowStr := fmt.Sprintf("%d", rowNum)
		if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
			return nil, fmt.Errorf("merge empty row: %w", err)
		}
		f.SetCellValue(sheetName, "A"+rowStr, EmptyItemsPlaceholder)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)
		rowNum++
	}
	for _, r := range doc.Rows {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "A"+rowStr, r.SNo)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Description))
		f.SetCellValue(sheetName, "C"+rowStr, r.Qty)
		f.SetCellValue(sheetName, "D"+rowStr, r.Rate)
		f.SetCellValue(sheetName, "E"+rowStr, r.Amount)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)
		rowNum++
	}

	// ── Totals rows ─────────────────────────────────────────────────────

	rowNum++
	for _, line := range doc.Totals {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "D"+rowStr, line.Label+":")
		f.SetCellStyle(sheetName, "D"+rowStr, "D"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "E"+rowStr, line.Value)
		f.SetCellStyle(sheetName, "E"+rowStr, "E"+rowStr, summaryValueStyle)
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}

// QuoteExcelFileName derives the Excel download name from the client name
// and quote number.
func QuoteExcelFileName(data QuoteData) string {
	name := data.Client.Name
	if name == "" {
		name = "Project"
	}
	return fmt.Sprintf("Quotation_%s_%s.xlsx", sanitizeFilename(name), data.Client.QuoteNumber)
}
