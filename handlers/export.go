package handlers

import (
	"fmt"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
	"quotebuilder/store"
)

// pdfExportInFlight guards the raster PDF pipeline: rendering and encoding
// a multi-page document is expensive, so overlapping export requests are
// rejected instead of queued.
var pdfExportInFlight atomic.Bool

// HandleQuoteExportPDF returns a handler that downloads the quotation as a
// paginated PDF built from page-sized raster slices of the document.
func HandleQuoteExportPDF(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !pdfExportInFlight.CompareAndSwap(false, true) {
			return ErrorToast(e, http.StatusConflict, "A PDF export is already in progress")
		}
		defer pdfExportInFlight.Store(false)

		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("export_pdf: load draft: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotation")
		}

		doc := services.BuildDocument(data)
		pdfBytes, err := services.ExportPaginated(doc, services.DocumentRasterizer{}, services.NewPDFPageEncoder(), services.RasterOptions{Scale: 2})
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.QuotePDFFileName(data)))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportPrint returns a handler that downloads the quotation as
// a vector PDF. Unlike the raster export, text stays selectable, so this
// variant suits printing.
func HandleQuoteExportPrint(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("export_print: load draft: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotation")
		}

		pdfBytes, err := services.GenerateQuotePDF(services.BuildDocument(data))
		if err != nil {
			log.Printf("export_print: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.QuotePDFFileName(data)))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel returns a handler that downloads the quotation as
// an Excel workbook.
func HandleQuoteExportExcel(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("export_excel: load draft: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotation")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.QuoteExcelFileName(data)))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
