package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
	"quotebuilder/store"
)

// HandleSettingsUpdate returns a handler that applies the discount, GST and
// advance controls to the working draft and recomputes the totals.
func HandleSettingsUpdate(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("settings: could not parse form: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("settings: load draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load quotation")
		}

		// Unchecked checkboxes are absent from the form, so presence is
		// the signal.
		data.ShowDiscount = e.Request.FormValue("showDiscount") != ""
		data.ShowGST = e.Request.FormValue("showGST") != ""

		if v := strings.TrimSpace(e.Request.FormValue("discount")); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				data.Discount = f
			}
		} else {
			data.Discount = 0
		}
		if v := strings.TrimSpace(e.Request.FormValue("gst")); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				data.GST = f
			}
		} else {
			data.GST = 0
		}
		if v := strings.TrimSpace(e.Request.FormValue("advance")); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				data.Advance = f
			}
		} else {
			data.Advance = 0
		}

		data = services.Recompute(data)

		if err := drafts.Save(data); err != nil {
			log.Printf("settings: save draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quotation")
		}
		return renderWorkspace(e, data)
	}
}

// HandleQuoteReset returns a handler that discards the working draft and
// starts a fresh quotation with a new number and today's date.
func HandleQuoteReset(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		fresh := services.NewQuoteData(time.Now(), newRNG())
		if err := drafts.Save(fresh); err != nil {
			log.Printf("reset: save draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to reset quotation")
		}
		SetToast(e, "success", "Started a new quotation")
		return renderWorkspace(e, fresh)
	}
}

// HandleQuoteDuplicate returns a handler that copies the working draft into
// a new quotation: same client and items, fresh number and date.
func HandleQuoteDuplicate(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("duplicate: load draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load quotation")
		}

		copied := services.Duplicate(data, time.Now(), newRNG())
		if err := drafts.Save(copied); err != nil {
			log.Printf("duplicate: save draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quotation")
		}
		SetToast(e, "success", "Quotation duplicated as "+copied.Client.QuoteNumber)
		return renderWorkspace(e, copied)
	}
}
