package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/store"
)

// HandleQuotePage returns a handler that renders the quotation builder
// with the current working draft.
func HandleQuotePage(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("quote_page: load draft: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotation")
		}
		return renderWorkspace(e, data)
	}
}

// HandleClientUpdate returns a handler that updates the client details of
// the working draft from the submitted form.
func HandleClientUpdate(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("client_update: could not parse form: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("client_update: load draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load quotation")
		}

		data.Client.Name = strings.TrimSpace(e.Request.FormValue("name"))
		data.Client.Address = strings.TrimSpace(e.Request.FormValue("address"))
		data.Client.Phone = strings.TrimSpace(e.Request.FormValue("phone"))
		data.Client.ProjectType = strings.TrimSpace(e.Request.FormValue("projectType"))
		if v := strings.TrimSpace(e.Request.FormValue("quoteNo")); v != "" {
			data.Client.QuoteNumber = v
		}
		if v := strings.TrimSpace(e.Request.FormValue("date")); v != "" {
			data.Client.QuoteDate = v
		}

		if err := drafts.Save(data); err != nil {
			log.Printf("client_update: save draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quotation")
		}
		return renderWorkspace(e, data)
	}
}
