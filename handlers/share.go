package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
	"quotebuilder/store"
)

// HandleWhatsAppShare returns a handler that redirects to a wa.me link
// carrying the quotation summary, addressed to the client's phone number
// when one is set.
func HandleWhatsAppShare(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("share: load draft: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotation")
		}

		phone := services.NormalizePhone(data.Client.Phone)
		url := services.WhatsAppShareURL(phone, services.SummaryText(data))
		return e.Redirect(http.StatusFound, url)
	}
}
