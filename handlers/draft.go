package handlers

import (
	"math/rand"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
	"quotebuilder/store"
	"quotebuilder/templates"
)

// ids generates item identifiers. Tests may swap it for a deterministic source.
var ids services.IDSource = services.UUIDSource{}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// loadDraft returns the stored working draft, creating and persisting a
// fresh quotation when none exists yet.
func loadDraft(drafts store.DraftStore) (services.QuoteData, error) {
	data, err := drafts.Load()
	if err != nil {
		return services.QuoteData{}, err
	}
	if data != nil {
		return *data, nil
	}

	fresh := services.NewQuoteData(time.Now(), newRNG())
	if err := drafts.Save(fresh); err != nil {
		return services.QuoteData{}, err
	}
	return fresh, nil
}

// renderWorkspace writes the builder back to the client: the workspace
// fragment for HTMX requests, the full page otherwise.
func renderWorkspace(e *core.RequestEvent, data services.QuoteData) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		return templates.Workspace(data).Render(e.Request.Context(), e.Response)
	}
	return templates.BuilderPage(data).Render(e.Request.Context(), e.Response)
}
