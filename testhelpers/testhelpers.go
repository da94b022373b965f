// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"quotebuilder/collections"
	"quotebuilder/services"
	"quotebuilder/store"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// SampleQuote returns a quotation with a client and two items, recomputed.
func SampleQuote(t *testing.T) services.QuoteData {
	t.Helper()

	data := services.QuoteData{
		Client: services.ClientDetails{
			Name:        "Ravi Kumar",
			Address:     "12 Jubilee Hills, Hyderabad",
			Phone:       "9876543210",
			ProjectType: "Interior Work",
			QuoteNumber: "INT-2026-042",
			QuoteDate:   "15/08/2026",
		},
		Items: []services.QuoteItem{
			{ID: "item-1", Description: "False ceiling", Quantity: 120, Unit: "sqft", Rate: 85, Total: 10200},
			{ID: "item-2", Description: "TV unit", Quantity: 1, Unit: "nos", Rate: 25000, Total: 25000},
		},
		GST:     18,
		ShowGST: true,
	}
	return services.Recompute(data)
}

// SaveDraft stores data as the working draft, failing the test on error.
func SaveDraft(t *testing.T, drafts store.DraftStore, data services.QuoteData) {
	t.Helper()

	if err := drafts.Save(data); err != nil {
		t.Fatalf("failed to save draft: %v", err)
	}
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
