package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quotebuilder/store"
	"quotebuilder/testhelpers"
)

func TestHandleWhatsAppShare(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	testhelpers.SaveDraft(t, drafts, testhelpers.SampleQuote(t))

	req := httptest.NewRequest(http.MethodGet, "/quote/share/whatsapp", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleWhatsAppShare(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}

	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://wa.me/919876543210?text=") {
		t.Errorf("Location = %q", loc)
	}
	if strings.Contains(loc, "+") {
		t.Errorf("Location uses + for spaces: %q", loc)
	}
	if !strings.Contains(loc, "INT-2026-042") {
		t.Errorf("Location missing quote number: %q", loc)
	}
}

func TestHandleWhatsAppShare_NoPhone(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	data := testhelpers.SampleQuote(t)
	data.Client.Phone = ""
	testhelpers.SaveDraft(t, drafts, data)

	req := httptest.NewRequest(http.MethodGet, "/quote/share/whatsapp", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleWhatsAppShare(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://wa.me/?text=") {
		t.Errorf("Location = %q, want no destination number", loc)
	}
}
