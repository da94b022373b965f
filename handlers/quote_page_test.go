package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quotebuilder/store"
	"quotebuilder/testhelpers"
)

func TestHandleQuotePage_RendersDraft(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	testhelpers.SaveDraft(t, drafts, testhelpers.SampleQuote(t))

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuotePage(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"<!DOCTYPE html>",
		"Ravi Kumar",
		"INT-2026-042",
		"False ceiling",
		"₹35,200.00", // subtotal readout
	)
}

func TestHandleQuotePage_CreatesFreshDraft(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuotePage(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, err := drafts.Load()
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	if saved == nil {
		t.Fatalf("fresh draft was not persisted")
	}
	if saved.GST != 18 || !saved.ShowGST {
		t.Errorf("fresh draft defaults wrong: %+v", saved)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No items added yet")
}

func TestHandleQuotePage_HTMXReturnsFragment(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	testhelpers.SaveDraft(t, drafts, testhelpers.SampleQuote(t))

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuotePage(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Errorf("HTMX request returned the full page shell")
	}
	testhelpers.AssertHTMLContains(t, body, `id="workspace"`, "Ravi Kumar")
}

func TestHandleClientUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	testhelpers.SaveDraft(t, drafts, testhelpers.SampleQuote(t))

	form := url.Values{
		"name":        {"Meena Reddy"},
		"address":     {"Plot 9, Gachibowli"},
		"phone":       {"9000012345"},
		"projectType": {"Modular Kitchen"},
		"quoteNo":     {"INT-2026-099"},
		"date":        {"20/08/2026"},
	}
	req := httptest.NewRequest(http.MethodPost, "/quote/client", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleClientUpdate(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, _ := drafts.Load()
	if saved.Client.Name != "Meena Reddy" || saved.Client.ProjectType != "Modular Kitchen" {
		t.Errorf("client not updated: %+v", saved.Client)
	}
	if saved.Client.QuoteNumber != "INT-2026-099" {
		t.Errorf("quote number not updated: %q", saved.Client.QuoteNumber)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Meena Reddy")
}

func TestHandleClientUpdate_BlankIdentityFieldsKept(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	testhelpers.SaveDraft(t, drafts, testhelpers.SampleQuote(t))

	form := url.Values{"name": {"Meena Reddy"}}
	req := httptest.NewRequest(http.MethodPost, "/quote/client", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleClientUpdate(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, _ := drafts.Load()
	if saved.Client.QuoteNumber != "INT-2026-042" || saved.Client.QuoteDate != "15/08/2026" {
		t.Errorf("blank quote identity overwrote stored values: %+v", saved.Client)
	}
}
