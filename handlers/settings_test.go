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

func TestHandleSettingsUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	testhelpers.SaveDraft(t, drafts, testhelpers.SampleQuote(t))

	req, rec := postForm(t, "/quote/settings", url.Values{
		"showDiscount": {"1"},
		"discount":     {"10"},
		"showGST":      {"1"},
		"gst":          {"18"},
		"advance":      {"5000"},
	})
	e := newTestRequestEvent(app, req, rec)

	if err := HandleSettingsUpdate(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, _ := drafts.Load()
	if !saved.ShowDiscount || saved.Discount != 10 {
		t.Errorf("discount settings = %v shown=%v", saved.Discount, saved.ShowDiscount)
	}
	if saved.Advance != 5000 {
		t.Errorf("Advance = %v", saved.Advance)
	}
	// 35200 - 3520 = 31680; +18% = 37382.4 → 37382
	if saved.GrandTotal != 37382 {
		t.Errorf("GrandTotal = %v, want 37382", saved.GrandTotal)
	}
	if saved.Balance != 32382 {
		t.Errorf("Balance = %v, want 32382", saved.Balance)
	}
}

func TestHandleSettingsUpdate_UncheckedTogglesClear(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	data := testhelpers.SampleQuote(t)
	data.ShowDiscount, data.Discount = true, 10
	testhelpers.SaveDraft(t, drafts, data)

	// Checkboxes absent: both toggles must come back off.
	req, rec := postForm(t, "/quote/settings", url.Values{
		"discount": {"10"},
		"gst":      {"18"},
	})
	e := newTestRequestEvent(app, req, rec)

	if err := HandleSettingsUpdate(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, _ := drafts.Load()
	if saved.ShowDiscount || saved.ShowGST {
		t.Errorf("toggles not cleared: discount=%v gst=%v", saved.ShowDiscount, saved.ShowGST)
	}
	if saved.Discount != 10 {
		t.Errorf("hidden discount percentage should survive: %v", saved.Discount)
	}
	if saved.GrandTotal != 35200 {
		t.Errorf("GrandTotal = %v, want plain subtotal 35200", saved.GrandTotal)
	}
}

func TestHandleSettingsUpdate_NegativeValuesAccepted(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	testhelpers.SaveDraft(t, drafts, testhelpers.SampleQuote(t))

	req, rec := postForm(t, "/quote/settings", url.Values{"advance": {"-1000"}})
	e := newTestRequestEvent(app, req, rec)

	if err := HandleSettingsUpdate(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	saved, _ := drafts.Load()
	if saved.Advance != -1000 {
		t.Errorf("Advance = %v, want -1000", saved.Advance)
	}
	if saved.Balance != saved.GrandTotal+1000 {
		t.Errorf("Balance = %v, want %v", saved.Balance, saved.GrandTotal+1000)
	}
}

func TestHandleQuoteReset(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	testhelpers.SaveDraft(t, drafts, testhelpers.SampleQuote(t))

	req := httptest.NewRequest(http.MethodPost, "/quote/reset", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteReset(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, _ := drafts.Load()
	if len(saved.Items) != 0 {
		t.Errorf("reset kept %d items", len(saved.Items))
	}
	if saved.Client.Name != "" {
		t.Errorf("reset kept client name %q", saved.Client.Name)
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "showToast") {
		t.Errorf("missing toast trigger")
	}
}

func TestHandleQuoteDuplicate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := store.NewMemoryStore()
	testhelpers.SaveDraft(t, drafts, testhelpers.SampleQuote(t))

	req := httptest.NewRequest(http.MethodPost, "/quote/duplicate", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteDuplicate(app, drafts)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, _ := drafts.Load()
	if saved.Client.Name != "Ravi Kumar" {
		t.Errorf("duplicate lost client: %q", saved.Client.Name)
	}
	if len(saved.Items) != 2 {
		t.Errorf("duplicate lost items: %d", len(saved.Items))
	}
}
