package templates_test

import (
	"context"
	"strings"
	"testing"

	"quotebuilder/services"
	"quotebuilder/templates"
)

func sample() services.QuoteData {
	return services.Recompute(services.QuoteData{
		Client: services.ClientDetails{
			Name:        "Ravi Kumar",
			QuoteNumber: "INT-2026-042",
			QuoteDate:   "15/08/2026",
		},
		Items: []services.QuoteItem{
			{ID: "item-1", Description: "False ceiling", Quantity: 120, Unit: "sqft", Rate: 85, Total: 10200},
		},
		GST:     18,
		ShowGST: true,
	})
}

func TestPreviewDocument(t *testing.T) {
	var b strings.Builder
	doc := services.BuildDocument(sample())
	if err := templates.PreviewDocument(doc).Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := b.String()

	for _, frag := range []string{
		`id="quotation-document"`,
		"width:794px",
		"DEE PIESS",
		"INT-2026-042",
		"False ceiling",
		"₹10,200.00",
		"GST (18%)",
		"Grand Total",
		"ICICI Bank",
	} {
		if !strings.Contains(html, frag) {
			t.Errorf("preview missing %q", frag)
		}
	}
}

func TestPreviewDocument_EmptyState(t *testing.T) {
	var b strings.Builder
	doc := services.BuildDocument(services.QuoteData{})
	if err := templates.PreviewDocument(doc).Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := b.String()

	if !strings.Contains(html, services.EmptyItemsPlaceholder) {
		t.Errorf("empty state row missing")
	}
	if !strings.Contains(html, services.PlaceholderClientName) {
		t.Errorf("client placeholder missing")
	}
}

func TestPreviewDocument_EscapesClientInput(t *testing.T) {
	var b strings.Builder
	data := services.QuoteData{Client: services.ClientDetails{Name: `<script>alert("x")</script>`}}
	doc := services.BuildDocument(data)
	if err := templates.PreviewDocument(doc).Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(b.String(), "<script>alert") {
		t.Errorf("client name rendered unescaped")
	}
}

func TestBuilderPage(t *testing.T) {
	var b strings.Builder
	if err := templates.BuilderPage(sample()).Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := b.String()

	for _, frag := range []string{
		"<!DOCTYPE html>",
		`id="workspace"`,
		`hx-post="/quote/client"`,
		`hx-post="/quote/items"`,
		`hx-post="/quote/items/item-1"`,
		`hx-delete="/quote/items/item-1"`,
		`hx-post="/quote/items/item-1/clone"`,
		`hx-post="/quote/settings"`,
		`href="/quote/export/pdf"`,
		`href="/quote/share/whatsapp"`,
		"showToast",
	} {
		if !strings.Contains(html, frag) {
			t.Errorf("builder page missing %q", frag)
		}
	}
}

func TestWorkspace_UnitOptions(t *testing.T) {
	var b strings.Builder
	if err := templates.Workspace(sample()).Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := b.String()

	for _, unit := range services.ItemUnits {
		if !strings.Contains(html, `<option value="`+unit+`"`) {
			t.Errorf("unit option %q missing", unit)
		}
	}
}
