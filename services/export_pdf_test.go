package services

import (
	"bytes"
	"testing"
)

func assertIsPDF(t *testing.T, pdfBytes []byte) {
	t.Helper()
	if len(pdfBytes) == 0 {
		t.Fatalf("generated PDF is empty")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", pdfBytes[:min(8, len(pdfBytes))])
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	pdfBytes, err := GenerateQuotePDF(BuildDocument(sampleQuote()))
	if err != nil {
		t.Fatalf("GenerateQuotePDF: %v", err)
	}
	assertIsPDF(t, pdfBytes)
}

func TestGenerateQuotePDF_EmptyQuote(t *testing.T) {
	pdfBytes, err := GenerateQuotePDF(BuildDocument(QuoteData{}))
	if err != nil {
		t.Fatalf("GenerateQuotePDF on empty quote: %v", err)
	}
	assertIsPDF(t, pdfBytes)
}

func TestQuotePDFFileName(t *testing.T) {
	tests := []struct {
		name   string
		data   QuoteData
		expect string
	}{
		{
			"client name",
			QuoteData{Client: ClientDetails{Name: "Rahul Sharma", QuoteNumber: "INT-2026-042"}},
			"Quotation_Rahul-Sharma_INT-2026-042.pdf",
		},
		{
			"empty client name",
			QuoteData{Client: ClientDetails{QuoteNumber: "INT-2026-007"}},
			"Quotation_Client_INT-2026-007.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuotePDFFileName(tt.data); got != tt.expect {
				t.Errorf("QuotePDFFileName = %q, want %q", got, tt.expect)
			}
		})
	}
}
