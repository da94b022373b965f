// Package services contains the quotation domain logic: the quote data
// model, totals calculation, line item operations, project file
// serialization and document export.
package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Units of measure allowed for a line item.
var ItemUnits = []string{"sqft", "rft", "nos", "set", "ls"}

// DefaultUnit is applied when an item is added without a unit.
const DefaultUnit = "sqft"

// ValidUnit reports whether u is one of the allowed units of measure.
func ValidUnit(u string) bool {
	for _, v := range ItemUnits {
		if v == u {
			return true
		}
	}
	return false
}

// QuoteItem is a single priced row of a quotation. Total is a cached
// derived value (Quantity * Rate) and is never a source of truth.
type QuoteItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	Total       float64 `json:"total"`
}

// ClientDetails holds the client block of a quotation plus the quote
// identity fields (number and date), which are generated once at creation
// and regenerated only on duplicate.
type ClientDetails struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType"`
	QuoteDate   string `json:"quoteDate"`
	QuoteNumber string `json:"quoteNumber"`
}

// QuoteData is the aggregate quotation record. The six trailing fields
// (Subtotal through Balance) are derived and owned by Recompute.
type QuoteData struct {
	Client       ClientDetails `json:"client"`
	Items        []QuoteItem   `json:"items"`
	Discount     float64       `json:"discount"` // percentage
	ShowDiscount bool          `json:"showDiscount"`
	GST          float64       `json:"gst"` // percentage
	ShowGST      bool          `json:"showGST"`
	Advance      float64       `json:"advance"`
	Subtotal     float64       `json:"subtotal"`
	DiscountAmt  float64       `json:"discountAmount"`
	TaxAmount    float64       `json:"taxAmount"`
	GrandTotal   float64       `json:"grandTotal"`
	Balance      float64       `json:"balance"`
}

// IDSource produces opaque unique item ids. Injected so tests can supply
// deterministic ids.
type IDSource interface {
	Next() string
}

// UUIDSource is the production IDSource.
type UUIDSource struct{}

func (UUIDSource) Next() string {
	return uuid.NewString()
}

// quoteDateLayout is the Indian short date format used on the document.
const quoteDateLayout = "02/01/2006"

// GenerateQuoteNumber builds a quote number of the form INT-2026-042:
// the 4-digit year followed by a zero-padded 3-digit random suffix.
func GenerateQuoteNumber(now time.Time, rnd *rand.Rand) string {
	return fmt.Sprintf("INT-%d-%03d", now.Year(), rnd.Intn(1000))
}

// NewQuoteData returns a fresh quotation: no items, GST 18% shown,
// discount hidden, quote number and date generated from now.
func NewQuoteData(now time.Time, rnd *rand.Rand) QuoteData {
	data := QuoteData{
		Client: ClientDetails{
			QuoteDate:   now.Format(quoteDateLayout),
			QuoteNumber: GenerateQuoteNumber(now, rnd),
		},
		Items:        []QuoteItem{},
		Discount:     0,
		ShowDiscount: false,
		GST:          18,
		ShowGST:      true,
	}
	return Recompute(data)
}

// Duplicate returns a copy of data with a fresh quote number and date.
// Client details, items and financial settings are preserved.
func Duplicate(data QuoteData, now time.Time, rnd *rand.Rand) QuoteData {
	dup := data
	dup.Items = append([]QuoteItem(nil), data.Items...)
	dup.Client.QuoteNumber = GenerateQuoteNumber(now, rnd)
	dup.Client.QuoteDate = now.Format(quoteDateLayout)
	return dup
}
