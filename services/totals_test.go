package services

import (
	"math"
	"math/rand"
	"testing"
)

func items(totals ...float64) []QuoteItem {
	out := make([]QuoteItem, len(totals))
	for i, tot := range totals {
		out[i] = QuoteItem{ID: "i", Description: "x", Quantity: 1, Unit: "nos", Rate: tot, Total: tot}
	}
	return out
}

func TestRecompute_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		data          QuoteData
		subtotal      float64
		discountAmt   float64
		taxAmount     float64
		grandTotal    float64
		balance       float64
	}{
		{
			name:       "empty quote",
			data:       QuoteData{},
			subtotal:   0, grandTotal: 0, balance: 0,
		},
		{
			name:     "plain sum, no charges",
			data:     QuoteData{Items: items(1000, 2500)},
			subtotal: 3500, grandTotal: 3500, balance: 3500,
		},
		{
			name:        "discount shown",
			data:        QuoteData{Items: items(10000), Discount: 10, ShowDiscount: true},
			subtotal:    10000,
			discountAmt: 1000,
			grandTotal:  9000,
			balance:     9000,
		},
		{
			name:       "gst shown",
			data:       QuoteData{Items: items(10000), GST: 18, ShowGST: true},
			subtotal:   10000,
			taxAmount:  1800,
			grandTotal: 11800,
			balance:    11800,
		},
		{
			name:        "gst applies after discount",
			data:        QuoteData{Items: items(10000), Discount: 10, ShowDiscount: true, GST: 18, ShowGST: true},
			subtotal:    10000,
			discountAmt: 1000,
			taxAmount:   1620, // 18% of 9000, not of 10000
			grandTotal:  10620,
			balance:     10620,
		},
		{
			name:       "hidden discount contributes nothing",
			data:       QuoteData{Items: items(10000), Discount: 10, ShowDiscount: false},
			subtotal:   10000,
			grandTotal: 10000,
			balance:    10000,
		},
		{
			name:       "hidden gst contributes nothing",
			data:       QuoteData{Items: items(10000), GST: 18, ShowGST: false},
			subtotal:   10000,
			grandTotal: 10000,
			balance:    10000,
		},
		{
			name:       "advance reduces balance",
			data:       QuoteData{Items: items(10000), Advance: 4000},
			subtotal:   10000,
			grandTotal: 10000,
			balance:    6000,
		},
		{
			name:       "advance above grand total yields negative balance",
			data:       QuoteData{Items: items(1000), Advance: 1500},
			subtotal:   1000,
			grandTotal: 1000,
			balance:    -500,
		},
		{
			name:       "negative advance raises balance",
			data:       QuoteData{Items: items(1000), Advance: -200},
			subtotal:   1000,
			grandTotal: 1000,
			balance:    1200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recompute(tt.data)
			if got.Subtotal != tt.subtotal {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.subtotal)
			}
			if got.DiscountAmt != tt.discountAmt {
				t.Errorf("DiscountAmt = %v, want %v", got.DiscountAmt, tt.discountAmt)
			}
			if got.TaxAmount != tt.taxAmount {
				t.Errorf("TaxAmount = %v, want %v", got.TaxAmount, tt.taxAmount)
			}
			if got.GrandTotal != tt.grandTotal {
				t.Errorf("GrandTotal = %v, want %v", got.GrandTotal, tt.grandTotal)
			}
			if got.Balance != tt.balance {
				t.Errorf("Balance = %v, want %v", got.Balance, tt.balance)
			}
		})
	}
}

func TestRecompute_OnlyGrandTotalRounded(t *testing.T) {
	data := Recompute(QuoteData{
		Items:        items(100.55),
		Discount:     3,
		ShowDiscount: true,
		GST:          18,
		ShowGST:      true,
	})

	// Intermediate amounts keep their fractional paise.
	if data.DiscountAmt == math.Round(data.DiscountAmt) {
		t.Errorf("DiscountAmt %v was rounded", data.DiscountAmt)
	}
	if data.TaxAmount == math.Round(data.TaxAmount) {
		t.Errorf("TaxAmount %v was rounded", data.TaxAmount)
	}
	if data.GrandTotal != math.Round(data.GrandTotal) {
		t.Errorf("GrandTotal %v is not a whole rupee", data.GrandTotal)
	}

	want := math.Round(data.Subtotal - data.DiscountAmt + data.TaxAmount)
	if data.GrandTotal != want {
		t.Errorf("GrandTotal = %v, want %v", data.GrandTotal, want)
	}
}

func TestRecompute_DoesNotTouchInputs(t *testing.T) {
	data := QuoteData{
		Client: ClientDetails{Name: "Ravi", QuoteNumber: "INT-2026-007"},
		Items:  items(500),
		// Stale derived values that must be overwritten, not trusted.
		Subtotal:   999,
		GrandTotal: 999,
	}

	got := Recompute(data)

	if got.Client != data.Client {
		t.Errorf("client details changed: %+v", got.Client)
	}
	if len(got.Items) != 1 || got.Items[0] != data.Items[0] {
		t.Errorf("items changed: %+v", got.Items)
	}
	if got.Subtotal != 500 || got.GrandTotal != 500 {
		t.Errorf("stale derived values survived: subtotal=%v grand=%v", got.Subtotal, got.GrandTotal)
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		data := QuoteData{
			Discount:     rnd.Float64() * 50,
			ShowDiscount: rnd.Intn(2) == 0,
			GST:          rnd.Float64() * 28,
			ShowGST:      rnd.Intn(2) == 0,
			Advance:      rnd.Float64()*50000 - 10000,
		}
		for j := rnd.Intn(6); j > 0; j-- {
			qty := rnd.Float64() * 100
			rate := rnd.Float64() * 5000
			data.Items = append(data.Items, QuoteItem{
				Quantity: qty, Rate: rate, Total: ItemTotal(qty, rate),
			})
		}

		once := Recompute(data)
		twice := Recompute(once)

		if once.Subtotal != twice.Subtotal || once.DiscountAmt != twice.DiscountAmt ||
			once.TaxAmount != twice.TaxAmount || once.GrandTotal != twice.GrandTotal ||
			once.Balance != twice.Balance {
			t.Fatalf("iteration %d: Recompute not idempotent:\nonce:  %+v\ntwice: %+v", i, once, twice)
		}
		if once.GrandTotal != math.Round(once.GrandTotal) {
			t.Fatalf("iteration %d: grand total %v is not a whole rupee", i, once.GrandTotal)
		}
	}
}

func TestItemTotal(t *testing.T) {
	if got := ItemTotal(12, 85.5); got != 1026 {
		t.Errorf("ItemTotal(12, 85.5) = %v, want 1026", got)
	}
	if got := ItemTotal(0, 100); got != 0 {
		t.Errorf("ItemTotal(0, 100) = %v, want 0", got)
	}
}
