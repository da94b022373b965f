package services

import "math"

// Recompute derives the six monetary aggregate fields from the mutable
// inputs (items, discount, gst, advance and their show flags). It is pure
// and idempotent: client details and item contents are never touched, and
// calling it twice yields the same record.
//
// Ordering: discount applies to the subtotal, tax applies to the
// post-discount base. Only the grand total is rounded (to the nearest
// rupee); discount and tax amounts carry fractional paise forward.
func Recompute(data QuoteData) QuoteData {
	var subtotal float64
	for _, item := range data.Items {
		subtotal += item.Total
	}

	var discountAmt float64
	if data.ShowDiscount {
		discountAmt = subtotal * data.Discount / 100
	}

	afterDiscount := subtotal - discountAmt

	var taxAmount float64
	if data.ShowGST {
		taxAmount = afterDiscount * data.GST / 100
	}

	grandTotal := math.Round(afterDiscount + taxAmount)

	data.Subtotal = subtotal
	data.DiscountAmt = discountAmt
	data.TaxAmount = taxAmount
	data.GrandTotal = grandTotal
	data.Balance = grandTotal - data.Advance
	return data
}

// ItemTotal computes the cached total for a line item.
func ItemTotal(quantity, rate float64) float64 {
	return quantity * rate
}
