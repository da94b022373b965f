package services

import (
	"strconv"
	"strings"
)

// FormatINR renders an amount in Indian Rupee notation with exactly two
// decimal places. Grouping follows the Indian numbering system: the
// rightmost three digits, then pairs (₹12,34,567.89).
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	raw := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(raw, '.')
	intPart, decPart := raw[:dot], raw[dot+1:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(intPart))
	b.WriteByte('.')
	b.WriteString(decPart)
	return b.String()
}

// groupIndian inserts commas into a digit string: last three digits
// together, then every two digits walking left.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	groups := []string{digits[len(digits)-3:]}
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		groups = append(groups, rest[len(rest)-2:])
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		groups = append(groups, rest)
	}

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatQty renders a quantity without trailing zeros (10, 2.5).
func FormatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// FormatPercent renders a percentage without trailing zeros (18, 12.5).
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
