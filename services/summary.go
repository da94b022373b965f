package services

import (
	"fmt"
	"net/url"
	"strings"
)

const summaryRule = "--------------------------------"

// countryPrefix is prepended to bare 10-digit Indian mobile numbers when
// building the share destination.
const countryPrefix = "91"

// SummaryText builds the plain-text quotation summary shared over
// WhatsApp: issuer header, client block, numbered items, the conditional
// totals breakdown, payment details and a closing line. Asterisks mark
// bold per WhatsApp formatting.
func SummaryText(data QuoteData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*QUOTATION: %s*\n", Company.Name)
	b.WriteString(summaryRule + "\n")
	fmt.Fprintf(&b, "*Client:* %s\n", fallback(data.Client.Name, "Valued Customer"))
	fmt.Fprintf(&b, "*Project:* %s\n", fallback(data.Client.ProjectType, "Interior Work"))
	fmt.Fprintf(&b, "*Quote No:* %s\n", data.Client.QuoteNumber)
	fmt.Fprintf(&b, "*Date:* %s\n", data.Client.QuoteDate)
	b.WriteString(summaryRule + "\n\n")

	b.WriteString("*PROJECT ITEMS:*\n")
	if len(data.Items) == 0 {
		b.WriteString("_No items added_\n")
	} else {
		for i, item := range data.Items {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%d. *%s*\n   %s %s x %s = *%s*\n",
				i+1, item.Description,
				FormatQty(item.Quantity), item.Unit,
				FormatINR(item.Rate), FormatINR(item.Total))
		}
	}
	b.WriteString("\n" + summaryRule + "\n")

	fmt.Fprintf(&b, "*Subtotal:* %s\n", FormatINR(data.Subtotal))
	if data.ShowDiscount && data.Discount > 0 {
		fmt.Fprintf(&b, "*Discount (%s%%):* -%s\n", FormatPercent(data.Discount), FormatINR(data.DiscountAmt))
	}
	if data.ShowGST && data.GST > 0 {
		fmt.Fprintf(&b, "*GST (%s%%):* %s\n", FormatPercent(data.GST), FormatINR(data.TaxAmount))
	}
	fmt.Fprintf(&b, "*GRAND TOTAL: %s*\n", FormatINR(data.GrandTotal))
	if data.Advance > 0 {
		fmt.Fprintf(&b, "*Advance Paid:* %s\n", FormatINR(data.Advance))
	}
	if data.Balance > 0 {
		fmt.Fprintf(&b, "*Balance Due:* %s\n", FormatINR(data.Balance))
	}
	b.WriteString(summaryRule + "\n\n")

	b.WriteString("*PAYMENT DETAILS:*\n")
	fmt.Fprintf(&b, "Bank: %s\n", Company.Bank.BankName)
	fmt.Fprintf(&b, "A/c No: %s\n", Company.Bank.AccountNumber)
	fmt.Fprintf(&b, "IFSC: %s\n", Company.Bank.IFSC)
	fmt.Fprintf(&b, "PhonePe/G-Pay: %s\n\n", Company.Bank.PhonePe)

	fmt.Fprintf(&b, "_Thank you for choosing %s!_", Company.Name)
	return b.String()
}

// NormalizePhone strips everything but digits from a destination number
// and prefixes the country code when the bare number is exactly 10 digits
// and not already prefixed. Other lengths pass through unprefixed.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	phone := digits.String()
	if strings.HasPrefix(phone, countryPrefix) {
		return phone
	}
	if len(phone) == 10 {
		return countryPrefix + phone
	}
	return phone
}

// WhatsAppShareURL builds the wa.me deep link for the given destination
// number (normalized) and message body.
func WhatsAppShareURL(phone, text string) string {
	// QueryEscape encodes spaces as "+", which WhatsApp renders literally.
	body := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + NormalizePhone(phone) + "?text=" + body
}
