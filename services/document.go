package services

// A4 reference geometry at 96 DPI. The document is always laid out at this
// logical width; on-screen display only ever scales it, never reflows it.
const (
	A4WidthPx  = 794
	A4HeightPx = 1123
)

// EmptyItemsPlaceholder is rendered as a single table row when the
// quotation has no items.
const EmptyItemsPlaceholder = "No items added yet"

// Placeholder text shown on the document for empty client fields.
const (
	PlaceholderClientName  = "Client Name"
	PlaceholderSiteAddress = "Site Address"
	PlaceholderPhone       = "Phone Number"
	PlaceholderProjectType = "Project Type"
)

// DocumentRow is one pre-formatted line of the items table.
type DocumentRow struct {
	SNo         int
	Description string
	Qty         string // quantity + unit, e.g. "10 sqft"
	Rate        string // currency formatted
	Amount      string // currency formatted
}

// TotalLine is one entry of the right-aligned totals block.
type TotalLine struct {
	Label    string
	Value    string
	Emphasis bool // the grand total line
	Credit   bool // rendered as a deduction (discount)
}

// ClientBlock is the client section with placeholders already applied.
type ClientBlock struct {
	Name        string
	Address     string
	Phone       string
	ProjectType string
}

// QuoteDocument is the deterministic layout model of a quotation: every
// string is final (placeholders applied, currency formatted) so any
// renderer — HTML preview, PDF, raster — produces the same document.
type QuoteDocument struct {
	Company     CompanyProfile
	Title       string
	QuoteNumber string
	QuoteDate   string
	Validity    string
	Client      ClientBlock
	Rows        []DocumentRow
	NoItems     bool
	Totals      []TotalLine
	Terms       []string
	Bank        BankDetails
	Disclaimer  string
	Signature   string
}

// BuildDocument maps a quotation snapshot to its layout model. The mapping
// depends only on the QuoteData contents.
func BuildDocument(data QuoteData) QuoteDocument {
	doc := QuoteDocument{
		Company:     Company,
		Title:       "Quotation",
		QuoteNumber: data.Client.QuoteNumber,
		QuoteDate:   data.Client.QuoteDate,
		Validity:    QuoteValidity,
		Client: ClientBlock{
			Name:        fallback(data.Client.Name, PlaceholderClientName),
			Address:     fallback(data.Client.Address, PlaceholderSiteAddress),
			Phone:       fallback(data.Client.Phone, PlaceholderPhone),
			ProjectType: fallback(data.Client.ProjectType, PlaceholderProjectType),
		},
		Terms:      Company.Terms,
		Bank:       Company.Bank,
		Disclaimer: "This is a computer generated quotation",
		Signature:  "Authorized Signature",
	}

	for i, item := range data.Items {
		doc.Rows = append(doc.Rows, DocumentRow{
			SNo:         i + 1,
			Description: item.Description,
			Qty:         FormatQty(item.Quantity) + " " + item.Unit,
			Rate:        FormatINR(item.Rate),
			Amount:      FormatINR(item.Total),
		})
	}
	doc.NoItems = len(data.Items) == 0

	doc.Totals = append(doc.Totals, TotalLine{Label: "Subtotal", Value: FormatINR(data.Subtotal)})
	if data.ShowDiscount && data.Discount > 0 {
		doc.Totals = append(doc.Totals, TotalLine{
			Label:  "Discount (" + FormatPercent(data.Discount) + "%)",
			Value:  "-" + FormatINR(data.DiscountAmt),
			Credit: true,
		})
	}
	if data.ShowGST && data.GST > 0 {
		doc.Totals = append(doc.Totals, TotalLine{
			Label: "GST (" + FormatPercent(data.GST) + "%)",
			Value: FormatINR(data.TaxAmount),
		})
	}
	doc.Totals = append(doc.Totals, TotalLine{Label: "Grand Total", Value: FormatINR(data.GrandTotal), Emphasis: true})
	if data.Advance > 0 {
		doc.Totals = append(doc.Totals, TotalLine{Label: "Advance Received", Value: FormatINR(data.Advance)})
		if data.Balance != 0 {
			doc.Totals = append(doc.Totals, TotalLine{Label: "Balance Due", Value: FormatINR(data.Balance)})
		}
	}

	return doc
}

func fallback(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
