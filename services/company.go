package services

// BankDetails holds the issuer's payment details printed in the document
// footer and the share summary.
type BankDetails struct {
	BankName      string
	AccountName   string
	AccountNumber string
	IFSC          string
	Branch        string
	PhonePe       string
	GooglePay     string
}

// CompanyProfile holds the issuer's static identity: letterhead fields,
// terms and bank details.
type CompanyProfile struct {
	Name    string
	Tagline string
	Address string
	Phone   string
	Email   string
	GSTIN   string
	Bank    BankDetails
	Terms   []string
}

// Company is the issuer printed on every quotation.
var Company = CompanyProfile{
	Name:    "DEE PIESS",
	Tagline: "INTERIOR PROJECTS",
	Address: "Shop No. 6-7-73, C-Block 108, Bansilalpet, Secunderabad - 500003",
	Phone:   "040-27536209 / 9848132615",
	Email:   "dpei.projects@gmail.com",
	GSTIN:   "36AAALC1234A1Z5",
	Bank: BankDetails{
		BankName:      "ICICI Bank",
		AccountName:   "DEE PIESS",
		AccountNumber: "000405001234",
		IFSC:          "ICIC0000004",
		Branch:        "Secunderabad Branch",
		PhonePe:       "9848132615",
		GooglePay:     "9848132615",
	},
	Terms: []string{
		"50% Advance payment required to initiate the project.",
		"40% Payment after completion of 80% work.",
		"10% Final payment before handover.",
		"Quotation valid for 15 days from the date of issue.",
		"Any additional work will be charged extra as per actuals.",
		"All disputes are subject to Secunderabad jurisdiction.",
	},
}

// QuoteValidity is printed in the document header next to the quote date.
const QuoteValidity = "15 Days"
