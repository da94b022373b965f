package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"quotebuilder/services"
)

// PreviewDocument renders the canonical A4 document at its fixed logical
// width. The layout never reflows: on-screen display only scales it.
func PreviewDocument(doc services.QuoteDocument) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		ew.printf("<div id=\"quotation-document\" class=\"document\" style=\"width:%dpx;min-height:%dpx;background:#fff;padding:38px 45px;box-sizing:border-box;font-size:11px;line-height:1.4;display:flex;flex-direction:column;\">",
			services.A4WidthPx, services.A4HeightPx)

		// Header: issuer letterhead left, title and quote meta right.
		ew.raw("<div style=\"display:flex;justify-content:space-between;align-items:flex-start;margin-bottom:16px;\">")
		ew.raw("<div>")
		ew.printf("<div style=\"font-size:20px;font-weight:700;\">%s</div>", esc(doc.Company.Name))
		ew.printf("<div style=\"font-size:9px;text-transform:uppercase;letter-spacing:0.3em;color:#a8a29e;\">%s</div>", esc(doc.Company.Tagline))
		ew.printf("<div style=\"font-size:10px;color:#78716c;max-width:250px;\">%s</div>", esc(doc.Company.Address))
		ew.printf("<div style=\"font-size:10px;color:#78716c;\">GST: %s</div>", esc(doc.Company.GSTIN))
		ew.printf("<div style=\"font-size:10px;color:#78716c;\">Ph: %s</div>", esc(doc.Company.Phone))
		ew.raw("</div>")
		ew.raw("<div style=\"text-align:right;\">")
		ew.printf("<div style=\"font-size:24px;font-style:italic;margin-bottom:8px;\">%s</div>", esc(doc.Title))
		ew.printf("<div style=\"font-size:10px;\"><span class=\"meta-label\">Quote No:</span> %s</div>", esc(doc.QuoteNumber))
		ew.printf("<div style=\"font-size:10px;\"><span class=\"meta-label\">Date:</span> %s</div>", esc(doc.QuoteDate))
		ew.printf("<div style=\"font-size:10px;\"><span class=\"meta-label\">Valid Till:</span> %s</div>", esc(doc.Validity))
		ew.raw("</div></div>")

		ew.raw("<div style=\"height:1px;background:#e7e5e4;margin-bottom:16px;\"></div>")

		// Client block. Placeholders are applied by BuildDocument.
		ew.raw("<div style=\"margin-bottom:20px;\">")
		ew.raw("<div style=\"font-size:9px;text-transform:uppercase;letter-spacing:0.2em;color:#a8a29e;margin-bottom:6px;\">Client Details</div>")
		ew.printf("<div style=\"font-size:15px;font-weight:500;\">%s</div>", esc(doc.Client.Name))
		ew.printf("<div style=\"font-size:10px;color:#78716c;max-width:300px;\">%s</div>", esc(doc.Client.Address))
		ew.printf("<div style=\"font-size:10px;color:#78716c;\">%s</div>", esc(doc.Client.Phone))
		ew.printf("<div style=\"font-size:10px;color:#78716c;font-style:italic;\">Project: %s</div>", esc(doc.Client.ProjectType))
		ew.raw("</div>")

		// Items table.
		ew.raw("<div style=\"flex-grow:1;\"><table style=\"width:100%;border-collapse:collapse;margin-bottom:16px;\"><thead><tr style=\"border-bottom:1px solid #e7e5e4;\">")
		ew.raw("<th style=\"text-align:left;font-size:9px;color:#a8a29e;width:36px;\">S.No</th>")
		ew.raw("<th style=\"text-align:left;font-size:9px;color:#a8a29e;\">Description</th>")
		ew.raw("<th style=\"text-align:right;font-size:9px;color:#a8a29e;width:60px;\">Qty</th>")
		ew.raw("<th style=\"text-align:right;font-size:9px;color:#a8a29e;width:80px;\">Rate</th>")
		ew.raw("<th style=\"text-align:right;font-size:9px;color:#a8a29e;width:100px;\">Amount</th>")
		ew.raw("</tr></thead><tbody>")
		if doc.NoItems {
			ew.printf("<tr><td colspan=\"5\" style=\"padding:32px;text-align:center;color:#d6d3d1;font-style:italic;\">%s</td></tr>", esc(services.EmptyItemsPlaceholder))
		}
		for _, row := range doc.Rows {
			ew.raw("<tr style=\"border-bottom:1px solid #f5f5f4;\">")
			ew.printf("<td style=\"padding:8px 4px;color:#a8a29e;font-size:10px;\">%d</td>", row.SNo)
			ew.printf("<td style=\"padding:8px 4px;font-weight:500;font-size:10px;\">%s</td>", esc(row.Description))
			ew.printf("<td style=\"padding:8px 4px;text-align:right;color:#78716c;font-size:10px;\">%s</td>", esc(row.Qty))
			ew.printf("<td style=\"padding:8px 4px;text-align:right;color:#78716c;font-size:10px;\">%s</td>", esc(row.Rate))
			ew.printf("<td style=\"padding:8px 4px;text-align:right;font-weight:700;font-size:10px;\">%s</td>", esc(row.Amount))
			ew.raw("</tr>")
		}
		ew.raw("</tbody></table></div>")

		// Totals block, right-aligned; line set decided by BuildDocument.
		ew.raw("<div style=\"display:flex;justify-content:flex-end;margin-bottom:16px;\"><div style=\"width:220px;\">")
		for _, line := range doc.Totals {
			switch {
			case line.Emphasis:
				ew.raw("<div style=\"height:1px;background:#e7e5e4;margin:4px 0;\"></div>")
				ew.printf("<div style=\"display:flex;justify-content:space-between;align-items:center;\"><span style=\"font-size:9px;text-transform:uppercase;letter-spacing:0.2em;color:#a8a29e;font-weight:700;\">%s</span><span style=\"font-size:18px;font-weight:700;\">%s</span></div>",
					esc(line.Label), esc(line.Value))
			case line.Credit:
				ew.printf("<div style=\"display:flex;justify-content:space-between;font-size:10px;color:#059669;margin-bottom:4px;\"><span>%s</span><span>%s</span></div>",
					esc(line.Label), esc(line.Value))
			default:
				ew.printf("<div style=\"display:flex;justify-content:space-between;font-size:10px;color:#78716c;margin-bottom:4px;\"><span>%s</span><span>%s</span></div>",
					esc(line.Label), esc(line.Value))
			}
		}
		ew.raw("</div></div>")

		// Footer: terms and bank details, disclaimer and signature.
		ew.raw("<div style=\"margin-top:auto;padding-top:12px;border-top:1px solid #f5f5f4;\">")
		ew.raw("<div style=\"display:grid;grid-template-columns:1fr 1fr;gap:24px;\">")
		ew.raw("<div><div style=\"font-size:8px;text-transform:uppercase;color:#a8a29e;margin-bottom:6px;\">Terms &amp; Conditions</div><ol style=\"margin:0;padding-left:14px;font-size:8px;color:#78716c;line-height:1.6;\">")
		for _, term := range doc.Terms {
			ew.printf("<li>%s</li>", esc(term))
		}
		ew.raw("</ol></div>")
		ew.raw("<div><div style=\"font-size:8px;text-transform:uppercase;color:#a8a29e;margin-bottom:6px;\">Bank Details</div><div style=\"font-size:8px;color:#78716c;line-height:1.6;\">")
		ew.printf("<div><b>Bank:</b> %s</div>", esc(doc.Bank.BankName))
		ew.printf("<div><b>A/c Name:</b> %s</div>", esc(doc.Bank.AccountName))
		ew.printf("<div><b>A/c No:</b> %s</div>", esc(doc.Bank.AccountNumber))
		ew.printf("<div><b>IFSC:</b> %s</div>", esc(doc.Bank.IFSC))
		ew.printf("<div><b>PhonePe:</b> %s &nbsp; <b>G-Pay:</b> %s</div>", esc(doc.Bank.PhonePe), esc(doc.Bank.GooglePay))
		ew.raw("</div></div></div>")
		ew.raw("<div style=\"display:flex;justify-content:space-between;align-items:flex-end;margin-top:16px;\">")
		ew.printf("<div style=\"font-size:7px;color:#d6d3d1;text-transform:uppercase;font-style:italic;\">%s</div>", esc(doc.Disclaimer))
		ew.printf("<div style=\"text-align:center;\"><div style=\"width:80px;height:32px;border-bottom:1px solid #e7e5e4;margin-bottom:2px;\"></div><div style=\"font-size:8px;text-transform:uppercase;color:#a8a29e;\">%s</div></div>", esc(doc.Signature))
		ew.raw("</div></div>")

		ew.raw("</div>")
		return ew.err
	})
}
