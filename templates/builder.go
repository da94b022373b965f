package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"quotebuilder/services"
)

// BuilderPage is the full quotation builder: editing panel on the left,
// live document preview on the right.
func BuilderPage(data services.QuoteData) templ.Component {
	return Layout("Quotation Builder", Workspace(data))
}

// Workspace is the HTMX swap target: every mutation re-renders this
// fragment so the preview always reflects the stored draft.
func Workspace(data services.QuoteData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		ew.raw("<div id=\"workspace\" class=\"workspace\">")

		ew.raw("<div class=\"panel\">")
		writeClientForm(ew, data)
		writeItemsPanel(ew, data)
		writeSettingsPanel(ew, data)
		writeActionsPanel(ew, data)
		ew.raw("</div>")

		ew.raw("<div class=\"preview-pane\"><div class=\"preview-zoom\">")
		if ew.err != nil {
			return ew.err
		}
		if err := PreviewDocument(services.BuildDocument(data)).Render(ctx, w); err != nil {
			return err
		}
		ew.raw("</div></div>")

		ew.raw("</div>")
		return ew.err
	})
}

func writeClientForm(ew *errWriter, data services.QuoteData) {
	ew.raw("<section class=\"panel-section\">")
	ew.raw("<h2>Client Details</h2>")
	ew.raw("<form hx-post=\"/quote/client\" hx-target=\"#workspace\" hx-swap=\"outerHTML\" hx-trigger=\"change, submit\">")
	ew.printf("<label>Client Name<input type=\"text\" name=\"name\" value=\"%s\" placeholder=\"Client Name\"></label>", esc(data.Client.Name))
	ew.printf("<label>Site Address<textarea name=\"address\" rows=\"2\" placeholder=\"Site Address\">%s</textarea></label>", esc(data.Client.Address))
	ew.printf("<label>Phone<input type=\"tel\" name=\"phone\" value=\"%s\" placeholder=\"Phone Number\"></label>", esc(data.Client.Phone))
	ew.printf("<label>Project Type<input type=\"text\" name=\"projectType\" value=\"%s\" placeholder=\"e.g. Interior Work\"></label>", esc(data.Client.ProjectType))
	ew.printf("<label>Quote No<input type=\"text\" name=\"quoteNo\" value=\"%s\"></label>", esc(data.Client.QuoteNumber))
	ew.printf("<label>Date<input type=\"text\" name=\"date\" value=\"%s\" placeholder=\"DD/MM/YYYY\"></label>", esc(data.Client.QuoteDate))
	ew.raw("<button type=\"submit\" class=\"btn\">Update</button>")
	ew.raw("</form></section>")
}

func writeItemsPanel(ew *errWriter, data services.QuoteData) {
	ew.raw("<section class=\"panel-section\">")
	ew.raw("<h2>Items</h2>")

	ew.raw("<table class=\"items-table\"><thead><tr><th>Description</th><th>Qty</th><th>Unit</th><th>Rate</th><th>Total</th><th></th></tr></thead><tbody>")
	if len(data.Items) == 0 {
		ew.printf("<tr><td colspan=\"6\" class=\"empty\">%s</td></tr>", esc(services.EmptyItemsPlaceholder))
	}
	for _, item := range data.Items {
		ew.printf("<tr><form id=\"item-%s\"></form>", esc(item.ID))
		ew.printf("<td><input form=\"item-%s\" type=\"text\" name=\"description\" value=\"%s\"></td>", esc(item.ID), esc(item.Description))
		ew.printf("<td><input form=\"item-%s\" type=\"number\" step=\"any\" name=\"quantity\" value=\"%s\"></td>", esc(item.ID), esc(services.FormatQty(item.Quantity)))
		ew.printf("<td>%s</td>", unitSelect("item-"+item.ID, item.Unit))
		ew.printf("<td><input form=\"item-%s\" type=\"number\" step=\"any\" name=\"rate\" value=\"%s\"></td>", esc(item.ID), esc(services.FormatQty(item.Rate)))
		ew.printf("<td class=\"amount\">%s</td>", esc(services.FormatINR(item.Total)))
		ew.raw("<td class=\"row-actions\">")
		ew.printf("<button form=\"item-%s\" hx-post=\"/quote/items/%s\" hx-target=\"#workspace\" hx-swap=\"outerHTML\" title=\"Save\">&#10003;</button>", esc(item.ID), esc(item.ID))
		ew.printf("<button hx-post=\"/quote/items/%s/clone\" hx-target=\"#workspace\" hx-swap=\"outerHTML\" title=\"Clone\">&#10697;</button>", esc(item.ID))
		ew.printf("<button hx-delete=\"/quote/items/%s\" hx-target=\"#workspace\" hx-swap=\"outerHTML\" title=\"Delete\">&#10005;</button>", esc(item.ID))
		ew.raw("</td></tr>")
	}
	ew.raw("</tbody></table>")

	ew.raw("<form hx-post=\"/quote/items\" hx-target=\"#workspace\" hx-swap=\"outerHTML\" class=\"add-item\">")
	ew.raw("<input type=\"text\" name=\"description\" placeholder=\"Description\">")
	ew.raw("<input type=\"number\" step=\"any\" name=\"quantity\" value=\"1\">")
	ew.raw(unitSelect("", services.DefaultUnit))
	ew.raw("<input type=\"number\" step=\"any\" name=\"rate\" placeholder=\"Rate\">")
	ew.raw("<button type=\"submit\" class=\"btn\">Add Item</button>")
	ew.raw("</form></section>")
}

func writeSettingsPanel(ew *errWriter, data services.QuoteData) {
	ew.raw("<section class=\"panel-section\">")
	ew.raw("<h2>Totals</h2>")
	ew.raw("<form hx-post=\"/quote/settings\" hx-target=\"#workspace\" hx-swap=\"outerHTML\" hx-trigger=\"change, submit\">")

	ew.printf("<label class=\"toggle\"><input type=\"checkbox\" name=\"showDiscount\" value=\"1\"%s> Apply Discount</label>", checked(data.ShowDiscount))
	ew.printf("<label>Discount %%<input type=\"number\" step=\"any\" name=\"discount\" value=\"%s\"></label>", esc(services.FormatQty(data.Discount)))
	ew.printf("<label class=\"toggle\"><input type=\"checkbox\" name=\"showGST\" value=\"1\"%s> Apply GST</label>", checked(data.ShowGST))
	ew.printf("<label>GST %%<input type=\"number\" step=\"any\" name=\"gst\" value=\"%s\"></label>", esc(services.FormatQty(data.GST)))
	ew.printf("<label>Advance Received<input type=\"number\" step=\"any\" name=\"advance\" value=\"%s\"></label>", esc(services.FormatQty(data.Advance)))

	ew.raw("<dl class=\"totals-readout\">")
	ew.printf("<dt>Subtotal</dt><dd>%s</dd>", esc(services.FormatINR(data.Subtotal)))
	if data.ShowDiscount {
		ew.printf("<dt>Discount</dt><dd>-%s</dd>", esc(services.FormatINR(data.DiscountAmt)))
	}
	if data.ShowGST {
		ew.printf("<dt>GST</dt><dd>%s</dd>", esc(services.FormatINR(data.TaxAmount)))
	}
	ew.printf("<dt class=\"grand\">Grand Total</dt><dd class=\"grand\">%s</dd>", esc(services.FormatINR(data.GrandTotal)))
	ew.printf("<dt>Balance Due</dt><dd>%s</dd>", esc(services.FormatINR(data.Balance)))
	ew.raw("</dl>")

	ew.raw("<button type=\"submit\" class=\"btn\">Apply</button>")
	ew.raw("</form></section>")
}

func writeActionsPanel(ew *errWriter, data services.QuoteData) {
	ew.raw("<section class=\"panel-section actions\">")
	ew.raw("<h2>Export &amp; Share</h2>")

	ew.raw("<a class=\"btn\" href=\"/quote/export/pdf\">Download PDF</a>")
	ew.raw("<a class=\"btn\" href=\"/quote/export/print\">Print PDF</a>")
	ew.raw("<a class=\"btn\" href=\"/quote/export/excel\">Download Excel</a>")
	ew.raw("<a class=\"btn\" href=\"/quote/export/project\">Save Project</a>")

	ew.raw("<form hx-post=\"/quote/import\" hx-target=\"#workspace\" hx-swap=\"outerHTML\" hx-encoding=\"multipart/form-data\" class=\"import-form\">")
	ew.printf("<input type=\"file\" name=\"project\" accept=\"%s\">", esc(services.ProjectFileExt))
	ew.raw("<button type=\"submit\" class=\"btn\">Load Project</button>")
	ew.raw("</form>")

	ew.raw("<a class=\"btn\" href=\"/quote/share/whatsapp\" target=\"_blank\">Share on WhatsApp</a>")

	ew.raw("<button class=\"btn\" hx-post=\"/quote/duplicate\" hx-target=\"#workspace\" hx-swap=\"outerHTML\">Duplicate Quotation</button>")
	ew.raw("<button class=\"btn danger\" hx-post=\"/quote/reset\" hx-target=\"#workspace\" hx-swap=\"outerHTML\" hx-confirm=\"Start a new quotation? Unsaved changes will be lost.\">New Quotation</button>")

	ew.raw("</section>")
}

func checked(on bool) string {
	if on {
		return " checked"
	}
	return ""
}

func unitSelect(formID, selected string) string {
	s := "<select"
	if formID != "" {
		s += " form=\"" + esc(formID) + "\""
	}
	s += " name=\"unit\">"
	for _, u := range services.ItemUnits {
		s += "<option value=\"" + esc(u) + "\""
		if u == selected {
			s += " selected"
		}
		s += ">" + esc(u) + "</option>"
	}
	return s + "</select>"
}
