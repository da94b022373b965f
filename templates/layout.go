// Package templates renders the builder UI and the document preview as
// templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// errWriter latches the first write error so render code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) raw(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

// esc escapes user-provided text for HTML.
func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps body in the HTML shell: htmx, the toast listener and the
// builder stylesheet.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.raw("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		ew.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		ew.printf("<title>%s</title>", esc(title))
		ew.raw("<script src=\"https://unpkg.com/htmx.org@1.9.12\"></script>")
		ew.raw("<style>" + builderCSS + "</style>")
		ew.raw("</head><body>")
		ew.raw("<div id=\"toast\" class=\"toast\" hidden></div>")
		ew.raw(toastScript)
		if ew.err != nil {
			return ew.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		ew.raw("</body></html>")
		return ew.err
	})
}

// toastScript shows toast notifications fired through the HX-Trigger
// response header.
const toastScript = `<script>
document.body.addEventListener("showToast", function (evt) {
  var el = document.getElementById("toast");
  el.textContent = evt.detail.message;
  el.className = "toast toast-" + evt.detail.type;
  el.hidden = false;
  clearTimeout(el._timer);
  el._timer = setTimeout(function () { el.hidden = true; }, 3000);
});
</script>`

const builderCSS = `
body { margin: 0; font-family: "Inter", sans-serif; background: #fafaf9; color: #1c1917; }
.workspace { display: flex; gap: 24px; padding: 16px; align-items: flex-start; }
.panel { flex: 1; background: #fff; border: 1px solid #e7e5e4; border-radius: 12px; padding: 16px; }
.panel h2 { font-size: 11px; text-transform: uppercase; letter-spacing: 0.2em; color: #a8a29e; }
.items-table { width: 100%; border-collapse: collapse; font-size: 13px; }
.items-table th { text-align: left; font-size: 10px; text-transform: uppercase; color: #a8a29e; }
.items-table td { border-top: 1px solid #f5f5f4; padding: 6px 4px; }
.num { text-align: right; }
.toast { position: fixed; top: 16px; right: 16px; padding: 10px 16px; border-radius: 8px; background: #1c1917; color: #fff; z-index: 100; }
.toast-error { background: #b91c1c; }
.toast-warning { background: #b45309; }
.toast-success { background: #047857; }
.preview-scroll { flex: 1; overflow: auto; background: #e7e5e4; padding: 24px; }
.preview-zoom { transform: scale(0.8); transform-origin: top center; }
button { cursor: pointer; }
`
