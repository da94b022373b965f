package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/collections"
	"quotebuilder/handlers"
	"quotebuilder/store"
)

func main() {
	app := pocketbase.New()

	// Create collections on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		drafts := store.NewPocketBaseStore(app)

		// ── Builder ──────────────────────────────────────────────
		se.Router.GET("/quote", handlers.HandleQuotePage(app, drafts))
		se.Router.POST("/quote/client", handlers.HandleClientUpdate(app, drafts))

		// ── Line items ───────────────────────────────────────────
		se.Router.POST("/quote/items", handlers.HandleItemAdd(app, drafts))
		se.Router.POST("/quote/items/{id}", handlers.HandleItemUpdate(app, drafts))
		se.Router.DELETE("/quote/items/{id}", handlers.HandleItemDelete(app, drafts))
		se.Router.POST("/quote/items/{id}/clone", handlers.HandleItemClone(app, drafts))

		// ── Totals & lifecycle ───────────────────────────────────
		se.Router.POST("/quote/settings", handlers.HandleSettingsUpdate(app, drafts))
		se.Router.POST("/quote/reset", handlers.HandleQuoteReset(app, drafts))
		se.Router.POST("/quote/duplicate", handlers.HandleQuoteDuplicate(app, drafts))

		// ── Project files ────────────────────────────────────────
		se.Router.GET("/quote/export/project", handlers.HandleProjectExport(app, drafts))
		se.Router.POST("/quote/import", handlers.HandleProjectImport(app, drafts))

		// ── Document export & share ──────────────────────────────
		se.Router.GET("/quote/export/pdf", handlers.HandleQuoteExportPDF(app, drafts))
		se.Router.GET("/quote/export/print", handlers.HandleQuoteExportPrint(app, drafts))
		se.Router.GET("/quote/export/excel", handlers.HandleQuoteExportExcel(app, drafts))
		se.Router.GET("/quote/share/whatsapp", handlers.HandleWhatsAppShare(app, drafts))

		// Redirect home to the builder
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quote")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
