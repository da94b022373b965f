package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
	"quotebuilder/store"
)

// parseItemForm reads the shared item fields of the add/update forms.
// Quantity falls back to 1 when absent or unparseable, matching the
// builder's default for new rows.
func parseItemForm(e *core.RequestEvent) (description string, quantity float64, unit string, rate float64) {
	description = strings.TrimSpace(e.Request.FormValue("description"))
	unit = strings.TrimSpace(e.Request.FormValue("unit"))

	quantity = 1
	if v := strings.TrimSpace(e.Request.FormValue("quantity")); v != "" {
		if q, err := strconv.ParseFloat(v, 64); err == nil {
			quantity = q
		}
	}
	if v := strings.TrimSpace(e.Request.FormValue("rate")); v != "" {
		rate, _ = strconv.ParseFloat(v, 64)
	}
	return description, quantity, unit, rate
}

func itemErrorToast(e *core.RequestEvent, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingDescription):
		return ErrorToast(e, http.StatusBadRequest, "Item description is required")
	case errors.Is(err, services.ErrMissingRate):
		return ErrorToast(e, http.StatusBadRequest, "Item rate is required")
	case errors.Is(err, services.ErrItemNotFound):
		return ErrorToast(e, http.StatusNotFound, "Item not found")
	default:
		return ErrorToast(e, http.StatusInternalServerError, "Failed to update item")
	}
}

// HandleItemAdd returns a handler that appends a new line item to the
// working draft and re-renders the builder.
func HandleItemAdd(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("item_add: could not parse form: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("item_add: load draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load quotation")
		}

		description, quantity, unit, rate := parseItemForm(e)
		if err := services.AddItem(&data, ids, description, quantity, unit, rate); err != nil {
			return itemErrorToast(e, err)
		}

		if err := drafts.Save(data); err != nil {
			log.Printf("item_add: save draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quotation")
		}
		return renderWorkspace(e, data)
	}
}

// HandleItemUpdate returns a handler that edits an existing line item
// in place.
func HandleItemUpdate(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		if itemID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing item ID")
		}
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("item_update: could not parse form: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("item_update: load draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load quotation")
		}

		description, quantity, unit, rate := parseItemForm(e)
		if err := services.UpdateItem(&data, itemID, description, quantity, unit, rate); err != nil {
			return itemErrorToast(e, err)
		}

		if err := drafts.Save(data); err != nil {
			log.Printf("item_update: save draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quotation")
		}
		return renderWorkspace(e, data)
	}
}

// HandleItemDelete returns a handler that removes a line item. Deleting an
// unknown ID is a no-op so double-clicks never error.
func HandleItemDelete(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		if itemID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing item ID")
		}

		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("item_delete: load draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load quotation")
		}

		services.DeleteItem(&data, itemID)

		if err := drafts.Save(data); err != nil {
			log.Printf("item_delete: save draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quotation")
		}
		return renderWorkspace(e, data)
	}
}

// HandleItemClone returns a handler that duplicates a line item at the end
// of the list with a fresh ID.
func HandleItemClone(app *pocketbase.PocketBase, drafts store.DraftStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		if itemID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing item ID")
		}

		data, err := loadDraft(drafts)
		if err != nil {
			log.Printf("item_clone: load draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load quotation")
		}

		if err := services.CloneItem(&data, ids, itemID); err != nil {
			return itemErrorToast(e, err)
		}

		if err := drafts.Save(data); err != nil {
			log.Printf("item_clone: save draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save quotation")
		}
		return renderWorkspace(e, data)
	}
}
