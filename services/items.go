package services

import "errors"

var (
	// ErrMissingDescription is returned when an item is added or updated
	// without a description.
	ErrMissingDescription = errors.New("item description is required")

	// ErrMissingRate is returned when an item is added or updated with a
	// zero or unset rate.
	ErrMissingRate = errors.New("item rate is required")

	// ErrItemNotFound is returned when an operation targets an id that is
	// not present in the quotation.
	ErrItemNotFound = errors.New("item not found")
)

// AddItem validates and appends a new line item, then recomputes totals.
// Quantity defaults to 1 and unit to DefaultUnit when unset. The quotation
// is left unchanged on error.
func AddItem(data *QuoteData, ids IDSource, description string, quantity float64, unit string, rate float64) error {
	if description == "" {
		return ErrMissingDescription
	}
	if rate == 0 {
		return ErrMissingRate
	}
	if quantity == 0 {
		quantity = 1
	}
	if !ValidUnit(unit) {
		unit = DefaultUnit
	}

	data.Items = append(data.Items, QuoteItem{
		ID:          ids.Next(),
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		Rate:        rate,
		Total:       ItemTotal(quantity, rate),
	})
	*data = Recompute(*data)
	return nil
}

// UpdateItem replaces the fields of the item with the given id in place,
// preserving the id and recomputing the item total and quote totals.
func UpdateItem(data *QuoteData, id, description string, quantity float64, unit string, rate float64) error {
	if description == "" {
		return ErrMissingDescription
	}
	if rate == 0 {
		return ErrMissingRate
	}
	if quantity == 0 {
		quantity = 1
	}
	if !ValidUnit(unit) {
		unit = DefaultUnit
	}

	for i := range data.Items {
		if data.Items[i].ID != id {
			continue
		}
		data.Items[i] = QuoteItem{
			ID:          id,
			Description: description,
			Quantity:    quantity,
			Unit:        unit,
			Rate:        rate,
			Total:       ItemTotal(quantity, rate),
		}
		*data = Recompute(*data)
		return nil
	}
	return ErrItemNotFound
}

// DeleteItem removes the item with the given id. A missing id is a no-op.
func DeleteItem(data *QuoteData, id string) {
	for i := range data.Items {
		if data.Items[i].ID == id {
			data.Items = append(data.Items[:i], data.Items[i+1:]...)
			break
		}
	}
	*data = Recompute(*data)
}

// CloneItem duplicates the item with the given id under a fresh id, with
// " (Copy)" appended to the description. The clone is appended at the tail
// regardless of the source position.
func CloneItem(data *QuoteData, ids IDSource, id string) error {
	for _, item := range data.Items {
		if item.ID != id {
			continue
		}
		clone := item
		clone.ID = ids.Next()
		clone.Description = item.Description + " (Copy)"
		data.Items = append(data.Items, clone)
		*data = Recompute(*data)
		return nil
	}
	return ErrItemNotFound
}
