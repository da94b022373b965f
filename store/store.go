// Package store persists the in-progress quotation draft. The draft is a
// single keyed slot: read once at startup, overwritten on every change,
// cleared on explicit reset.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
)

// DraftCollection is the PocketBase collection backing the draft slot.
const DraftCollection = "quote_drafts"

// draftSlot is the single slot key used by the builder.
const draftSlot = "default"

// DraftStore is the auto-save slot for the editable quotation.
// Load returns nil when no draft exists or the stored draft cannot be
// decoded; callers fall back to a fresh quotation.
type DraftStore interface {
	Load() (*services.QuoteData, error)
	Save(services.QuoteData) error
	Clear() error
}

// PocketBaseStore keeps the draft in a PocketBase record.
type PocketBaseStore struct {
	app *pocketbase.PocketBase
}

func NewPocketBaseStore(app *pocketbase.PocketBase) *PocketBaseStore {
	return &PocketBaseStore{app: app}
}

func (s *PocketBaseStore) Load() (*services.QuoteData, error) {
	record, err := s.app.FindFirstRecordByData(DraftCollection, "slot", draftSlot)
	if err != nil {
		// No draft saved yet.
		return nil, nil
	}

	var data services.QuoteData
	if err := json.Unmarshal([]byte(record.GetString("data")), &data); err != nil {
		// An undecodable draft is treated as absent rather than fatal.
		return nil, nil
	}
	return &data, nil
}

func (s *PocketBaseStore) Save(data services.QuoteData) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	record, err := s.app.FindFirstRecordByData(DraftCollection, "slot", draftSlot)
	if err != nil {
		col, err := s.app.FindCollectionByNameOrId(DraftCollection)
		if err != nil {
			return fmt.Errorf("draft collection not found: %w", err)
		}
		record = core.NewRecord(col)
		record.Set("slot", draftSlot)
	}

	record.Set("data", string(encoded))
	if err := s.app.Save(record); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *PocketBaseStore) Clear() error {
	record, err := s.app.FindFirstRecordByData(DraftCollection, "slot", draftSlot)
	if err != nil {
		return nil
	}
	if err := s.app.Delete(record); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory DraftStore for tests.
type MemoryStore struct {
	draft *services.QuoteData
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*services.QuoteData, error) {
	if s.draft == nil {
		return nil, nil
	}
	copied := *s.draft
	return &copied, nil
}

func (s *MemoryStore) Save(data services.QuoteData) error {
	s.draft = &data
	return nil
}

func (s *MemoryStore) Clear() error {
	s.draft = nil
	return nil
}
