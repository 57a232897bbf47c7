// Package storage persists the inspection draft to the workspace
// key-value store.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aufield/sitesheet/internal/domain/inspection"
)

// DraftKey is the single versioned key the draft lives under. The version
// suffix lets a future incompatible schema change detect old payloads
// instead of misreading them.
const DraftKey = "waInspectionDraft.v1"

// KV is the key-value contract the draft store needs.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// DraftStore persists the draft as a JSON document under DraftKey. It
// implements inspection.DraftRepository.
type DraftStore struct {
	kv     KV
	logger *slog.Logger
	now    func() time.Time
}

func NewDraftStore(kv KV, logger *slog.Logger) *DraftStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DraftStore{kv: kv, logger: logger, now: time.Now}
}

// Save serializes the full draft and writes it under DraftKey in a single
// atomic upsert. A failed write leaves any previously stored draft intact.
func (s *DraftStore) Save(ctx context.Context, d *inspection.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}

	if err := s.kv.Put(ctx, DraftKey, data); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	s.logger.Debug("draft saved", "bytes", len(data))
	return nil
}

// Load reads and reconciles the stored draft. A missing key returns
// inspection.ErrNoDraft; a present but damaged payload loads successfully
// with only the damaged fields reverted to defaults.
func (s *DraftStore) Load(ctx context.Context) (*inspection.Draft, error) {
	data, ok, err := s.kv.Get(ctx, DraftKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if !ok {
		return nil, inspection.ErrNoDraft
	}
	return s.reconcile(data), nil
}

// Delete removes the stored draft. Deleting when nothing is stored is not
// an error.
func (s *DraftStore) Delete(ctx context.Context) error {
	if err := s.kv.Delete(ctx, DraftKey); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// RawPayload returns the stored bytes without reconciliation, for health
// checks. ok is false when no draft is stored.
func (s *DraftStore) RawPayload(ctx context.Context) ([]byte, bool, error) {
	return s.kv.Get(ctx, DraftKey)
}

// Wire shapes. Every field is optional so one damaged field never takes
// its neighbors down with it.
type draftPayload struct {
	ClientInfo   json.RawMessage `json:"clientInfo"`
	Checklist    json.RawMessage `json:"checklist"`
	GeneralNotes *string         `json:"generalNotes"`
}

type clientInfoPayload struct {
	ClientName         *string `json:"clientName"`
	PropertyAddress    *string `json:"propertyAddress"`
	InspectionDate     *string `json:"inspectionDate"`
	EngineerName       *string `json:"engineerName"`
	RegistrationNumber *string `json:"registrationNumber"`
}

type itemPayload struct {
	ID       *string `json:"id"`
	Notes    *string `json:"notes"`
	Status   *string `json:"status"`
	PhotoURI *string `json:"photoUri"`
}

// reconcile rebuilds a draft from stored bytes, field by field against a
// fresh default draft. It never fails: anything absent or malformed keeps
// its default, and item labels always come from the template.
func (s *DraftStore) reconcile(data []byte) *inspection.Draft {
	draft := inspection.NewDraft(s.now())

	var payload draftPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		s.logger.Warn("stored draft unreadable, loading defaults", "error", err)
		return draft
	}

	s.reconcileClientInfo(draft, payload.ClientInfo)

	if payload.GeneralNotes != nil {
		draft.GeneralNotes = *payload.GeneralNotes
	}

	s.reconcileChecklist(draft, payload.Checklist)

	return draft
}

func (s *DraftStore) reconcileClientInfo(draft *inspection.Draft, raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}

	var client clientInfoPayload
	if err := json.Unmarshal(raw, &client); err != nil {
		s.logger.Warn("stored client info unreadable, keeping defaults", "error", err)
		return
	}

	if client.ClientName != nil {
		draft.ClientInfo.ClientName = *client.ClientName
	}
	if client.PropertyAddress != nil {
		draft.ClientInfo.PropertyAddress = *client.PropertyAddress
	}
	if client.InspectionDate != nil {
		draft.ClientInfo.InspectionDate = *client.InspectionDate
	}
	if client.EngineerName != nil {
		draft.ClientInfo.EngineerName = *client.EngineerName
	}
	if client.RegistrationNumber != nil {
		draft.ClientInfo.RegistrationNumber = *client.RegistrationNumber
	}
}

func (s *DraftStore) reconcileChecklist(draft *inspection.Draft, raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("stored checklist unreadable, keeping defaults", "error", err)
		return
	}

	for _, rawItem := range items {
		var item itemPayload
		if err := json.Unmarshal(rawItem, &item); err != nil || item.ID == nil {
			s.logger.Warn("stored checklist entry unreadable, skipping")
			continue
		}

		patch := inspection.ItemPatch{
			Notes:    item.Notes,
			PhotoURI: item.PhotoURI,
		}
		if item.Status != nil {
			if status, err := inspection.ParseItemStatus(*item.Status); err == nil {
				patch.Status = &status
			} else {
				s.logger.Warn("stored item status invalid, keeping default",
					"item", *item.ID, "status", *item.Status)
			}
		}

		// Ids outside the fixed template are dropped.
		if err := draft.ApplyItemPatch(*item.ID, patch); err != nil {
			s.logger.Warn("stored checklist entry not in template, skipping", "item", *item.ID)
		}
	}
}
