package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aufield/sitesheet/internal/domain/capture"
	"github.com/aufield/sitesheet/internal/domain/inspection"
	"github.com/aufield/sitesheet/internal/domain/report"
)

// Prefill carries workspace defaults applied to freshly created drafts.
type Prefill struct {
	EngineerName       string
	RegistrationNumber string
}

// SheetService owns the draft lifecycle: create, mutate, persist, render.
// One-shot operations are each a complete session over the stored draft:
// load (or start fresh), mutate, save.
type SheetService struct {
	repo    inspection.DraftRepository
	bridge  *capture.Bridge
	prefill Prefill
	quality float64
	now     func() time.Time
}

func NewSheetService(repo inspection.DraftRepository, bridge *capture.Bridge, prefill Prefill, quality float64) *SheetService {
	return &SheetService{
		repo:    repo,
		bridge:  bridge,
		prefill: prefill,
		quality: quality,
		now:     time.Now,
	}
}

// NewDraft builds a fresh draft with the workspace prefills applied.
func (s *SheetService) NewDraft() *inspection.Draft {
	d := inspection.NewDraft(s.now())
	if s.prefill.EngineerName != "" {
		_ = d.SetClientField(inspection.FieldEngineerName, s.prefill.EngineerName)
	}
	if s.prefill.RegistrationNumber != "" {
		_ = d.SetClientField(inspection.FieldRegistrationNumber, s.prefill.RegistrationNumber)
	}
	return d
}

// Load returns the stored draft. A store without a draft yields
// inspection.ErrNoDraft, never a default draft presented as loaded.
func (s *SheetService) Load(ctx context.Context) (*inspection.Draft, error) {
	return s.repo.Load(ctx)
}

// LoadOrNew returns the stored draft, or a fresh prefilled one when none
// has been saved yet. found reports which of the two happened.
func (s *SheetService) LoadOrNew(ctx context.Context) (d *inspection.Draft, found bool, err error) {
	d, err = s.repo.Load(ctx)
	if err == nil {
		return d, true, nil
	}
	if errors.Is(err, inspection.ErrNoDraft) {
		return s.NewDraft(), false, nil
	}
	return nil, false, err
}

// Save persists the draft wholesale.
func (s *SheetService) Save(ctx context.Context, d *inspection.Draft) error {
	return s.repo.Save(ctx, d)
}

// Delete removes the stored draft.
func (s *SheetService) Delete(ctx context.Context) error {
	return s.repo.Delete(ctx)
}

// SetClientField updates one named client field and persists the result.
func (s *SheetService) SetClientField(ctx context.Context, field inspection.ClientField, value string) (*inspection.Draft, error) {
	d, _, err := s.LoadOrNew(ctx)
	if err != nil {
		return nil, err
	}
	if err := d.SetClientField(field, value); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateItem merges a partial update into one checklist item and persists
// the result.
func (s *SheetService) UpdateItem(ctx context.Context, id string, patch inspection.ItemPatch) (*inspection.Draft, error) {
	d, _, err := s.LoadOrNew(ctx)
	if err != nil {
		return nil, err
	}
	if err := d.ApplyItemPatch(id, patch); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// SetGeneralNotes replaces the general notes and persists the result.
func (s *SheetService) SetGeneralNotes(ctx context.Context, text string) (*inspection.Draft, error) {
	d, _, err := s.LoadOrNew(ctx)
	if err != nil {
		return nil, err
	}
	d.SetGeneralNotes(text)
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Report renders the stored draft as plain text.
func (s *SheetService) Report(ctx context.Context) (string, error) {
	d, err := s.repo.Load(ctx)
	if err != nil {
		return "", err
	}
	return report.Render(d), nil
}

// CapturePhoto runs one capture attempt for the given checklist item.
// Only a captured outcome touches the draft: the item's photo reference
// is replaced and the draft saved. Denied and cancelled outcomes change
// nothing.
func (s *SheetService) CapturePhoto(ctx context.Context, itemID string) (capture.Result, *inspection.Draft, error) {
	d, _, err := s.LoadOrNew(ctx)
	if err != nil {
		return capture.Result{}, nil, err
	}
	if _, ok := d.Item(itemID); !ok {
		return capture.Result{}, nil, fmt.Errorf("%w: %q", inspection.ErrItemNotFound, itemID)
	}

	res, err := s.bridge.Capture(ctx, capture.Options{ItemID: itemID, Quality: s.quality})
	if err != nil {
		return capture.Result{}, nil, err
	}
	if !res.Captured() {
		return res, d, nil
	}

	if err := d.ApplyItemPatch(itemID, inspection.ItemPatch{PhotoURI: &res.PhotoURI}); err != nil {
		return capture.Result{}, nil, err
	}
	if err := s.repo.Save(ctx, d); err != nil {
		return capture.Result{}, nil, err
	}
	return res, d, nil
}
