package inspection

import "context"

// DraftRepository handles persistence of inspection drafts.
type DraftRepository interface {
	// Save stores the draft, replacing any previous one.
	Save(ctx context.Context, d *Draft) error

	// Load returns the stored draft, or ErrNoDraft when nothing has been
	// saved yet.
	Load(ctx context.Context) (*Draft, error)

	// Delete removes the stored draft. Deleting when nothing is stored is
	// not an error.
	Delete(ctx context.Context) error
}
