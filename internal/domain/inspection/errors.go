package inspection

import "errors"

var (
	// ErrNoDraft is returned by a draft repository when the store holds no
	// saved draft. Distinct from a load failure: the store was reachable and
	// simply had nothing under the draft key.
	ErrNoDraft = errors.New("no saved draft found")

	// ErrItemNotFound is returned when an item id names no checklist entry.
	ErrItemNotFound = errors.New("checklist item not found")

	// ErrUnknownClientField is returned for a client field name outside the
	// closed ClientField set.
	ErrUnknownClientField = errors.New("unknown client field")
)
