package inspection

import (
	"fmt"
	"time"
)

// DateLayout is the stored form of the inspection date.
const DateLayout = "2006-01-02"

// ClientInfo carries the free-text header fields of a draft. Empty strings
// are valid values; the report substitutes placeholders when rendering.
type ClientInfo struct {
	ClientName         string `json:"clientName"`
	PropertyAddress    string `json:"propertyAddress"`
	InspectionDate     string `json:"inspectionDate"`
	EngineerName       string `json:"engineerName"`
	RegistrationNumber string `json:"registrationNumber"`
}

// Item is one checklist entry. ID and Label come from the template and never
// change; Notes, Status and PhotoURI are mutated in place via ApplyItemPatch.
// PhotoURI is an opaque reference handed back by the capture service; empty
// means no photo captured.
type Item struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Notes    string     `json:"notes"`
	Status   ItemStatus `json:"status"`
	PhotoURI string     `json:"photoUri"`
}

// Draft is the complete persistable snapshot of one inspection: client info,
// the fixed 8-item checklist in template order, and free-text general notes.
// It is the atomic unit of save and load.
type Draft struct {
	ClientInfo   ClientInfo `json:"clientInfo"`
	Checklist    []Item     `json:"checklist"`
	GeneralNotes string     `json:"generalNotes"`
}

// NewDraft builds a draft with documented defaults: empty client info except
// the inspection date (set to the given time's date), a freshly built
// checklist with every item satisfactory, and empty general notes.
func NewDraft(now time.Time) *Draft {
	d := &Draft{
		ClientInfo: ClientInfo{
			InspectionDate: now.Format(DateLayout),
		},
		Checklist: make([]Item, 0, ChecklistSize),
	}
	for _, def := range checklistTemplate {
		d.Checklist = append(d.Checklist, Item{
			ID:     def.ID,
			Label:  def.Label,
			Status: DefaultStatus,
		})
	}
	return d
}

// ClientField names one updatable ClientInfo field.
type ClientField string

const (
	FieldClientName         ClientField = "clientName"
	FieldPropertyAddress    ClientField = "propertyAddress"
	FieldInspectionDate     ClientField = "inspectionDate"
	FieldEngineerName       ClientField = "engineerName"
	FieldRegistrationNumber ClientField = "registrationNumber"
)

// AllClientFields returns the updatable client fields in header order.
func AllClientFields() []ClientField {
	return []ClientField{
		FieldClientName,
		FieldPropertyAddress,
		FieldInspectionDate,
		FieldEngineerName,
		FieldRegistrationNumber,
	}
}

// ParseClientField parses a client field name, accepting the camelCase wire
// form used in the stored payload.
func ParseClientField(s string) (ClientField, error) {
	field := ClientField(s)
	switch field {
	case FieldClientName, FieldPropertyAddress, FieldInspectionDate,
		FieldEngineerName, FieldRegistrationNumber:
		return field, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownClientField, s)
	}
}

// SetClientField updates one named ClientInfo field, leaving the others
// unchanged.
func (d *Draft) SetClientField(field ClientField, value string) error {
	switch field {
	case FieldClientName:
		d.ClientInfo.ClientName = value
	case FieldPropertyAddress:
		d.ClientInfo.PropertyAddress = value
	case FieldInspectionDate:
		d.ClientInfo.InspectionDate = value
	case FieldEngineerName:
		d.ClientInfo.EngineerName = value
	case FieldRegistrationNumber:
		d.ClientInfo.RegistrationNumber = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownClientField, field)
	}
	return nil
}

// ItemPatch is a partial update for one checklist item. Nil fields are left
// untouched; set fields replace the current value wholesale.
type ItemPatch struct {
	Notes    *string
	Status   *ItemStatus
	PhotoURI *string
}

// ApplyItemPatch merges a partial update into the item identified by id.
// Unspecified fields and all other items are untouched; the set and order of
// checklist ids never changes.
func (d *Draft) ApplyItemPatch(id string, patch ItemPatch) error {
	if patch.Status != nil && !patch.Status.IsValid() {
		return fmt.Errorf("invalid item status: %q", *patch.Status)
	}
	for i := range d.Checklist {
		if d.Checklist[i].ID != id {
			continue
		}
		if patch.Notes != nil {
			d.Checklist[i].Notes = *patch.Notes
		}
		if patch.Status != nil {
			d.Checklist[i].Status = *patch.Status
		}
		if patch.PhotoURI != nil {
			d.Checklist[i].PhotoURI = *patch.PhotoURI
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrItemNotFound, id)
}

// SetGeneralNotes replaces the whole general notes text.
func (d *Draft) SetGeneralNotes(text string) {
	d.GeneralNotes = text
}

// Item returns the checklist entry with the given id.
func (d *Draft) Item(id string) (Item, bool) {
	for _, item := range d.Checklist {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Clone returns a deep copy of the draft. Saving clones first so later
// in-memory edits cannot leak into a snapshot held by a caller.
func (d *Draft) Clone() *Draft {
	clone := *d
	clone.Checklist = make([]Item, len(d.Checklist))
	copy(clone.Checklist, d.Checklist)
	return &clone
}

// DefectCount returns how many items currently require action.
func (d *Draft) DefectCount() int {
	n := 0
	for _, item := range d.Checklist {
		if item.Status.RequiresAction() {
			n++
		}
	}
	return n
}
