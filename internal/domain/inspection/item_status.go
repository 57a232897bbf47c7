package inspection

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ItemStatus is the assessed condition of one checklist item. The set is
// closed: every item is always in exactly one of the three states below.
type ItemStatus string

const (
	StatusSatisfactory ItemStatus = "satisfactory"
	StatusMonitor      ItemStatus = "monitor"
	StatusDefect       ItemStatus = "defect_action_required"
)

// DefaultStatus is the status every item starts in and the status a
// malformed stored value reconciles to.
const DefaultStatus = StatusSatisfactory

// AllItemStatuses returns the three valid statuses in severity order.
func AllItemStatuses() []ItemStatus {
	return []ItemStatus{StatusSatisfactory, StatusMonitor, StatusDefect}
}

// IsValid returns true if the status is one of the three closed values.
func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusSatisfactory, StatusMonitor, StatusDefect:
		return true
	default:
		return false
	}
}

// String returns the wire identifier of the status.
func (s ItemStatus) String() string {
	return string(s)
}

// DisplayName returns the human-readable text printed in reports.
func (s ItemStatus) DisplayName() string {
	switch s {
	case StatusSatisfactory:
		return "Satisfactory"
	case StatusMonitor:
		return "Monitor"
	case StatusDefect:
		return "Defect - Action Required"
	default:
		return string(s)
	}
}

// Next cycles to the following status in severity order, wrapping around.
// It backs the single-tap status chip in the form.
func (s ItemStatus) Next() ItemStatus {
	switch s {
	case StatusSatisfactory:
		return StatusMonitor
	case StatusMonitor:
		return StatusDefect
	default:
		return StatusSatisfactory
	}
}

// RequiresAction returns true when the item needs rectification work.
func (s ItemStatus) RequiresAction() bool {
	return s == StatusDefect
}

// ParseItemStatus parses a wire identifier or a display form into an
// ItemStatus. Inputs are matched case-insensitively and separators are
// normalized, so "Defect - Action Required", "defect-action-required" and
// "defect_action_required" all parse to StatusDefect.
func ParseItemStatus(s string) (ItemStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" - ", "_", "-", "_", " ", "_").Replace(normalized)

	status := ItemStatus(normalized)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid item status: %q", s)
	}
	return status, nil
}

// MarshalJSON implements json.Marshaler.
func (s ItemStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON implements json.Unmarshaler. An empty string decodes to the
// default status so older payloads that omitted the field stay loadable.
func (s *ItemStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	if str == "" {
		*s = DefaultStatus
		return nil
	}

	status, err := ParseItemStatus(str)
	if err != nil {
		return err
	}

	*s = status
	return nil
}
