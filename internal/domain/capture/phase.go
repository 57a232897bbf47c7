package capture

import "fmt"

// Phase is the lifecycle phase of a single photo capture attempt.
type Phase string

const (
	PhaseIdle                 Phase = "idle"
	PhaseRequestingPermission Phase = "requesting_permission"
	PhasePermissionDenied     Phase = "permission_denied"
	PhaseCapturing            Phase = "capturing"
	PhaseCancelled            Phase = "cancelled"
	PhaseCaptured             Phase = "captured"
)

// validTransitions defines the allowed phase transitions and their events.
// Map: currentPhase -> event -> targetPhase
var validTransitions = map[Phase]map[string]Phase{
	PhaseIdle: {
		"request": PhaseRequestingPermission,
	},
	PhaseRequestingPermission: {
		"deny":  PhasePermissionDenied,
		"grant": PhaseCapturing,
	},
	PhaseCapturing: {
		"cancel":  PhaseCancelled,
		"confirm": PhaseCaptured,
	},
}

// AllPhases returns all valid capture phases.
func AllPhases() []Phase {
	return []Phase{
		PhaseIdle,
		PhaseRequestingPermission,
		PhasePermissionDenied,
		PhaseCapturing,
		PhaseCancelled,
		PhaseCaptured,
	}
}

// IsValid returns true if the phase is a valid capture phase.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseIdle, PhaseRequestingPermission, PhasePermissionDenied,
		PhaseCapturing, PhaseCancelled, PhaseCaptured:
		return true
	default:
		return false
	}
}

// String returns the string representation of the phase.
func (p Phase) String() string {
	return string(p)
}

// IsTerminal returns true if no further transitions leave this phase.
func (p Phase) IsTerminal() bool {
	switch p {
	case PhasePermissionDenied, PhaseCancelled, PhaseCaptured:
		return true
	default:
		return false
	}
}

// CanTransitionWith returns true if the given event can trigger a transition from this phase.
func (p Phase) CanTransitionWith(event string) bool {
	transitions, ok := validTransitions[p]
	if !ok {
		return false
	}

	_, ok = transitions[event]
	return ok
}

// TransitionWith returns the target phase for a given event, or an error if not allowed.
func (p Phase) TransitionWith(event string) (Phase, error) {
	transitions, ok := validTransitions[p]
	if !ok {
		return p, fmt.Errorf("no transitions defined for phase: %s", p)
	}

	target, ok := transitions[event]
	if !ok {
		return p, fmt.Errorf("event '%s' not allowed from phase '%s'", event, p)
	}

	return target, nil
}

// ValidEvents returns all valid events that can be triggered from this phase.
func (p Phase) ValidEvents() []string {
	transitions, ok := validTransitions[p]
	if !ok {
		return nil
	}

	var events []string
	for event := range transitions {
		events = append(events, event)
	}
	return events
}
