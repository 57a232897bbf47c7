package capture

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State constants for statekit integration.
// These must remain as untyped string constants for statekit.StateID compatibility.
// Values are kept in sync with the Phase constants in phase.go.
const (
	StateIdle                 = "idle"
	StateRequestingPermission = "requesting_permission"
	StatePermissionDenied     = "permission_denied"
	StateCapturing            = "capturing"
	StateCancelled            = "cancelled"
	StateCaptured             = "captured"
)

// init validates at startup that FSM state constants match Phase values.
func init() {
	stateMap := map[string]Phase{
		StateIdle:                 PhaseIdle,
		StateRequestingPermission: PhaseRequestingPermission,
		StatePermissionDenied:     PhasePermissionDenied,
		StateCapturing:            PhaseCapturing,
		StateCancelled:            PhaseCancelled,
		StateCaptured:             PhaseCaptured,
	}

	for fsmState, phase := range stateMap {
		if fsmState != string(phase) {
			panic(fmt.Sprintf("FSM state %q does not match Phase %q - constants are out of sync", fsmState, phase))
		}
	}
}

// AttemptContext carries attempt data.
type AttemptContext struct {
	ItemID string
}

// AttemptMachine enforces the capture lifecycle for a single attempt.
type AttemptMachine struct {
	interpreter *statekit.Interpreter[AttemptContext]
}

func NewAttemptMachine(itemID string) (*AttemptMachine, error) {
	builder := statekit.NewMachine[AttemptContext]("capture-attempt").
		WithInitial(statekit.StateID(StateIdle)).
		WithContext(AttemptContext{ItemID: itemID})

	builder.State(StateIdle).
		On("request").Target(StateRequestingPermission).
		Done()

	builder.State(StateRequestingPermission).
		On("deny").Target(StatePermissionDenied).
		On("grant").Target(StateCapturing).
		Done()

	builder.State(StateCapturing).
		On("cancel").Target(StateCancelled).
		On("confirm").Target(StateCaptured).
		Done()

	// Terminal states
	builder.State(StatePermissionDenied).Done()
	builder.State(StateCancelled).Done()
	builder.State(StateCaptured).Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build capture machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &AttemptMachine{interpreter: interpreter}, nil
}

// Transition attempts to move the capture attempt to a new phase.
func (m *AttemptMachine) Transition(event string) error {
	before := m.Current()
	m.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := m.Current()

	if before != after {
		return nil
	}

	return fmt.Errorf("the event '%s' is not allowed while the capture is in the '%s' phase", event, before)
}

func (m *AttemptMachine) Current() string {
	return string(m.interpreter.State().Value)
}

// CurrentPhase returns the current state as a Phase value object.
func (m *AttemptMachine) CurrentPhase() Phase {
	return Phase(m.Current())
}

// CanTransition checks if the given event is valid for the current phase.
func (m *AttemptMachine) CanTransition(event string) bool {
	return m.CurrentPhase().CanTransitionWith(event)
}

// IsTerminal returns true if the attempt reached a terminal phase.
func (m *AttemptMachine) IsTerminal() bool {
	return m.CurrentPhase().IsTerminal()
}
