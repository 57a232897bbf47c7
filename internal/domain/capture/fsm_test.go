package capture_test

import (
	"testing"

	"github.com/aufield/sitesheet/internal/domain/capture"
)

func TestAttemptMachine(t *testing.T) {
	// 1. Init
	fsm, err := capture.NewAttemptMachine("roof")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if fsm.Current() != capture.StateIdle {
		t.Errorf("Expected idle, got %s", fsm.Current())
	}

	// 2. Happy path to captured
	for _, event := range []string{"request", "grant", "confirm"} {
		if err := fsm.Transition(event); err != nil {
			t.Errorf("Transition %q failed: %v", event, err)
		}
	}
	if fsm.Current() != capture.StateCaptured {
		t.Errorf("Expected captured, got %s", fsm.Current())
	}
	if !fsm.IsTerminal() {
		t.Error("captured should be terminal")
	}

	// 3. Invalid transition from a terminal phase
	if err := fsm.Transition("request"); err == nil {
		t.Error("Expected error on transition out of terminal phase")
	}
}

func TestAttemptMachine_DeniedAndCancelled(t *testing.T) {
	denied, _ := capture.NewAttemptMachine("walls")
	_ = denied.Transition("request")
	if err := denied.Transition("deny"); err != nil {
		t.Fatalf("deny failed: %v", err)
	}
	if denied.CurrentPhase() != capture.PhasePermissionDenied {
		t.Errorf("Expected permission_denied, got %s", denied.Current())
	}

	cancelled, _ := capture.NewAttemptMachine("walls")
	_ = cancelled.Transition("request")
	_ = cancelled.Transition("grant")
	if err := cancelled.Transition("cancel"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.CurrentPhase() != capture.PhaseCancelled {
		t.Errorf("Expected cancelled, got %s", cancelled.Current())
	}
}

func TestAttemptMachine_SkippingPhasesRejected(t *testing.T) {
	fsm, _ := capture.NewAttemptMachine("footings")

	// Cannot confirm or cancel before permission was even requested.
	for _, event := range []string{"confirm", "cancel", "grant", "deny"} {
		if err := fsm.Transition(event); err == nil {
			t.Errorf("event %q allowed from idle", event)
		}
	}
	if fsm.Current() != capture.StateIdle {
		t.Errorf("state drifted to %s", fsm.Current())
	}
}

func TestAttemptMachine_CanTransition(t *testing.T) {
	fsm, _ := capture.NewAttemptMachine("drainage")

	if !fsm.CanTransition("request") {
		t.Error("request should be allowed from idle")
	}
	if fsm.CanTransition("confirm") {
		t.Error("confirm should not be allowed from idle")
	}

	_ = fsm.Transition("request")
	_ = fsm.Transition("grant")
	if !fsm.CanTransition("cancel") || !fsm.CanTransition("confirm") {
		t.Error("capturing should allow cancel and confirm")
	}
	if fsm.CanTransition("request") {
		t.Error("request should not be allowed while capturing")
	}
}

func TestPhase_Transitions(t *testing.T) {
	tests := []struct {
		phase  capture.Phase
		event  string
		target capture.Phase
		ok     bool
	}{
		{capture.PhaseIdle, "request", capture.PhaseRequestingPermission, true},
		{capture.PhaseRequestingPermission, "deny", capture.PhasePermissionDenied, true},
		{capture.PhaseRequestingPermission, "grant", capture.PhaseCapturing, true},
		{capture.PhaseCapturing, "cancel", capture.PhaseCancelled, true},
		{capture.PhaseCapturing, "confirm", capture.PhaseCaptured, true},
		{capture.PhaseIdle, "grant", "", false},
		{capture.PhaseCaptured, "request", "", false},
		{capture.PhasePermissionDenied, "grant", "", false},
	}

	for _, tt := range tests {
		got, err := tt.phase.TransitionWith(tt.event)
		if tt.ok {
			if err != nil {
				t.Errorf("%s + %s: unexpected error %v", tt.phase, tt.event, err)
			} else if got != tt.target {
				t.Errorf("%s + %s = %s, want %s", tt.phase, tt.event, got, tt.target)
			}
		} else if err == nil {
			t.Errorf("%s + %s: expected error", tt.phase, tt.event)
		}
	}
}

func TestPhase_Terminal(t *testing.T) {
	terminal := map[capture.Phase]bool{
		capture.PhaseIdle:                 false,
		capture.PhaseRequestingPermission: false,
		capture.PhaseCapturing:            false,
		capture.PhasePermissionDenied:     true,
		capture.PhaseCancelled:            true,
		capture.PhaseCaptured:             true,
	}

	for _, p := range capture.AllPhases() {
		if !p.IsValid() {
			t.Errorf("AllPhases returned invalid phase %s", p)
		}
		if p.IsTerminal() != terminal[p] {
			t.Errorf("%s.IsTerminal() = %v, want %v", p, p.IsTerminal(), terminal[p])
		}
		if p.IsTerminal() && len(p.ValidEvents()) != 0 {
			t.Errorf("terminal phase %s has events %v", p, p.ValidEvents())
		}
	}

	if capture.Phase("developing").IsValid() {
		t.Error("unknown phase reported valid")
	}
}
