package capture

import (
	"context"
	"fmt"
)

// Outcome is the terminal result of a capture attempt.
type Outcome string

const (
	OutcomeCaptured         Outcome = "captured"
	OutcomeCancelled        Outcome = "cancelled"
	OutcomePermissionDenied Outcome = "permission_denied"
)

// DisplayName returns a human-readable description suitable for alerts.
func (o Outcome) DisplayName() string {
	switch o {
	case OutcomeCaptured:
		return "Photo captured"
	case OutcomeCancelled:
		return "Capture cancelled"
	case OutcomePermissionDenied:
		return "Camera permission denied"
	default:
		return string(o)
	}
}

// Result is what a completed capture attempt produced. PhotoURI is only
// set when Outcome is OutcomeCaptured.
type Result struct {
	Outcome  Outcome
	PhotoURI string
}

// Captured returns true if the attempt ended with a stored photo.
func (r Result) Captured() bool {
	return r.Outcome == OutcomeCaptured
}

// Bridge drives a capture attempt through its lifecycle against a Service.
// Permission denial and user cancellation surface as outcomes; errors are
// reserved for hardware and I/O failures.
type Bridge struct {
	svc Service
}

func NewBridge(svc Service) *Bridge {
	return &Bridge{svc: svc}
}

// Capture runs one full attempt for the given item and returns its outcome.
func (b *Bridge) Capture(ctx context.Context, opts Options) (Result, error) {
	if opts.Quality == 0 {
		opts.Quality = DefaultQuality
	}

	machine, err := NewAttemptMachine(opts.ItemID)
	if err != nil {
		return Result{}, err
	}

	if err := machine.Transition("request"); err != nil {
		return Result{}, err
	}

	granted, err := b.svc.RequestPermission(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("requesting camera permission: %w", err)
	}
	if !granted {
		if err := machine.Transition("deny"); err != nil {
			return Result{}, err
		}
		return Result{Outcome: OutcomePermissionDenied}, nil
	}

	if err := machine.Transition("grant"); err != nil {
		return Result{}, err
	}

	shot, err := b.svc.Capture(ctx, opts)
	if err != nil {
		return Result{}, fmt.Errorf("capturing photo: %w", err)
	}
	if shot.Cancelled {
		if err := machine.Transition("cancel"); err != nil {
			return Result{}, err
		}
		return Result{Outcome: OutcomeCancelled}, nil
	}

	if err := machine.Transition("confirm"); err != nil {
		return Result{}, err
	}
	return Result{Outcome: OutcomeCaptured, PhotoURI: shot.URI}, nil
}
