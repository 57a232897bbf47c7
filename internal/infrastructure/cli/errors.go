package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aufield/sitesheet/internal/domain/inspection"
	"github.com/aufield/sitesheet/internal/infrastructure/wiring"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, wiring.ErrNotInitialized):
		return NewCLIError("workspace not initialized", "Run 'sitesheet init' to create a .sitesheet workspace here", err)
	case errors.Is(err, inspection.ErrNoDraft):
		return NewCLIError("no saved draft", "Fill the sheet with 'sitesheet form' or 'sitesheet set', then save", err)
	case errors.Is(err, inspection.ErrItemNotFound):
		return NewCLIError("checklist item not found", "Valid item ids: "+strings.Join(inspection.TemplateIDs(), ", "), err)
	case errors.Is(err, inspection.ErrUnknownClientField):
		return NewCLIError("unknown client field", "Valid fields: "+joinClientFields(), err)
	}

	return err
}

func joinClientFields() string {
	fields := inspection.AllClientFields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
