// Package report renders an inspection draft into the plain-text summary
// report. Rendering is pure and has no error paths: the same draft always
// produces byte-identical output.
package report

import (
	"fmt"
	"strings"

	"github.com/aufield/sitesheet/internal/domain/inspection"
)

const (
	title   = "WA STRUCTURAL INSPECTION REPORT"
	divider = "================================================"
	rule    = "------------------------------------------------"

	// Placeholders substituted for empty user input.
	placeholderField        = "N/A"
	placeholderNotes        = "Nil observed defects recorded."
	placeholderGeneralNotes = "None provided."
)

// scopeNotes is the fixed regulatory disclaimer block appended verbatim to
// every report regardless of draft contents.
var scopeNotes = [4]string{
	"This report records a visual inspection of accessible structural elements only; no invasive or destructive testing was undertaken.",
	"Furniture, stored goods, floor coverings and concealed areas were not moved or opened, and defects hidden at the time of inspection are excluded.",
	"Findings reflect the condition of the property on the inspection date only and are not a warranty against future movement or deterioration.",
	"This report is prepared solely for the named client under the Building Act 2011 (WA) and may not be relied upon by any other party.",
}

// ScopeNotes returns the fixed disclaimer sentences in report order.
func ScopeNotes() []string {
	notes := make([]string, len(scopeNotes))
	copy(notes, scopeNotes[:])
	return notes
}

// Render returns the full report as a single newline-joined string with a
// trailing newline.
func Render(d *inspection.Draft) string {
	return strings.Join(Lines(d), "\n") + "\n"
}

// Lines returns the report as an ordered sequence of text lines.
func Lines(d *inspection.Draft) []string {
	lines := make([]string, 0, 64)

	lines = append(lines,
		title,
		divider,
		"",
		"Client: "+orPlaceholder(d.ClientInfo.ClientName),
		"Property: "+orPlaceholder(d.ClientInfo.PropertyAddress),
		"Inspection date: "+orPlaceholder(d.ClientInfo.InspectionDate),
		fmt.Sprintf("Engineer: %s (Reg: %s)",
			orPlaceholder(d.ClientInfo.EngineerName),
			orPlaceholder(d.ClientInfo.RegistrationNumber)),
		"",
		"CHECKLIST",
		rule,
	)

	for i, item := range d.Checklist {
		notes := item.Notes
		if notes == "" {
			notes = placeholderNotes
		}
		photo := "No"
		if item.PhotoURI != "" {
			photo = "Yes"
		}
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, item.Label),
			"   Status: "+item.Status.DisplayName(),
			"   Notes: "+notes,
			"   Photo captured: "+photo,
		)
	}

	generalNotes := d.GeneralNotes
	if generalNotes == "" {
		generalNotes = placeholderGeneralNotes
	}
	lines = append(lines,
		"",
		"GENERAL NOTES",
		rule,
		generalNotes,
		"",
		"SCOPE & LIMITATIONS",
		rule,
	)

	for i, note := range scopeNotes {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, note))
	}

	return lines
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholderField
	}
	return s
}
