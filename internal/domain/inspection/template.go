// Package inspection holds the domain model for a structural site
// inspection: the fixed checklist template, the draft aggregate and its
// update operations.
package inspection

// ItemDef is one fixed entry of the checklist template.
type ItemDef struct {
	ID    string
	Label string
}

// ChecklistSize is the fixed number of checklist items. The set never grows
// or shrinks at runtime; items are only mutated in place by id.
const ChecklistSize = 8

// checklistTemplate is the canonical ordered template. Report numbering is
// 1-based over this order, so the position of each entry is contractual.
var checklistTemplate = [ChecklistSize]ItemDef{
	{ID: "footings", Label: "Footings & Foundations"},
	{ID: "subfloor", Label: "Subfloor Structure"},
	{ID: "walls", Label: "Walls & Load-Bearing Elements"},
	{ID: "roof", Label: "Roof Framing"},
	{ID: "retaining", Label: "Retaining Walls & Site Works"},
	{ID: "cracking", Label: "Cracking & Structural Movement"},
	{ID: "drainage", Label: "Moisture & Site Drainage"},
	{ID: "external", Label: "External Structures & Attachments"},
}

// Template returns a copy of the checklist template in report order.
func Template() []ItemDef {
	defs := make([]ItemDef, ChecklistSize)
	copy(defs, checklistTemplate[:])
	return defs
}

// TemplateIDs returns the item ids in template order.
func TemplateIDs() []string {
	ids := make([]string, ChecklistSize)
	for i, def := range checklistTemplate {
		ids[i] = def.ID
	}
	return ids
}

