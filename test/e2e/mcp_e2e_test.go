package e2e

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aufield/sitesheet/internal/domain/capture"
	"github.com/aufield/sitesheet/internal/domain/inspection"
	"github.com/aufield/sitesheet/internal/infrastructure/wiring"
)

// TestSheetServicesHappyPath drives the sheet service end-to-end through the
// wiring layer. These are the same code paths the MCP tools call.
func TestSheetServicesHappyPath(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sitesheet-mcp-e2e-*")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Test 1: Initialize workspace
	t.Log("Testing initialization...")
	if _, err := wiring.Initialize(tempDir, nil); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	ws, err := wiring.Open(tempDir, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = ws.Close() }()

	// Test 2: Fresh load
	t.Log("Testing fresh load...")
	draft, found, err := ws.Sheets.LoadOrNew(ctx)
	if err != nil {
		t.Fatalf("LoadOrNew failed: %v", err)
	}
	if found {
		t.Error("Expected no stored draft in a fresh workspace")
	}
	if len(draft.Checklist) != inspection.ChecklistSize {
		t.Errorf("Expected %d checklist items, got %d", inspection.ChecklistSize, len(draft.Checklist))
	}

	// Test 3: Set client fields
	t.Log("Testing client fields...")
	if _, err := ws.Sheets.SetClientField(ctx, inspection.FieldClientName, "K. Dwyer"); err != nil {
		t.Fatalf("SetClientField failed: %v", err)
	}
	if _, err := ws.Sheets.SetClientField(ctx, inspection.FieldPropertyAddress, "12 Marri Loop, Baldivis WA"); err != nil {
		t.Fatalf("SetClientField failed: %v", err)
	}

	// Test 4: Update a checklist item
	t.Log("Testing item update...")
	status := inspection.StatusDefect
	notes := "Stepped cracking above garage lintel"
	draft, err = ws.Sheets.UpdateItem(ctx, "cracking", inspection.ItemPatch{Status: &status, Notes: &notes})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if draft.DefectCount() != 1 {
		t.Errorf("Expected 1 defect, got %d", draft.DefectCount())
	}

	// Test 5: General notes
	t.Log("Testing general notes...")
	if _, err := ws.Sheets.SetGeneralNotes(ctx, "Reinspect after winter rains."); err != nil {
		t.Fatalf("SetGeneralNotes failed: %v", err)
	}

	// Test 6: Reload round-trips every edit
	t.Log("Testing reload...")
	draft, err = ws.Sheets.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if draft.ClientInfo.ClientName != "K. Dwyer" {
		t.Errorf("Expected 'K. Dwyer', got %s", draft.ClientInfo.ClientName)
	}
	item, ok := draft.Item("cracking")
	if !ok || item.Status != inspection.StatusDefect {
		t.Errorf("Expected cracking item marked defect, got %+v", item)
	}
	draftJSON, _ := json.Marshal(draft)
	if string(draftJSON) == "" {
		t.Error("Expected non-empty draft JSON")
	}

	// Test 7: Capture with the placeholder camera is denied, not an error
	t.Log("Testing capture...")
	result, _, err := ws.Sheets.CapturePhoto(ctx, "roof")
	if err != nil {
		t.Fatalf("CapturePhoto failed: %v", err)
	}
	if result.Outcome != capture.OutcomePermissionDenied {
		t.Errorf("Expected permission denied outcome, got %s", result.Outcome)
	}

	// Test 8: Report
	t.Log("Testing report...")
	text, err := ws.Sheets.Report(ctx)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if !strings.Contains(text, "WA STRUCTURAL INSPECTION REPORT") {
		t.Error("Expected report title")
	}
	if !strings.Contains(text, "Stepped cracking above garage lintel") {
		t.Error("Expected item notes in report")
	}

	// Test 9: Delete
	t.Log("Testing delete...")
	if err := ws.Sheets.Delete(ctx); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := ws.Sheets.Load(ctx); !errors.Is(err, inspection.ErrNoDraft) {
		t.Errorf("Expected ErrNoDraft after delete, got %v", err)
	}

	t.Log("All sheet service E2E tests passed!")
}
