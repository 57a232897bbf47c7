package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/aufield/sitesheet/internal/domain/inspection"
	"github.com/aufield/sitesheet/internal/infrastructure/wiring"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	return buf.String()
}

// newWorkspace initializes a sitesheet workspace in a temp directory and
// points the --workspace flag at it for the duration of the test.
func newWorkspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if _, err := wiring.Initialize(dir, nil); err != nil {
		t.Fatalf("initialize workspace: %v", err)
	}

	old := workspacePath
	workspacePath = dir
	t.Cleanup(func() { workspacePath = old })

	return dir
}

// seedSheet saves a draft with a recognizable client name so read-side
// commands have something to print.
func seedSheet(t *testing.T, root string) {
	t.Helper()

	ws, err := wiring.Open(root, nil)
	if err != nil {
		t.Fatalf("open workspace: %v", err)
	}
	defer ws.Close()

	ctx := context.Background()
	if _, err := ws.Sheets.SetClientField(ctx, inspection.FieldClientName, "K. Dwyer"); err != nil {
		t.Fatalf("seed client name: %v", err)
	}
	if _, err := ws.Sheets.SetClientField(ctx, inspection.FieldPropertyAddress, "12 Marri Loop, Baldivis WA"); err != nil {
		t.Fatalf("seed address: %v", err)
	}
}
