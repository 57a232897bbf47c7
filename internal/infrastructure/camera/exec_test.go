package camera_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aufield/sitesheet/internal/domain/capture"
	"github.com/aufield/sitesheet/internal/infrastructure/camera"
)

// writeScript drops a shell script into dir and returns an argv template
// invoking it through /bin/sh.
func writeScript(t *testing.T, dir, body string) []string {
	t.Helper()

	path := filepath.Join(dir, "camera.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0700); err != nil {
		t.Fatal(err)
	}
	return []string{"/bin/sh", path, "{output}", "{quality}"}
}

func TestExecService_Captured(t *testing.T) {
	dir := t.TempDir()
	photos := filepath.Join(dir, "photos")
	command := writeScript(t, dir, `printf 'jpeg-bytes' > "$1"`)

	svc := camera.NewExecService(command, photos, nil)
	ctx := context.Background()

	granted, err := svc.RequestPermission(ctx)
	if err != nil || !granted {
		t.Fatalf("RequestPermission: granted=%v err=%v", granted, err)
	}

	shot, err := svc.Capture(ctx, capture.Options{ItemID: "roof", Quality: 0.8})
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if shot.Cancelled {
		t.Fatal("captured shot reported cancelled")
	}
	if !strings.HasPrefix(filepath.Base(shot.URI), "roof-") || !strings.HasSuffix(shot.URI, ".jpg") {
		t.Errorf("photo name = %q", shot.URI)
	}
	if data, err := os.ReadFile(shot.URI); err != nil || string(data) != "jpeg-bytes" {
		t.Errorf("photo content = %q err=%v", data, err)
	}
}

func TestExecService_QualitySubstituted(t *testing.T) {
	dir := t.TempDir()
	command := writeScript(t, dir, `printf '%s' "$2" > "$1"`)

	svc := camera.NewExecService(command, filepath.Join(dir, "photos"), nil)

	shot, err := svc.Capture(context.Background(), capture.Options{ItemID: "walls", Quality: 0.8})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(shot.URI)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0.8" {
		t.Errorf("quality arg = %q, want 0.8", data)
	}
}

func TestExecService_Cancelled(t *testing.T) {
	dir := t.TempDir()
	command := writeScript(t, dir, `exit 0`)

	svc := camera.NewExecService(command, filepath.Join(dir, "photos"), nil)

	shot, err := svc.Capture(context.Background(), capture.Options{ItemID: "roof", Quality: 0.8})
	if err != nil {
		t.Fatalf("clean exit without photo must not error: %v", err)
	}
	if !shot.Cancelled {
		t.Error("shot not reported cancelled")
	}
	if shot.URI != "" {
		t.Errorf("cancelled shot carries uri %q", shot.URI)
	}
}

func TestExecService_Failure(t *testing.T) {
	dir := t.TempDir()
	command := writeScript(t, dir, `exit 3`)

	svc := camera.NewExecService(command, filepath.Join(dir, "photos"), nil)

	if _, err := svc.Capture(context.Background(), capture.Options{ItemID: "roof", Quality: 0.8}); err == nil {
		t.Error("nonzero exit did not surface as an error")
	}
}

func TestExecService_PermissionDenied(t *testing.T) {
	ctx := context.Background()

	unconfigured := camera.NewExecService(nil, t.TempDir(), nil)
	if granted, err := unconfigured.RequestPermission(ctx); err != nil || granted {
		t.Errorf("unconfigured command: granted=%v err=%v", granted, err)
	}

	missing := camera.NewExecService([]string{"definitely-not-a-real-binary-4711"}, t.TempDir(), nil)
	if granted, err := missing.RequestPermission(ctx); err != nil || granted {
		t.Errorf("missing command: granted=%v err=%v", granted, err)
	}
}

func TestExecService_UniquePhotoNames(t *testing.T) {
	dir := t.TempDir()
	command := writeScript(t, dir, `printf 'x' > "$1"`)

	svc := camera.NewExecService(command, filepath.Join(dir, "photos"), nil)
	ctx := context.Background()

	first, err := svc.Capture(ctx, capture.Options{ItemID: "roof", Quality: 0.8})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Capture(ctx, capture.Options{ItemID: "roof", Quality: 0.8})
	if err != nil {
		t.Fatal(err)
	}
	if first.URI == second.URI {
		t.Errorf("repeat captures share a name: %q", first.URI)
	}
}
