package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	tempDir := t.TempDir()

	s, err := Load(tempDir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.Camera.Quality != 0.8 {
		t.Errorf("default quality = %v, want 0.8", s.Camera.Quality)
	}
	if len(s.Camera.Command) == 0 {
		t.Error("default camera command is empty")
	}
	if s.Engineer.Name != "" || s.Engineer.Registration != "" {
		t.Errorf("default engineer should be empty: %+v", s.Engineer)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	input := &Settings{
		Engineer: Engineer{Name: "A. Okafor", Registration: "PE-55821"},
		Camera:   Camera{Command: []string{"grab-photo", "{output}"}, Quality: 0.6},
	}
	if err := Save(tempDir, input); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	s, err := Load(tempDir)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s.Engineer != input.Engineer {
		t.Errorf("engineer = %+v", s.Engineer)
	}
	if s.Camera.Quality != 0.6 {
		t.Errorf("quality = %v", s.Camera.Quality)
	}
	if len(s.Camera.Command) != 2 || s.Camera.Command[0] != "grab-photo" {
		t.Errorf("command = %v", s.Camera.Command)
	}
}

func TestLoadFillsAbsentFields(t *testing.T) {
	tempDir := t.TempDir()
	if err := Initialize(tempDir); err != nil {
		t.Fatal(err)
	}

	// Settings file written by hand with only the engineer block.
	raw := "engineer:\n  name: J. Amundsen\n"
	if err := os.WriteFile(SettingsPath(tempDir), []byte(raw), 0600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	if s.Engineer.Name != "J. Amundsen" {
		t.Errorf("engineer name = %q", s.Engineer.Name)
	}
	if s.Camera.Quality != 0.8 {
		t.Errorf("absent quality should default to 0.8, got %v", s.Camera.Quality)
	}
	if len(s.Camera.Command) == 0 {
		t.Error("absent camera command should default")
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	if err := Initialize(tempDir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(SettingsPath(tempDir), []byte("::bad"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tempDir); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestLoadClampsQuality(t *testing.T) {
	tempDir := t.TempDir()
	if err := Initialize(tempDir); err != nil {
		t.Fatal(err)
	}
	raw := "camera:\n  quality: 3.5\n"
	if err := os.WriteFile(SettingsPath(tempDir), []byte(raw), 0600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	if s.Camera.Quality != 0.8 {
		t.Errorf("out-of-range quality should reset to 0.8, got %v", s.Camera.Quality)
	}
}

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()

	if IsInitialized(tempDir) {
		t.Fatal("fresh directory reported initialized")
	}
	if err := Initialize(tempDir); err != nil {
		t.Fatal(err)
	}
	if !IsInitialized(tempDir) {
		t.Fatal("initialized directory not detected")
	}

	if _, err := os.Stat(PhotosPath(tempDir)); err != nil {
		t.Errorf("photos directory missing: %v", err)
	}
	if got := StorePath(tempDir); got != filepath.Join(tempDir, SitesheetDir, StoreFile) {
		t.Errorf("store path = %q", got)
	}
}
