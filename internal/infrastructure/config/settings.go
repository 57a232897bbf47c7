// Package config handles the workspace layout and settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aufield/sitesheet/internal/domain/capture"
)

// Workspace layout under the project root.
const (
	SitesheetDir = ".sitesheet"
	SettingsFile = "settings.yaml"
	StoreFile    = "store.db"
	PhotosDir    = "photos"
)

// Engineer prefills applied to freshly created drafts.
type Engineer struct {
	Name         string `yaml:"name"`
	Registration string `yaml:"registration"`
}

// Camera configures the external capture command. Command is an argv
// template; {output} and {quality} are substituted per shot.
type Camera struct {
	Command []string `yaml:"command"`
	Quality float64  `yaml:"quality"`
}

// Settings is the persisted workspace configuration.
type Settings struct {
	Engineer Engineer `yaml:"engineer"`
	Camera   Camera   `yaml:"camera"`
}

// Default returns the settings used when no file exists.
func Default() *Settings {
	return &Settings{
		Camera: Camera{
			Command: []string{"sitesheet-camera", "--output", "{output}", "--quality", "{quality}"},
			Quality: capture.DefaultQuality,
		},
	}
}

// Dir returns the workspace directory under root.
func Dir(root string) string {
	return filepath.Join(root, SitesheetDir)
}

// SettingsPath returns the settings file path under root.
func SettingsPath(root string) string {
	return filepath.Join(Dir(root), SettingsFile)
}

// StorePath returns the key-value store path under root.
func StorePath(root string) string {
	return filepath.Join(Dir(root), StoreFile)
}

// PhotosPath returns the captured-photo directory under root.
func PhotosPath(root string) string {
	return filepath.Join(Dir(root), PhotosDir)
}

// IsInitialized reports whether root carries a workspace directory.
func IsInitialized(root string) bool {
	_, err := os.Stat(Dir(root))
	return err == nil
}

// Initialize creates the workspace skeleton under root.
func Initialize(root string) error {
	if err := os.MkdirAll(Dir(root), 0700); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}
	if err := os.MkdirAll(PhotosPath(root), 0700); err != nil {
		return fmt.Errorf("failed to create photos directory: %w", err)
	}
	return nil
}

// Load reads the settings under root. A missing file yields defaults;
// absent fields are filled in field by field.
func Load(root string) (*Settings, error) {
	data, err := os.ReadFile(SettingsPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if len(s.Camera.Command) == 0 {
		s.Camera.Command = Default().Camera.Command
	}
	if s.Camera.Quality <= 0 || s.Camera.Quality > 1 {
		s.Camera.Quality = capture.DefaultQuality
	}

	return &s, nil
}

// Save writes the settings under root.
func Save(root string, s *Settings) error {
	if s == nil {
		return fmt.Errorf("settings are nil")
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return os.WriteFile(SettingsPath(root), data, 0600)
}
