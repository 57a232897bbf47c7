// Package wiring assembles the infrastructure and application layers for a
// workspace root. Commands open a Workspace, use the services it exposes,
// and close it when they are done.
package wiring

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aufield/sitesheet/internal/application"
	"github.com/aufield/sitesheet/internal/domain/capture"
	"github.com/aufield/sitesheet/internal/infrastructure/camera"
	"github.com/aufield/sitesheet/internal/infrastructure/config"
	"github.com/aufield/sitesheet/internal/infrastructure/kvstore"
	"github.com/aufield/sitesheet/internal/infrastructure/storage"
)

// ErrNotInitialized indicates the root has no .sitesheet workspace yet.
var ErrNotInitialized = errors.New("workspace not initialized")

// Workspace bundles the open store and the services wired on top of it.
// Bridge is exposed separately from Sheets for callers that capture onto an
// in-memory draft without persisting, like the form.
type Workspace struct {
	Root     string
	Settings *config.Settings
	KV       *kvstore.Store
	Drafts   *storage.DraftStore
	Bridge   *capture.Bridge
	Sheets   *application.SheetService
}

// Open loads settings and opens the draft store for an initialized root.
func Open(root string, logger *slog.Logger) (*Workspace, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !config.IsInitialized(root) {
		return nil, ErrNotInitialized
	}

	settings, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	kv, err := kvstore.Open(config.StorePath(root), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open draft store: %w", err)
	}

	drafts := storage.NewDraftStore(kv, logger)
	cam := camera.NewExecService(settings.Camera.Command, config.PhotosPath(root), logger)
	bridge := capture.NewBridge(cam)
	prefill := application.Prefill{
		EngineerName:       settings.Engineer.Name,
		RegistrationNumber: settings.Engineer.Registration,
	}

	return &Workspace{
		Root:     root,
		Settings: settings,
		KV:       kv,
		Drafts:   drafts,
		Bridge:   bridge,
		Sheets:   application.NewSheetService(drafts, bridge, prefill, settings.Camera.Quality),
	}, nil
}

// Initialize creates the .sitesheet directory layout, writes default
// settings, and opens the store once so the database file exists.
func Initialize(root string, logger *slog.Logger) (*config.Settings, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := config.Initialize(root); err != nil {
		return nil, fmt.Errorf("failed to create workspace directories: %w", err)
	}

	settings, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := config.Save(root, settings); err != nil {
		return nil, fmt.Errorf("failed to write settings: %w", err)
	}

	kv, err := kvstore.Open(config.StorePath(root), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft store: %w", err)
	}
	if err := kv.Close(); err != nil {
		return nil, fmt.Errorf("failed to close draft store: %w", err)
	}
	return settings, nil
}

// Close releases the store. Safe to call on a nil workspace.
func (w *Workspace) Close() error {
	if w == nil || w.KV == nil {
		return nil
	}
	return w.KV.Close()
}
