package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aufield/sitesheet/internal/infrastructure/wiring"
)

func workspaceRoot() (string, error) {
	if workspacePath != "" {
		abs, err := filepath.Abs(workspacePath)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path %q: %w", workspacePath, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("workspace path %q: %w", abs, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("workspace path %q is not a directory", abs)
		}
		return abs, nil
	}
	return os.Getwd()
}

// openWorkspace resolves the workspace root and opens the store and
// services over it. Callers own the returned workspace and must Close it.
func openWorkspace() (*wiring.Workspace, error) {
	root, err := workspaceRoot()
	if err != nil {
		return nil, err
	}
	ws, err := wiring.Open(root, logger)
	if err != nil {
		return nil, MapError(err)
	}
	return ws, nil
}
