// Package camera integrates an external still-capture command as the
// capture service.
package camera

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aufield/sitesheet/internal/domain/capture"
)

// ExecService runs a configured command to take a photo. The command
// signals through its exit status and the output file:
//
//	exit 0 and the output file exists -> captured
//	exit 0 and no output file         -> cancelled by the user
//	nonzero exit                      -> failure
type ExecService struct {
	command   []string
	photosDir string
	logger    *slog.Logger
}

// NewExecService builds a service around the given argv template. The
// placeholders {output} and {quality} are substituted on every shot.
func NewExecService(command []string, photosDir string, logger *slog.Logger) *ExecService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecService{command: command, photosDir: photosDir, logger: logger}
}

// RequestPermission reports whether the capture command is available. An
// unconfigured or missing command is a denial, not an error.
func (s *ExecService) RequestPermission(ctx context.Context) (bool, error) {
	if len(s.command) == 0 {
		return false, nil
	}
	if _, err := exec.LookPath(s.command[0]); err != nil {
		s.logger.Debug("capture command unavailable", "command", s.command[0])
		return false, nil
	}
	return true, nil
}

// Capture runs the capture command and interprets its outcome.
func (s *ExecService) Capture(ctx context.Context, opts capture.Options) (capture.Shot, error) {
	if len(s.command) == 0 {
		return capture.Shot{}, fmt.Errorf("no capture command configured")
	}

	if err := os.MkdirAll(s.photosDir, 0700); err != nil {
		return capture.Shot{}, fmt.Errorf("failed to create photos directory: %w", err)
	}

	output := filepath.Join(s.photosDir, photoName(opts.ItemID))
	argv := expandArgv(s.command, output, opts.Quality)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if err := cmd.Run(); err != nil {
		return capture.Shot{}, fmt.Errorf("capture command failed: %w", err)
	}

	if _, err := os.Stat(output); os.IsNotExist(err) {
		// Clean exit without a photo means the user backed out.
		return capture.Shot{Cancelled: true}, nil
	} else if err != nil {
		return capture.Shot{}, fmt.Errorf("failed to stat captured photo: %w", err)
	}

	s.logger.Debug("photo captured", "item", opts.ItemID, "path", output)
	return capture.Shot{URI: output}, nil
}

func photoName(itemID string) string {
	if itemID == "" {
		itemID = "item"
	}
	return fmt.Sprintf("%s-%s.jpg", itemID, uuid.New().String())
}

func expandArgv(command []string, output string, quality float64) []string {
	q := strconv.FormatFloat(quality, 'f', -1, 64)

	argv := make([]string, len(command))
	for i, arg := range command {
		arg = strings.ReplaceAll(arg, "{output}", output)
		arg = strings.ReplaceAll(arg, "{quality}", q)
		argv[i] = arg
	}
	return argv
}
