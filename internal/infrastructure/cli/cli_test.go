package cli

import (
	"bufio"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			reader := bufio.NewReader(strings.NewReader(tt.input))
			out := captureStdout(t, func() {
				if got := confirm(reader, "Delete?"); got != tt.want {
					t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
				}
			})
			if !strings.Contains(out, "[y/N]") {
				t.Errorf("prompt missing [y/N]: %q", out)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	quiet := newLogger(false)
	if quiet.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default logger should not emit debug")
	}
	if !quiet.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("default logger should emit warnings")
	}

	loud := newLogger(true)
	if !loud.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose logger should emit debug")
	}
}
