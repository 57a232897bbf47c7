package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	workspacePath string
	verbose       bool
	logger        *slog.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "sitesheet",
	Version: Version,
	Short:   "Site inspection sheets for WA residential structural engineers",
	Long: `Sitesheet keeps one structural inspection sheet per workspace:
client details, the fixed eight-item checklist, photos and general notes.
Fill the sheet in the interactive form or with one-shot commands, then
render the plain-text report for the client file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	err := RootCmd.Execute()
	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Hint != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", cliErr.Hint)
	}
	return err
}

// newLogger builds the diagnostics logger. The user-facing surface is
// printed output; slog carries infrastructure detail to stderr and stays
// quiet unless --verbose lowers the level.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func init() {
	logger = newLogger(false)
	RootCmd.PersistentFlags().StringVar(&workspacePath, "workspace", "", "Workspace directory (default: current directory)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
