package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/aufield/sitesheet/internal/domain/inspection"
	"github.com/aufield/sitesheet/internal/infrastructure/config"
	"github.com/aufield/sitesheet/internal/infrastructure/watch"
	"github.com/spf13/cobra"
)

var (
	reportWatch  bool
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the inspection report",
	Long: `Render the saved inspection sheet as the plain-text client report.
With --watch the report re-renders whenever the stored draft changes, so a
second terminal shows edits from the form or from set commands as they are
saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		render := func(ctx context.Context) error {
			text, err := ws.Sheets.Report(ctx)
			if err != nil {
				return err
			}
			if reportOutput != "" {
				return os.WriteFile(reportOutput, []byte(text), 0o600)
			}
			fmt.Print(text)
			return nil
		}

		if err := render(cmd.Context()); err != nil {
			return MapError(err)
		}
		if !reportWatch {
			return nil
		}

		fmt.Fprintln(os.Stderr, "\nWatching for changes... (ctrl+c to stop)")
		if os.Getenv("SITESHEET_WATCH_ONCE") == "true" {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		watcher, err := watch.NewStoreWatcher(config.StorePath(ws.Root), 0, func() {
			fmt.Fprintf(os.Stderr, "\n--- sheet changed at %s ---\n", time.Now().Format("15:04:05"))
			if err := render(ctx); err != nil {
				// A cleared draft mid-watch is reported, not fatal.
				if errors.Is(err, inspection.ErrNoDraft) {
					fmt.Fprintln(os.Stderr, "draft was cleared; waiting for a new save")
					return
				}
				fmt.Fprintf(os.Stderr, "re-render failed: %v\n", err)
			}
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}

		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("watch failed: %w", err)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportWatch, "watch", false, "Re-render when the stored draft changes")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Write the report to a file instead of stdout")
	RootCmd.AddCommand(reportCmd)
}
