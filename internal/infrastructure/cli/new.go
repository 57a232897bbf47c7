package cli

import (
	"errors"
	"fmt"

	"github.com/aufield/sitesheet/internal/domain/inspection"
	"github.com/spf13/cobra"
)

var newForce bool

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh inspection sheet and save it",
	Long: `Start a fresh inspection sheet: empty client details (engineer name and
registration prefilled from settings), today's inspection date, every
checklist item satisfactory. The new sheet replaces any stored draft, so
--force is required when one exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		if !newForce {
			_, err := ws.Sheets.Load(cmd.Context())
			switch {
			case err == nil:
				return NewCLIError("a saved draft already exists", "Re-run with --force to replace it, or 'sitesheet clear' first", nil)
			case errors.Is(err, inspection.ErrNoDraft):
			default:
				return MapError(fmt.Errorf("failed to check for existing draft: %w", err))
			}
		}

		draft := ws.Sheets.NewDraft()
		if err := ws.Sheets.Save(cmd.Context(), draft); err != nil {
			return MapError(fmt.Errorf("failed to save new draft: %w", err))
		}

		fmt.Printf("New inspection sheet saved (inspection date %s).\n", draft.ClientInfo.InspectionDate)
		return nil
	},
}

func init() {
	newCmd.Flags().BoolVar(&newForce, "force", false, "Replace an existing saved draft")
	RootCmd.AddCommand(newCmd)
}
