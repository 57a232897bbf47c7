package cli

import (
	"fmt"

	"github.com/aufield/sitesheet/internal/domain/capture"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture <item-id>",
	Short: "Capture a photo and attach it to a checklist item",
	Long: `Capture a photo with the configured camera command and attach it to the
named checklist item. The draft is only saved when a photo was actually
taken: a denied permission or a cancelled capture leaves the stored sheet
untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		res, draft, err := ws.Sheets.CapturePhoto(cmd.Context(), args[0])
		if err != nil {
			return MapError(fmt.Errorf("failed to capture photo: %w", err))
		}

		switch res.Outcome {
		case capture.OutcomeCaptured:
			item, _ := draft.Item(args[0])
			fmt.Printf("Photo captured for %s: %s\n", item.Label, res.PhotoURI)
		case capture.OutcomeCancelled:
			fmt.Println("Capture cancelled. The sheet was not changed.")
		case capture.OutcomePermissionDenied:
			fmt.Println("Camera permission denied. Check the camera command in settings.yaml.")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(captureCmd)
}
