package cli

import (
	"fmt"
	"strings"

	"github.com/aufield/sitesheet/internal/domain/inspection"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit the saved inspection sheet",
	Long: `Edit the saved inspection sheet in one shot: each set command loads the
stored draft (starting a fresh one if none exists), applies the change and
saves. Use the form for longer editing sessions.`,
}

var setClientCmd = &cobra.Command{
	Use:   "client <field> <value>",
	Short: "Set one client detail field",
	Long: `Set one client detail field. Valid fields: clientName, propertyAddress,
inspectionDate, engineerName, registrationNumber.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := inspection.ParseClientField(args[0])
		if err != nil {
			return MapError(err)
		}

		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		if _, err := ws.Sheets.SetClientField(cmd.Context(), field, args[1]); err != nil {
			return MapError(fmt.Errorf("failed to set client field: %w", err))
		}
		fmt.Printf("Set %s to %q.\n", field, args[1])
		return nil
	},
}

var (
	setItemNotes  string
	setItemStatus string
	setItemPhoto  string
)

var setItemCmd = &cobra.Command{
	Use:   "item <id>",
	Short: "Update one checklist item",
	Long: `Update the notes, status or photo reference of one checklist item.
Item ids: ` + strings.Join(inspection.TemplateIDs(), ", ") + `.
Statuses: satisfactory, monitor, defect_action_required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch inspection.ItemPatch
		if cmd.Flags().Changed("notes") {
			patch.Notes = &setItemNotes
		}
		if cmd.Flags().Changed("photo") {
			patch.PhotoURI = &setItemPhoto
		}
		if cmd.Flags().Changed("status") {
			status, err := inspection.ParseItemStatus(setItemStatus)
			if err != nil {
				return NewCLIError(err.Error(), "Valid statuses: satisfactory, monitor, defect_action_required", err)
			}
			patch.Status = &status
		}
		if patch.Notes == nil && patch.Status == nil && patch.PhotoURI == nil {
			return NewCLIError("nothing to update", "Pass at least one of --notes, --status, --photo", nil)
		}

		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		draft, err := ws.Sheets.UpdateItem(cmd.Context(), args[0], patch)
		if err != nil {
			return MapError(fmt.Errorf("failed to update item: %w", err))
		}

		item, _ := draft.Item(args[0])
		fmt.Printf("Updated %s: %s\n", item.ID, item.Status.DisplayName())
		return nil
	},
}

var setNotesCmd = &cobra.Command{
	Use:   "notes <text>",
	Short: "Set the general notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		if _, err := ws.Sheets.SetGeneralNotes(cmd.Context(), args[0]); err != nil {
			return MapError(fmt.Errorf("failed to set general notes: %w", err))
		}
		fmt.Println("General notes updated.")
		return nil
	},
}

func init() {
	setItemCmd.Flags().StringVar(&setItemNotes, "notes", "", "Observation notes for the item")
	setItemCmd.Flags().StringVar(&setItemStatus, "status", "", "Item status")
	setItemCmd.Flags().StringVar(&setItemPhoto, "photo", "", "Photo reference for the item")

	setCmd.AddCommand(setClientCmd)
	setCmd.AddCommand(setItemCmd)
	setCmd.AddCommand(setNotesCmd)
	RootCmd.AddCommand(setCmd)
}
