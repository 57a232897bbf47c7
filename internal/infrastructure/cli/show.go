package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved inspection sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		draft, err := ws.Sheets.Load(cmd.Context())
		if err != nil {
			return MapError(err)
		}

		if showJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(draft)
		}

		fmt.Println("Inspection Sheet")
		fmt.Println("----------------")
		fmt.Printf("  Client:       %s\n", draft.ClientInfo.ClientName)
		fmt.Printf("  Property:     %s\n", draft.ClientInfo.PropertyAddress)
		fmt.Printf("  Date:         %s\n", draft.ClientInfo.InspectionDate)
		fmt.Printf("  Engineer:     %s\n", draft.ClientInfo.EngineerName)
		fmt.Printf("  Registration: %s\n", draft.ClientInfo.RegistrationNumber)

		fmt.Printf("\nChecklist (%d defects)\n", draft.DefectCount())
		fmt.Println("----------------------")
		for i, item := range draft.Checklist {
			photo := " "
			if item.PhotoURI != "" {
				photo = "*"
			}
			fmt.Printf("  %d. %-10s %-34s %s %s\n", i+1, item.ID, item.Label, photo, item.Status.DisplayName())
			if item.Notes != "" {
				fmt.Printf("     %s\n", item.Notes)
			}
		}

		if draft.GeneralNotes != "" {
			fmt.Printf("\nGeneral notes: %s\n", draft.GeneralNotes)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(showCmd)
}
