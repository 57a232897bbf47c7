package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aufield/sitesheet/internal/domain/inspection"
	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved inspection sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		if _, err := ws.Sheets.Load(cmd.Context()); err != nil {
			if errors.Is(err, inspection.ErrNoDraft) {
				fmt.Println("No saved draft to clear.")
				return nil
			}
			return MapError(err)
		}

		if !clearYes && !confirm(bufio.NewReader(os.Stdin), "Delete the saved inspection sheet?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := ws.Sheets.Delete(cmd.Context()); err != nil {
			return MapError(fmt.Errorf("failed to clear draft: %w", err))
		}
		fmt.Println("Saved draft removed.")
		return nil
	},
}

func confirm(reader *bufio.Reader, label string) bool {
	fmt.Printf("%s [y/N]: ", label)
	input, _ := reader.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")
	RootCmd.AddCommand(clearCmd)
}
