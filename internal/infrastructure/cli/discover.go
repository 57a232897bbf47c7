package cli

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/aufield/sitesheet/internal/infrastructure/config"
	"github.com/aufield/sitesheet/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [root-dir]",
	Short: "Find sitesheet workspaces in a directory tree",
	Long: `Walk a directory tree and list every sitesheet workspace in it, with the
client and property of the stored sheet when one has been saved. Useful when
each inspected property keeps its own workspace directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		fmt.Printf("Searching for inspection workspaces in: %s\n", root)

		var roots []string
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // unreadable subtrees are skipped, not fatal
			}
			if d.IsDir() && d.Name() == config.SitesheetDir {
				roots = append(roots, filepath.Dir(path))
				return filepath.SkipDir
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to walk directory: %w", err)
		}

		if len(roots) == 0 {
			fmt.Println("No workspaces found.")
			return nil
		}

		fmt.Printf("Found %d workspaces:\n", len(roots))
		for _, r := range roots {
			abs, _ := filepath.Abs(r)
			fmt.Printf("- %s  (%s)\n", abs, describeWorkspace(abs))
		}
		return nil
	},
}

// describeWorkspace summarizes the stored sheet of one workspace for the
// discover listing. Failures degrade to a note instead of aborting the walk.
func describeWorkspace(root string) string {
	ws, err := wiring.Open(root, logger)
	if err != nil {
		return "unreadable"
	}
	defer ws.Close()

	draft, err := ws.Sheets.Load(context.Background())
	if err != nil {
		return "no saved draft"
	}

	client := draft.ClientInfo.ClientName
	if client == "" {
		client = "unnamed client"
	}
	if draft.ClientInfo.PropertyAddress == "" {
		return client
	}
	return fmt.Sprintf("%s, %s", client, draft.ClientInfo.PropertyAddress)
}

func init() {
	RootCmd.AddCommand(discoverCmd)
}
