package cli

import (
	"fmt"

	"github.com/aufield/sitesheet/internal/infrastructure/config"
	"github.com/aufield/sitesheet/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sitesheet workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := workspaceRoot()
		if err != nil {
			return err
		}

		existed := config.IsInitialized(root)
		if _, err := wiring.Initialize(root, logger); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		if existed {
			fmt.Printf("Workspace already initialized at %s\n", config.Dir(root))
			return nil
		}
		fmt.Printf("Initialized sitesheet workspace at %s\n", config.Dir(root))
		fmt.Printf("  Settings: %s\n", config.SettingsPath(root))
		fmt.Printf("  Store:    %s\n", config.StorePath(root))
		fmt.Printf("  Photos:   %s\n", config.PhotosPath(root))
		fmt.Println("\nEdit settings.yaml to prefill your engineer details and camera command.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
