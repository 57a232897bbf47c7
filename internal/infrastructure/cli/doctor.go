package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/aufield/sitesheet/internal/infrastructure/config"
	"github.com/aufield/sitesheet/internal/infrastructure/kvstore"
	"github.com/aufield/sitesheet/internal/infrastructure/storage"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of the sitesheet workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Running Sitesheet Doctor...")

		root, err := workspaceRoot()
		if err != nil {
			return err
		}

		hasIssues := false
		check := func(name string, fn func() error) {
			fmt.Printf("Checking %s... ", name)
			if err := fn(); err != nil {
				fmt.Printf("FAIL\n  Error: %v\n", err)
				hasIssues = true
			} else {
				fmt.Printf("PASS\n")
			}
		}

		check("Workspace", func() error {
			if !config.IsInitialized(root) {
				return fmt.Errorf(".sitesheet directory not found (run 'sitesheet init')")
			}
			return nil
		})
		if hasIssues {
			fmt.Println("\nissues found! Please fix them before continuing.")
			return fmt.Errorf("doctor found issues")
		}

		var settings *config.Settings
		check("Settings", func() error {
			settings, err = config.Load(root)
			return err
		})

		check("Photos Directory", func() error {
			info, err := os.Stat(config.PhotosPath(root))
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", config.PhotosPath(root))
			}
			return nil
		})

		check("Camera Command", func() error {
			if settings == nil || len(settings.Camera.Command) == 0 {
				fmt.Printf("(not configured) ")
				return nil
			}
			if _, err := exec.LookPath(settings.Camera.Command[0]); err != nil {
				// A missing camera only downgrades captures to denied.
				fmt.Printf("(%q not in PATH, captures will be denied) ", settings.Camera.Command[0])
			}
			return nil
		})

		var kv *kvstore.Store
		check("Draft Store", func() error {
			kv, err = kvstore.Open(config.StorePath(root), logger)
			return err
		})
		if kv != nil {
			defer kv.Close()

			check("Draft Payload", func() error {
				drafts := storage.NewDraftStore(kv, logger)
				data, ok, err := drafts.RawPayload(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Printf("(no draft stored) ")
					return nil
				}
				violations, err := storage.ValidatePayload(data)
				if err != nil {
					return err
				}
				if len(violations) > 0 {
					return fmt.Errorf("%d schema violations, first: %s (a load will fall back to defaults for the damaged parts)", len(violations), violations[0])
				}
				return nil
			})
		}

		if hasIssues {
			fmt.Println("\nissues found! Please fix them before continuing.")
			return fmt.Errorf("doctor found issues")
		}
		fmt.Println("\nEverything looks good!")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
