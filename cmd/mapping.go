package cmd

import (
	"context"
	"errors"
	"fmt"

	"inventory-viewer/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// missingChecker is implemented by mapping providers that can list absent files.
type missingChecker interface {
	Missing(ctx context.Context) ([]string, error)
}

// mappingCmd represents the mapping command
var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Inspect the mapping dictionaries",
}

// mappingCheckCmd represents the mapping check command
var mappingCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing mapping files and the resulting registry size",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, provider, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if provider == nil {
			return errors.New("mapping source is none; nothing to check")
		}

		out := cmd.OutOrStdout()
		if checker, ok := provider.(missingChecker); ok {
			missing, err := checker.Missing(cmd.Context())
			if err != nil {
				return fmt.Errorf("mapping check failed: %w", err)
			}
			if len(missing) > 0 {
				logg.Warn("Missing mapping files", zap.Strings("missing", missing))
			}
			fmt.Fprintf(out, "\n=== Mapping Files (%s) ===\n", provider.Name())
			fmt.Fprintf(out, "Missing: %d\n", len(missing))
			for _, m := range missing {
				fmt.Fprintf(out, "  - %s\n", m)
			}
		}

		svc := inventory.NewService(cfg.Inventory, provider, logg)
		report, err := svc.LoadMapping(cmd.Context())
		if err != nil {
			return err
		}
		for name, reason := range report.Failed {
			fmt.Fprintf(out, "Unreadable: %s (%s)\n", name, reason)
		}

		status := svc.MappingStatus()
		fmt.Fprintln(out, "\n=== Registry ===")
		fmt.Fprintf(out, "Ready: %t\n", status.Ready)
		fmt.Fprintf(out, "Characters: %d\n", status.Characters)
		fmt.Fprintf(out, "Weapons: %d (rarities: %d)\n", status.Weapons, status.Rarities)
		fmt.Fprintf(out, "Echoes: %d\n", status.Echoes)
		fmt.Fprintf(out, "Sonatas: %d\n", status.Sonatas)
		fmt.Fprintf(out, "Items: %d\n", status.Items)
		fmt.Fprintf(out, "Echo Stats: %d\n", status.EchoStats)
		fmt.Fprintf(out, "Character Icons: %d\n", status.Icons)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mappingCmd)
	mappingCmd.AddCommand(mappingCheckCmd)
}
