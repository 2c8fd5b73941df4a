package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inventory-viewer/feature/inventory"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Ingest export files once and print the result",
	Long:  `Reads the given export files, normalizes them against the configured mapping source and prints the collection counts, or the full store with --json.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")
		dedup, _ := cmd.Flags().GetBool("dedup")

		cfg, logg, provider, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if dedup {
			cfg.Inventory.Dedup = true
		}
		svc := inventory.NewService(cfg.Inventory, provider, logg)
		preloadMapping(cmd.Context(), svc, logg)

		files := make([]inventory.File, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			files = append(files, inventory.File{Name: filepath.Base(path), Data: data})
		}

		report := svc.IngestFiles(cmd.Context(), files)

		if jsonOutput {
			data, err := json.MarshalIndent(svc.Snapshot(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n=== Ingestion ===")
		for _, f := range report.Files {
			if f.Error != "" {
				fmt.Fprintf(out, "%s: error: %s\n", f.Name, f.Error)
				continue
			}
			fmt.Fprintf(out, "%s: %s (+%d)\n", f.Name, f.Category, f.Added)
		}
		fmt.Fprintf(out, "Characters: %d\n", report.Counts.Characters)
		fmt.Fprintf(out, "Weapons: %d\n", report.Counts.Weapons)
		fmt.Fprintf(out, "Echoes: %d\n", report.Counts.Echoes)
		fmt.Fprintf(out, "Items: %d\n", report.Counts.Items)
		fmt.Fprintf(out, "Execution Time: %s\n", time.Since(startTime))

		logg.Debug("Ingestion completed", zap.Int("files", len(files)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().Bool("json", false, "Print the normalized store as JSON")
	ingestCmd.Flags().Bool("dedup", false, "Skip records whose id or name is already stored")
}
