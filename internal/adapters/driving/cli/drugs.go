package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
	"github.com/lipidlogic/lipidlogic-cli/internal/logger"
)

var drugsRemote bool

var drugsCmd = &cobra.Command{
	Use:   "drugs",
	Short: "List the validation drug catalog",
	Long: `Lists the validation drugs selectable as presets. By default the
built-in catalog is shown; --remote fetches the table the scoring service
publishes instead.`,
	RunE: runDrugs,
}

func init() {
	drugsCmd.Flags().BoolVar(&drugsRemote, "remote", false, "fetch the catalog from the scoring service")
	rootCmd.AddCommand(drugsCmd)
}

func runDrugs(cmd *cobra.Command, args []string) error {
	presets := domain.Presets()

	if drugsRemote {
		if predictor == nil {
			return errors.New("predictor not configured")
		}
		logger.Debug("fetching validation drug table from service")
		remote, err := predictor.ValidationDrugs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch validation drugs: %w", err)
		}
		presets = presets[:0]
		for _, p := range remote {
			presets = append(presets, p)
		}
		sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	}

	if len(presets) == 0 {
		cmd.Println("No validation drugs available.")
		return nil
	}

	cmd.Println("Validation drugs:")
	cmd.Println()
	for _, p := range presets {
		cmd.Printf("  %-10s %s\n", p.ID, p.Name)
		cmd.Printf("             log P %.2f  δD %.1f  δP %.1f  δH %.1f\n",
			p.LogP, p.HSP.DeltaD, p.HSP.DeltaP, p.HSP.DeltaH)
		if p.Classification != "" {
			cmd.Printf("             %s\n", p.Classification)
		}
		if p.OptimalFormulation != "" {
			cmd.Printf("             Confirmed optimal: %s\n", p.OptimalFormulation)
		}
		cmd.Println()
	}

	return nil
}
