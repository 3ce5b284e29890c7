package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/services"
)

var (
	comparePreset string
	compareLogP   string
	compareDeltaD string
	compareDeltaP string
	compareDeltaH string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all formulations side by side",
	Long: `Evaluates every candidate formulation for one drug and prints the
lipophilic gradient and Hansen distances side by side, without ranking.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&comparePreset, "preset", "", "validation drug id (see 'lipidlogic drugs')")
	compareCmd.Flags().StringVar(&compareLogP, "logp", "", "drug log P")
	compareCmd.Flags().StringVar(&compareDeltaD, "delta-d", "", "Hansen dispersion parameter δD")
	compareCmd.Flags().StringVar(&compareDeltaP, "delta-p", "", "Hansen polar parameter δP")
	compareCmd.Flags().StringVar(&compareDeltaH, "delta-h", "", "Hansen hydrogen-bonding parameter δH")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if predictor == nil {
		return errors.New("predictor not configured")
	}

	var props domain.DrugProperties
	if comparePreset != "" {
		props.SelectPreset(comparePreset)
		if props.PresetID == "" {
			return fmt.Errorf("unknown preset %q", comparePreset)
		}
	}
	for f, v := range map[domain.Field]string{
		domain.FieldLogP:   compareLogP,
		domain.FieldDeltaD: compareDeltaD,
		domain.FieldDeltaP: compareDeltaP,
		domain.FieldDeltaH: compareDeltaH,
	} {
		if v != "" {
			props.SetField(f, v)
		}
	}

	req, err := props.BuildRequest()
	if err != nil {
		if errors.Is(err, domain.ErrIncompleteProperties) {
			return errors.New("all four drug properties are required; use --preset or supply --logp, --delta-d, --delta-p and --delta-h")
		}
		return err
	}

	comparison, err := predictor.Compare(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	cmd.Printf("Drug log P: %.2f\n", comparison.DrugLogP)
	cmd.Println()
	cmd.Printf("  %-4s %-22s %10s %8s %8s  %s\n", "ID", "Formulation", "Δlog P", "Δδ core", "Δδ surf", "Structure")
	for _, id := range domain.FormulationIDs() {
		entry, ok := comparison.Formulations[id]
		if !ok {
			continue
		}
		cmd.Printf("  %-4s %-22s %10s %8.2f %8.2f  %s\n",
			id, entry.Name, services.FormatGradient(entry.Gradient),
			entry.DeltaCore, entry.DeltaSurf, entry.StructureType)
	}

	return nil
}
