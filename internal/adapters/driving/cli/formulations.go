package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
)

var formulationsCmd = &cobra.Command{
	Use:   "formulations",
	Short: "List the candidate formulation catalog",
	Long: `Fetches the candidate NLC formulations from the scoring service and
prints their composition and physicochemical descriptors.`,
	RunE: runFormulations,
}

func init() {
	rootCmd.AddCommand(formulationsCmd)
}

func runFormulations(cmd *cobra.Command, args []string) error {
	if predictor == nil {
		return errors.New("predictor not configured")
	}

	catalog, err := predictor.Formulations(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch formulations: %w", err)
	}

	if len(catalog) == 0 {
		cmd.Println("No formulations available.")
		return nil
	}

	for _, id := range domain.FormulationIDs() {
		info, ok := catalog[id]
		if !ok {
			continue
		}
		cmd.Printf("%s - %s\n", id, info.Name)
		cmd.Printf("  Core lipid: %s (log P %.2f)\n", info.CoreLipid, info.CoreLogP)
		cmd.Printf("  Surfactant: %s (log P %.2f)\n", info.Surfactant, info.SurfLogP)
		cmd.Printf("  Core HSP:   δD %.1f  δP %.1f  δH %.1f\n",
			info.CoreHSP.DeltaD, info.CoreHSP.DeltaP, info.CoreHSP.DeltaH)
		cmd.Printf("  Structure:  %s\n", info.StructureType)
		if info.Experimental != nil {
			cmd.Printf("  Measured:   size %.0f nm, PDI %.2f\n",
				info.Experimental.ParticleSize, info.Experimental.PDI)
		}
		cmd.Println()
	}

	return nil
}
