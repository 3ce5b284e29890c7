package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/services"
	"github.com/lipidlogic/lipidlogic-cli/internal/logger"
)

var (
	predictPreset string
	predictLogP   string
	predictDeltaD string
	predictDeltaP string
	predictDeltaH string
	predictJSON   bool
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run a formulation-suitability prediction",
	Long: `Submits drug properties to the scoring service and prints the
recommendation, the formulation ranking, and the per-hypothesis evidence.

Pick a validation drug with --preset, or supply all four properties by
hand with --logp, --delta-d, --delta-p and --delta-h.`,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringVar(&predictPreset, "preset", "", "validation drug id (see 'lipidlogic drugs')")
	predictCmd.Flags().StringVar(&predictLogP, "logp", "", "drug log P")
	predictCmd.Flags().StringVar(&predictDeltaD, "delta-d", "", "Hansen dispersion parameter δD")
	predictCmd.Flags().StringVar(&predictDeltaP, "delta-p", "", "Hansen polar parameter δP")
	predictCmd.Flags().StringVar(&predictDeltaH, "delta-h", "", "Hansen hydrogen-bonding parameter δH")
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "output the raw response as JSON")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if predictPreset != "" {
		if _, ok := domain.PresetByID(predictPreset); !ok {
			return fmt.Errorf("unknown preset %q", predictPreset)
		}
		sessionService.SelectPreset(predictPreset)
	}

	// Flags override preset values field by field.
	for f, v := range map[domain.Field]string{
		domain.FieldLogP:   predictLogP,
		domain.FieldDeltaD: predictDeltaD,
		domain.FieldDeltaP: predictDeltaP,
		domain.FieldDeltaH: predictDeltaH,
	} {
		if v != "" {
			sessionService.SetField(f, v)
		}
	}

	resp, err := sessionService.Predict(cmd.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIncompleteProperties):
			return errors.New("all four drug properties are required; use --preset or supply --logp, --delta-d, --delta-p and --delta-h")
		case errors.Is(err, domain.ErrServiceUnreachable):
			return fmt.Errorf("scoring service unreachable: %w", err)
		default:
			return fmt.Errorf("prediction failed: %w", err)
		}
	}

	if predictJSON {
		return outputPredictJSON(cmd, resp)
	}

	return outputPredictText(cmd, resp)
}

func outputPredictJSON(cmd *cobra.Command, resp *domain.PredictionResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputPredictText(cmd *cobra.Command, resp *domain.PredictionResponse) error {
	rec := resp.Recommendation

	logger.Section("Recommendation")
	cmd.Printf("Recommended: %s (%s) %s\n", rec.TopFormulation, rec.FormulationName, starString(rec.Stars))
	cmd.Printf("Localization: %s (confidence %.2f)\n", services.LocalizationLabel(rec.ConfidenceScore), rec.ConfidenceScore)
	if rec.Strategy != "" {
		cmd.Printf("Strategy: %s\n", rec.Strategy)
	}
	if rec.Guidance != "" {
		cmd.Printf("Guidance: %s\n", rec.Guidance)
	}

	if len(rec.Ranking) > 0 {
		cmd.Println()
		cmd.Println("Ranking:")
		for _, e := range services.RankingView(rec.Ranking) {
			cmd.Printf("  #%d %-4s %-22s %s  (%.3f)\n",
				e.Rank, e.FormulationID, e.FormulationName, starString(e.Stars), e.WeightedScore)
		}
	}

	for _, id := range domain.FormulationIDs() {
		analysis, ok := resp.Analysis(id)
		if !ok {
			continue
		}
		cmd.Println()
		cmd.Printf("%s - %s\n", id, analysis.FormulationName)
		cmd.Printf("  H1 gradient:      Δlog P %s, score %d  %s\n",
			services.FormatGradient(analysis.H1.Gradient), analysis.H1.Score, analysis.H1.Interpretation)
		cmd.Printf("  H2 compatibility: Δδ core %.2f, score %d  %s\n",
			analysis.H2.DeltaCore, analysis.H2.Score, analysis.H2.Interpretation)
		h3 := services.HypothesisSummary(analysis.H3)
		cmd.Printf("  H3 partitioning:  %s (%.1f%% core / %.1f%% interface), score %d\n",
			h3.Location, h3.CorePercent, h3.InterfacePercent, analysis.H3.Score)
		if analysis.Experimental != nil {
			exp := analysis.Experimental
			cmd.Printf("  Experimental:     I1/I3 %.2f, Nile Red λmax %.0f nm, size %.0f nm, PDI %.2f\n",
				exp.PyreneI1I3, exp.NileRedMax, exp.ParticleSize, exp.PDI)
		}
	}

	return nil
}

// starString renders a 0..5 star rating with filled and hollow glyphs.
func starString(n int) string {
	glyphs := services.StarGlyphs(n)
	var b strings.Builder
	for _, filled := range glyphs {
		if filled {
			b.WriteRune('★')
		} else {
			b.WriteRune('☆')
		}
	}
	return b.String()
}
