package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
)

func TestLocalizationLabel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"well above core threshold", 0.85, LabelCoreFavoured},
		{"just above core threshold", 0.61, LabelCoreFavoured},
		{"exactly core threshold", 0.6, LabelMixed},
		{"middle of band", 0.5, LabelMixed},
		{"exactly interface threshold", 0.4, LabelMixed},
		{"just below interface threshold", 0.39, LabelInterfaceFavoured},
		{"zero", 0.0, LabelInterfaceFavoured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalizationLabel(tt.score))
		})
	}
}

func TestGaugePosition(t *testing.T) {
	assert.Equal(t, 0.0, GaugePosition(0))
	assert.Equal(t, 50.0, GaugePosition(0.5))
	assert.Equal(t, 100.0, GaugePosition(1))

	// Out-of-range scores pass through unclamped
	assert.Equal(t, 120.0, GaugePosition(1.2))
	assert.Equal(t, -10.0, GaugePosition(-0.1))
}

func TestStarGlyphs(t *testing.T) {
	assert.Equal(t, [5]bool{false, false, false, false, false}, StarGlyphs(0))
	assert.Equal(t, [5]bool{true, true, true, false, false}, StarGlyphs(3))
	assert.Equal(t, [5]bool{true, true, true, true, true}, StarGlyphs(5))
}

func TestRankingView_PreservesOrder(t *testing.T) {
	// A ranking where weighted scores are not monotonically decreasing:
	// the delivered order is authoritative and must survive as-is.
	ranking := []domain.RankingEntry{
		{FormulationID: "F2", FormulationName: "GMS + Poloxamer", Stars: 4, WeightedScore: 0.55},
		{FormulationID: "F4", FormulationName: "GMS + Tween 80", Stars: 5, WeightedScore: 0.85},
		{FormulationID: "F1", FormulationName: "Compritol + Tween 80", Stars: 2, WeightedScore: 0.31},
	}

	view := RankingView(ranking)
	require.Len(t, view, 3)

	assert.Equal(t, 1, view[0].Rank)
	assert.Equal(t, "F2", view[0].FormulationID)
	assert.Equal(t, 2, view[1].Rank)
	assert.Equal(t, "F4", view[1].FormulationID)
	assert.Equal(t, 3, view[2].Rank)
	assert.Equal(t, "F1", view[2].FormulationID)
}

func TestRankingView_Empty(t *testing.T) {
	view := RankingView(nil)
	assert.Empty(t, view)
}

func TestHypothesisSummary(t *testing.T) {
	h3 := domain.HypothesisH3{
		DeltaCore:         2.1,
		DeltaSurf:         5.4,
		PreferredLocation: "core",
		CorePercent:       72.5,
		InterfacePercent:  27.5,
	}

	summary := HypothesisSummary(h3)

	assert.Equal(t, "Core", summary.Location)
	assert.Equal(t, 2.1, summary.DeltaCore)
	assert.Equal(t, 5.4, summary.DeltaSurf)
	// Percentages are passed through, never recomputed from the distances
	assert.Equal(t, 72.5, summary.CorePercent)
	assert.Equal(t, 27.5, summary.InterfacePercent)
}

func TestHypothesisSummary_Interface(t *testing.T) {
	h3 := domain.HypothesisH3{
		PreferredLocation: "interface",
		CorePercent:       35,
		InterfacePercent:  65,
	}

	assert.Equal(t, "Interface", HypothesisSummary(h3).Location)
}

func TestFormatGradient(t *testing.T) {
	assert.Equal(t, "+1.31", FormatGradient(1.31))
	assert.Equal(t, "-0.42", FormatGradient(-0.42))
	assert.Equal(t, "+0.00", FormatGradient(0))
}
