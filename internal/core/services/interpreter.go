package services

import (
	"fmt"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
)

// Localization thresholds on the recommendation confidence score.
// Boundary values fall into the mixed band.
const (
	coreThreshold      = 0.6
	interfaceThreshold = 0.4
)

// Localization labels derived from the confidence score.
const (
	LabelCoreFavoured      = "Core-favoured"
	LabelInterfaceFavoured = "Interface-favoured"
	LabelMixed             = "Mixed localisation"
)

// MaxStars is the star scale used across hypotheses and rankings.
const MaxStars = 5

// LocalizationLabel maps a confidence score to its categorical label.
func LocalizationLabel(score float64) string {
	switch {
	case score > coreThreshold:
		return LabelCoreFavoured
	case score < interfaceThreshold:
		return LabelInterfaceFavoured
	default:
		return LabelMixed
	}
}

// GaugePosition converts a confidence score in [0,1] to a percent position.
// The input is not clamped; out-of-range scores are a service contract
// violation and produce out-of-bounds positions.
func GaugePosition(score float64) float64 {
	return score * 100
}

// StarGlyphs returns the five star positions; position i is filled iff
// i < n. n is trusted to be within 0..5.
func StarGlyphs(n int) [MaxStars]bool {
	var glyphs [MaxStars]bool
	for i := 0; i < MaxStars && i < n; i++ {
		glyphs[i] = true
	}
	return glyphs
}

// RankedEntry is a ranking row annotated with its 1-based display rank.
type RankedEntry struct {
	Rank int
	domain.RankingEntry
}

// RankingView annotates the service-ordered ranking with display ranks.
// The delivered order is authoritative and is never re-sorted.
func RankingView(ranking []domain.RankingEntry) []RankedEntry {
	out := make([]RankedEntry, len(ranking))
	for i, e := range ranking {
		out[i] = RankedEntry{Rank: i + 1, RankingEntry: e}
	}
	return out
}

// PartitioningSummary is the display form of the competitive-partitioning
// hypothesis: the preferred location label and the two Hansen distances for
// side-by-side rendering.
type PartitioningSummary struct {
	Location         string
	DeltaCore        float64
	DeltaSurf        float64
	CorePercent      float64
	InterfacePercent float64
}

// HypothesisSummary derives the H3 display values. Percentages come straight
// from the service; nothing is recomputed.
func HypothesisSummary(h3 domain.HypothesisH3) PartitioningSummary {
	location := "Interface"
	if h3.PreferredLocation == "core" {
		location = "Core"
	}
	return PartitioningSummary{
		Location:         location,
		DeltaCore:        h3.DeltaCore,
		DeltaSurf:        h3.DeltaSurf,
		CorePercent:      h3.CorePercent,
		InterfacePercent: h3.InterfacePercent,
	}
}

// FormatGradient renders a signed Δlog P value with its sign prefix.
func FormatGradient(gradient float64) string {
	return fmt.Sprintf("%+.2f", gradient)
}
