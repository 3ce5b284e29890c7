package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionRequest_WireFormat(t *testing.T) {
	req := PredictionRequest{
		DrugLogP: 5.19,
		DrugHSP:  HSP{DeltaD: 20.4, DeltaP: 5.0, DeltaH: 3.5},
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"drug_logp": 5.19,
		"drug_hsp": {"delta_d": 20.4, "delta_p": 5, "delta_h": 3.5}
	}`, string(data))
}

func TestHypothesisH3_Consistent(t *testing.T) {
	tests := []struct {
		name string
		h3   HypothesisH3
		want bool
	}{
		{
			name: "core preferred and larger",
			h3:   HypothesisH3{PreferredLocation: "core", CorePercent: 72.5, InterfacePercent: 27.5},
			want: true,
		},
		{
			name: "interface preferred and larger",
			h3:   HypothesisH3{PreferredLocation: "interface", CorePercent: 30, InterfacePercent: 70},
			want: true,
		},
		{
			name: "percentages do not sum to 100",
			h3:   HypothesisH3{PreferredLocation: "core", CorePercent: 60, InterfacePercent: 30},
			want: false,
		},
		{
			name: "location disagrees with larger share",
			h3:   HypothesisH3{PreferredLocation: "interface", CorePercent: 80, InterfacePercent: 20},
			want: false,
		},
		{
			name: "exact split accepts either location",
			h3:   HypothesisH3{PreferredLocation: "core", CorePercent: 50, InterfacePercent: 50},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.h3.Consistent())
		})
	}
}

func TestPredictionResponse_Decode(t *testing.T) {
	payload := `{
		"recommendation": {
			"top_formulation": "F4",
			"formulation_name": "GMS + Tween 80",
			"stars": 5,
			"confidence_score": 0.85,
			"guidance": "Strong core localization expected",
			"strategy": "core_loading",
			"ranking": [
				{"formulation_id": "F4", "formulation_name": "GMS + Tween 80", "stars": 5, "weighted_score": 0.85},
				{"formulation_id": "F2", "formulation_name": "GMS + Poloxamer", "stars": 3, "weighted_score": 0.61}
			]
		},
		"results": {
			"F4": {
				"formulation_name": "GMS + Tween 80",
				"h1": {"gradient": 1.31, "score": 5, "interpretation": "Favorable gradient"},
				"h2": {"delta_core": 2.1, "score": 4, "interpretation": "Good compatibility"},
				"h3": {"delta_core": 2.1, "delta_surf": 5.4, "preferred_location": "core",
					"core_percent": 72.5, "interface_percent": 27.5, "score": 5},
				"experimental_data": {"pyrene_i1_i3": 0.85, "nile_red_max": 620, "particle_size": 180, "pdi": 0.21}
			},
			"F2": {
				"formulation_name": "GMS + Poloxamer",
				"h1": {"gradient": -0.42, "score": 2, "interpretation": "Weak gradient"},
				"h2": {"delta_core": 4.8, "score": 2, "interpretation": "Poor compatibility"},
				"h3": {"delta_core": 4.8, "delta_surf": 3.1, "preferred_location": "interface",
					"core_percent": 38.0, "interface_percent": 62.0, "score": 2}
			}
		}
	}`

	var resp PredictionResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	assert.Equal(t, "F4", resp.Recommendation.TopFormulation)
	assert.Equal(t, 5, resp.Recommendation.Stars)
	assert.InDelta(t, 0.85, resp.Recommendation.ConfidenceScore, 1e-9)
	require.Len(t, resp.Recommendation.Ranking, 2)
	assert.Equal(t, "F4", resp.Recommendation.Ranking[0].FormulationID)

	// Metadata is optional; its absence is not an error
	assert.Nil(t, resp.Metadata)

	f4, ok := resp.Analysis("F4")
	require.True(t, ok)
	assert.InDelta(t, 1.31, f4.H1.Gradient, 1e-9)
	assert.True(t, f4.H3.Consistent())
	require.NotNil(t, f4.Experimental)
	assert.InDelta(t, 0.85, f4.Experimental.PyreneI1I3, 1e-9)

	f2, ok := resp.Analysis("F2")
	require.True(t, ok)
	assert.Nil(t, f2.Experimental)
}

func TestPredictionResponse_Analysis_MissingKey(t *testing.T) {
	resp := PredictionResponse{
		Results: map[string]FormulationAnalysis{
			"F1": {FormulationName: "Compritol + Tween 80"},
		},
	}

	_, ok := resp.Analysis("F2")
	assert.False(t, ok)

	a, ok := resp.Analysis("F1")
	assert.True(t, ok)
	assert.Equal(t, "Compritol + Tween 80", a.FormulationName)
}

func TestPredictionResponse_Decode_WithMetadata(t *testing.T) {
	payload := `{
		"recommendation": {"top_formulation": "F1", "stars": 3, "confidence_score": 0.5, "ranking": []},
		"results": {},
		"metadata": {"stars": 3, "strategy": "balanced"}
	}`

	var resp PredictionResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	require.NotNil(t, resp.Metadata)
	assert.Equal(t, 3, resp.Metadata.Stars)
	assert.Equal(t, "balanced", resp.Metadata.Strategy)
}

func TestFormulationIDs(t *testing.T) {
	assert.Equal(t, []string{"F1", "F2", "F3", "F4"}, FormulationIDs())
}
