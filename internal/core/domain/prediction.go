package domain

import "math"

// Formulation IDs evaluated by the scoring service.
const (
	FormulationF1 = "F1"
	FormulationF2 = "F2"
	FormulationF3 = "F3"
	FormulationF4 = "F4"
)

// FormulationIDs returns the fixed candidate set in display order.
func FormulationIDs() []string {
	return []string{FormulationF1, FormulationF2, FormulationF3, FormulationF4}
}

// HSP is the three-component Hansen solubility parameter descriptor.
type HSP struct {
	DeltaD float64 `json:"delta_d"`
	DeltaP float64 `json:"delta_p"`
	DeltaH float64 `json:"delta_h"`
}

// PredictionRequest is the wire payload for a prediction call.
type PredictionRequest struct {
	DrugLogP float64 `json:"drug_logp"`
	DrugHSP  HSP     `json:"drug_hsp"`
}

// HypothesisH1 is the lipophilic-gradient hypothesis result.
// Gradient is a signed Δlog P; the sign drives the display prefix.
type HypothesisH1 struct {
	Gradient       float64 `json:"gradient"`
	Score          int     `json:"score"`
	Interpretation string  `json:"interpretation"`
}

// HypothesisH2 is the HSP core-compatibility hypothesis result.
type HypothesisH2 struct {
	DeltaCore      float64 `json:"delta_core"`
	Score          int     `json:"score"`
	Interpretation string  `json:"interpretation"`
}

// HypothesisH3 is the competitive-partitioning hypothesis result.
type HypothesisH3 struct {
	DeltaCore         float64 `json:"delta_core"`
	DeltaSurf         float64 `json:"delta_surf"`
	PreferredLocation string  `json:"preferred_location"`
	CorePercent       float64 `json:"core_percent"`
	InterfacePercent  float64 `json:"interface_percent"`
	Score             int     `json:"score"`
}

// percentTolerance is the floating tolerance for the partition-sum invariant.
const percentTolerance = 1e-6

// Consistent reports whether the partition percentages sum to 100 and the
// preferred location agrees with the larger percentage. The service owns
// these numbers; the client only checks, it never recomputes.
func (h HypothesisH3) Consistent() bool {
	if math.Abs(h.CorePercent+h.InterfacePercent-100) > percentTolerance {
		return false
	}
	if h.CorePercent > h.InterfacePercent {
		return h.PreferredLocation == "core"
	}
	if h.InterfacePercent > h.CorePercent {
		return h.PreferredLocation == "interface"
	}
	return true
}

// ExperimentalData holds published validation measurements for a formulation.
// Present only where experiments were run; absence is a normal state.
type ExperimentalData struct {
	PyreneI1I3   float64 `json:"pyrene_i1_i3"`
	NileRedMax   float64 `json:"nile_red_max"`
	ParticleSize float64 `json:"particle_size"`
	PDI          float64 `json:"pdi"`
}

// FormulationAnalysis aggregates the per-hypothesis evidence for one
// formulation.
type FormulationAnalysis struct {
	FormulationName string            `json:"formulation_name"`
	H1              HypothesisH1      `json:"h1"`
	H2              HypothesisH2      `json:"h2"`
	H3              HypothesisH3      `json:"h3"`
	Experimental    *ExperimentalData `json:"experimental_data,omitempty"`
}

// RankingEntry is one row of the service-ordered formulation ranking.
// The delivered order is authoritative; the client must not re-sort.
type RankingEntry struct {
	FormulationID   string  `json:"formulation_id"`
	FormulationName string  `json:"formulation_name"`
	Stars           int     `json:"stars"`
	WeightedScore   float64 `json:"weighted_score"`
}

// Recommendation is the service's top-line verdict.
type Recommendation struct {
	TopFormulation  string         `json:"top_formulation"`
	FormulationName string         `json:"formulation_name"`
	Stars           int            `json:"stars"`
	ConfidenceScore float64        `json:"confidence_score"`
	Guidance        string         `json:"guidance"`
	Strategy        string         `json:"strategy"`
	Ranking         []RankingEntry `json:"ranking"`
}

// ResponseMetadata is an optional envelope extension some service versions
// emit. The client must tolerate its absence.
type ResponseMetadata struct {
	Stars    int    `json:"stars"`
	Strategy string `json:"strategy"`
}

// PredictionResponse is the canonical response envelope: results keyed by
// formulation id. A new response fully replaces the previous one.
type PredictionResponse struct {
	Recommendation Recommendation                 `json:"recommendation"`
	Results        map[string]FormulationAnalysis `json:"results"`
	Metadata       *ResponseMetadata              `json:"metadata,omitempty"`
}

// Analysis returns the per-formulation breakdown for an id. A missing key is
// absent data, not an error.
func (r *PredictionResponse) Analysis(id string) (FormulationAnalysis, bool) {
	a, ok := r.Results[id]
	return a, ok
}

// FormulationInfo describes a candidate carrier as published by the service
// catalog endpoint.
type FormulationInfo struct {
	Name          string            `json:"name"`
	CoreLipid     string            `json:"core_lipid"`
	Surfactant    string            `json:"surfactant"`
	CoreLogP      float64           `json:"core_logp"`
	SurfLogP      float64           `json:"surf_logp"`
	CoreHSP       HSP               `json:"core_hsp"`
	SurfHSP       HSP               `json:"surf_hsp"`
	StructureType string            `json:"structure_type"`
	Experimental  *ExperimentalData `json:"experimental,omitempty"`
}

// ComparisonEntry is one formulation's row in a side-by-side comparison.
type ComparisonEntry struct {
	Name          string  `json:"name"`
	Gradient      float64 `json:"gradient"`
	DeltaCore     float64 `json:"delta_core"`
	DeltaSurf     float64 `json:"delta_surf"`
	StructureType string  `json:"structure_type"`
}

// Comparison holds a side-by-side evaluation of all formulations for a drug.
type Comparison struct {
	DrugLogP     float64                    `json:"drug_logp"`
	Formulations map[string]ComparisonEntry `json:"formulations"`
}
