package cli

import (
	"context"

	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driven/storage/memory"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/services"
)

// stubPredictor implements driven.Predictor with scripted responses.
type stubPredictor struct {
	predictResp  *domain.PredictionResponse
	predictErr   error
	formulations map[string]domain.FormulationInfo
	drugs        map[string]domain.Preset
	comparison   *domain.Comparison
	healthErr    error
}

func (s *stubPredictor) Predict(_ context.Context, _ domain.PredictionRequest) (*domain.PredictionResponse, error) {
	return s.predictResp, s.predictErr
}

func (s *stubPredictor) Formulations(_ context.Context) (map[string]domain.FormulationInfo, error) {
	return s.formulations, nil
}

func (s *stubPredictor) ValidationDrugs(_ context.Context) (map[string]domain.Preset, error) {
	return s.drugs, nil
}

func (s *stubPredictor) Compare(_ context.Context, _ domain.PredictionRequest) (*domain.Comparison, error) {
	return s.comparison, nil
}

func (s *stubPredictor) Health(_ context.Context) error {
	return s.healthErr
}

// setupTestServices wires stub services into the command tree and returns a
// cleanup function restoring the previous wiring.
func setupTestServices(p *stubPredictor) func() {
	prevSession := sessionService
	prevPredictor := predictor
	prevStore := configStore

	sessionService = services.NewSessionService(p)
	predictor = p
	configStore = memory.NewConfigStore()

	return func() {
		sessionService = prevSession
		predictor = prevPredictor
		configStore = prevStore
	}
}

func testPredictionResponse() *domain.PredictionResponse {
	return &domain.PredictionResponse{
		Recommendation: domain.Recommendation{
			TopFormulation:  "F4",
			FormulationName: "GMS + Tween 80",
			Stars:           5,
			ConfidenceScore: 0.85,
			Guidance:        "Strong core localization expected",
			Strategy:        "core_loading",
			Ranking: []domain.RankingEntry{
				{FormulationID: "F4", FormulationName: "GMS + Tween 80", Stars: 5, WeightedScore: 0.85},
				{FormulationID: "F2", FormulationName: "GMS + Poloxamer", Stars: 3, WeightedScore: 0.61},
			},
		},
		Results: map[string]domain.FormulationAnalysis{
			"F4": {
				FormulationName: "GMS + Tween 80",
				H1:              domain.HypothesisH1{Gradient: 1.31, Score: 5, Interpretation: "Favorable gradient"},
				H2:              domain.HypothesisH2{DeltaCore: 2.1, Score: 4, Interpretation: "Good compatibility"},
				H3: domain.HypothesisH3{
					DeltaCore: 2.1, DeltaSurf: 5.4, PreferredLocation: "core",
					CorePercent: 72.5, InterfacePercent: 27.5, Score: 5,
				},
			},
		},
	}
}
