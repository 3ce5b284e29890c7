package driven

import (
	"context"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
)

// Predictor reaches the remote scoring service. It is the client's only
// network dependency; every method is a single request/response call.
type Predictor interface {
	// Predict submits drug properties and returns the full prediction
	// envelope. Errors wrap the domain service-error sentinels so callers
	// can classify transport, status, and decode failures.
	Predict(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResponse, error)

	// Formulations fetches the candidate carrier catalog.
	Formulations(ctx context.Context) (map[string]domain.FormulationInfo, error)

	// ValidationDrugs fetches the service's validation compound table.
	ValidationDrugs(ctx context.Context) (map[string]domain.Preset, error)

	// Compare evaluates all formulations side by side for a drug.
	Compare(ctx context.Context, req domain.PredictionRequest) (*domain.Comparison, error)

	// Health checks that the service is reachable and responding.
	Health(ctx context.Context) error
}
