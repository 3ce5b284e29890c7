package driving

import (
	"context"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
)

// SessionService owns the per-session state: drug properties, the single
// result slot, and the loading flag. All mutation of that state goes through
// this interface; views only read.
type SessionService interface {
	// Properties returns a snapshot of the current drug properties.
	Properties() domain.DrugProperties

	// SelectPreset applies a catalog preset. Unknown ids clear the selection
	// indicator and leave the fields untouched.
	SelectPreset(id string)

	// SetField stores one property verbatim, detaching any preset.
	SetField(f domain.Field, value string)

	// CanPredict reports whether the trigger should be enabled: all four
	// fields set and no request outstanding.
	CanPredict() bool

	// Loading reports whether a prediction request is outstanding.
	Loading() bool

	// Result returns the current result slot, or nil before the first
	// successful prediction.
	Result() *domain.PredictionResponse

	// Err returns the failure of the most recent completed attempt, if any.
	Err() error

	// Begin validates the input, marks the session loading, and returns the
	// attempt to execute. Fails with ErrPredictionInFlight while loading.
	Begin() (*domain.PredictionAttempt, error)

	// Execute performs the attempt's network call and resolves it. A stale
	// attempt (superseded by a newer Begin) never touches the result slot.
	Execute(ctx context.Context, a *domain.PredictionAttempt) (stale bool, err error)

	// Predict is the blocking convenience path: Begin then Execute.
	Predict(ctx context.Context) (*domain.PredictionResponse, error)
}
