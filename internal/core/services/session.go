package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/ports/driven"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/ports/driving"
	"github.com/lipidlogic/lipidlogic-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService owns the mutable session state: the drug property set, the
// single result slot, and the loading flag. It serialises prediction
// requests (Begin fails while one is outstanding) and additionally drops
// stale responses by attempt sequence, so the displayed result always
// corresponds to the most recent input.
type SessionService struct {
	predictor driven.Predictor

	mu      sync.Mutex
	props   domain.DrugProperties
	result  *domain.PredictionResponse
	lastErr error
	loading bool
	seq     uint64
}

// NewSessionService creates a session backed by the given predictor.
func NewSessionService(predictor driven.Predictor) *SessionService {
	return &SessionService{predictor: predictor}
}

// Properties returns a snapshot of the current drug properties.
func (s *SessionService) Properties() domain.DrugProperties {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.props
}

// SelectPreset applies a catalog preset to the property set.
func (s *SessionService) SelectPreset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props.SelectPreset(id)
}

// SetField stores one property verbatim, detaching any preset.
func (s *SessionService) SetField(f domain.Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props.SetField(f, value)
}

// CanPredict reports whether the trigger should be enabled.
func (s *SessionService) CanPredict() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.props.Complete() && !s.loading
}

// Loading reports whether a request is outstanding.
func (s *SessionService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Result returns the current result slot, or nil before the first success.
func (s *SessionService) Result() *domain.PredictionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err returns the failure of the most recent completed attempt, if any.
func (s *SessionService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Begin validates the input, marks the session loading, and returns the
// attempt to execute.
func (s *SessionService) Begin() (*domain.PredictionAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		return nil, domain.ErrPredictionInFlight
	}

	req, err := s.props.BuildRequest()
	if err != nil {
		return nil, err
	}

	s.seq++
	s.loading = true
	a := &domain.PredictionAttempt{
		Seq:     s.seq,
		ID:      uuid.NewString(),
		Request: req,
	}
	logger.Debug("prediction %s: begin (seq %d, logP %.2f)", a.ID, a.Seq, req.DrugLogP)
	return a, nil
}

// Execute performs the attempt's network call and resolves it. The loading
// flag is always cleared for a current attempt, success or failure; a stale
// attempt never touches session state.
func (s *SessionService) Execute(ctx context.Context, a *domain.PredictionAttempt) (bool, error) {
	defer logger.Timing("prediction request", time.Now())
	resp, err := s.predictor.Predict(ctx, a.Request)
	return s.resolve(a, resp, err)
}

// resolve lands the outcome of an attempt. Only the attempt whose sequence
// is still current may win; a failing call leaves the previous result slot
// untouched.
func (s *SessionService) resolve(a *domain.PredictionAttempt, resp *domain.PredictionResponse, err error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.Seq != s.seq {
		logger.Debug("prediction %s: stale (seq %d, current %d), discarded", a.ID, a.Seq, s.seq)
		return true, err
	}

	s.loading = false
	s.lastErr = err
	if err != nil {
		logger.Warn("prediction %s: %v", a.ID, err)
		return false, err
	}

	s.result = resp
	logger.Debug("prediction %s: %s recommended (%.2f)",
		a.ID, resp.Recommendation.TopFormulation, resp.Recommendation.ConfidenceScore)
	return false, nil
}

// Predict is the blocking convenience path used by the CLI: Begin, then
// Execute on the calling goroutine.
func (s *SessionService) Predict(ctx context.Context) (*domain.PredictionResponse, error) {
	a, err := s.Begin()
	if err != nil {
		return nil, err
	}
	if _, err := s.Execute(ctx, a); err != nil {
		return nil, err
	}
	return s.Result(), nil
}
