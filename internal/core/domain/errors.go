package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrIncompleteProperties indicates at least one drug property is unset.
	// Not a user-facing failure; it gates request submission.
	ErrIncompleteProperties = errors.New("drug properties incomplete")

	// ErrInvalidNumber indicates a drug property could not be parsed as a number.
	ErrInvalidNumber = errors.New("invalid numeric input")

	// ErrPredictionInFlight indicates a prediction request is already outstanding.
	ErrPredictionInFlight = errors.New("prediction already in flight")

	// Prediction service errors, classified so the UI can surface them distinctly.

	// ErrServiceUnreachable indicates the scoring service could not be reached.
	ErrServiceUnreachable = errors.New("prediction service unreachable")

	// ErrServiceStatus indicates the scoring service returned a non-2xx status.
	ErrServiceStatus = errors.New("prediction service error status")

	// ErrMalformedResponse indicates the service body could not be decoded.
	ErrMalformedResponse = errors.New("malformed service response")
)
