package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrIncompleteProperties", ErrIncompleteProperties},
		{"ErrInvalidNumber", ErrInvalidNumber},
		{"ErrPredictionInFlight", ErrPredictionInFlight},
		{"ErrServiceUnreachable", ErrServiceUnreachable},
		{"ErrServiceStatus", ErrServiceStatus},
		{"ErrMalformedResponse", ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Distinct verifies the sentinels never match each other, since
// the UI classifies failures with errors.Is.
func TestErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrIncompleteProperties,
		ErrInvalidNumber,
		ErrPredictionInFlight,
		ErrServiceUnreachable,
		ErrServiceStatus,
		ErrMalformedResponse,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestErrors_WrappedClassification(t *testing.T) {
	wrapped := fmt.Errorf("%w: status 503: overloaded", ErrServiceStatus)

	assert.ErrorIs(t, wrapped, ErrServiceStatus)
	assert.NotErrorIs(t, wrapped, ErrServiceUnreachable)
}
