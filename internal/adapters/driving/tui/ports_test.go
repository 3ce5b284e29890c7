package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPorts(t *testing.T) {
	session := &mockSession{}

	ports := NewPorts(session)

	require.NotNil(t, ports)
	assert.Equal(t, session, ports.Session)
}

func TestPorts_Validate_Success(t *testing.T) {
	ports := NewPorts(&mockSession{})

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingSession(t *testing.T) {
	ports := &Ports{}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingSessionService)
}
