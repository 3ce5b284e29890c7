package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
)

func TestPredictCmd_Use(t *testing.T) {
	assert.Equal(t, "predict", predictCmd.Use)
}

func TestPredictCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"preset", "logp", "delta-d", "delta-p", "delta-h", "json"} {
		flag := predictCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "flag %s should exist", name)
	}
}

func TestPredictCmd_WithPreset(t *testing.T) {
	cleanup := setupTestServices(&stubPredictor{predictResp: testPredictionResponse()})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"predict", "--preset", "pyrene"})
	defer func() {
		rootCmd.SetArgs(nil)
		predictPreset = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Recommended: F4 (GMS + Tween 80)")
	assert.Contains(t, output, "★★★★★")
	assert.Contains(t, output, "Core-favoured")
	assert.Contains(t, output, "#1 F4")
	assert.Contains(t, output, "#2 F2")
	assert.Contains(t, output, "Δlog P +1.31")
}

func TestPredictCmd_ManualProperties(t *testing.T) {
	cleanup := setupTestServices(&stubPredictor{predictResp: testPredictionResponse()})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"predict",
		"--logp", "3.97",
		"--delta-d", "18.0",
		"--delta-p", "5.5",
		"--delta-h", "8.5",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		predictLogP, predictDeltaD, predictDeltaP, predictDeltaH = "", "", "", ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Recommended: F4")
}

func TestPredictCmd_UnknownPreset(t *testing.T) {
	cleanup := setupTestServices(&stubPredictor{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"predict", "--preset", "aspirin"})
	defer func() {
		rootCmd.SetArgs(nil)
		predictPreset = ""
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestPredictCmd_MissingProperties(t *testing.T) {
	cleanup := setupTestServices(&stubPredictor{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"predict"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all four drug properties are required")
}

func TestPredictCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices(&stubPredictor{predictErr: domain.ErrServiceUnreachable})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"predict", "--preset", "pyrene"})
	defer func() {
		rootCmd.SetArgs(nil)
		predictPreset = ""
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestPredictCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(&stubPredictor{predictResp: testPredictionResponse()})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"predict", "--preset", "pyrene", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		predictPreset = ""
		predictJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"top_formulation": "F4"`)
}
