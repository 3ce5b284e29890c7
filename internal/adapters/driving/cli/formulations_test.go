package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
)

func TestFormulationsCmd_Use(t *testing.T) {
	assert.Equal(t, "formulations", formulationsCmd.Use)
}

func TestFormulationsCmd_Executes(t *testing.T) {
	cleanup := setupTestServices(&stubPredictor{
		formulations: map[string]domain.FormulationInfo{
			"F1": {
				Name:          "Compritol + Tween 80",
				CoreLipid:     "Compritol 888 ATO",
				Surfactant:    "Tween 80",
				CoreLogP:      8.1,
				SurfLogP:      3.88,
				CoreHSP:       domain.HSP{DeltaD: 16.9, DeltaP: 2.5, DeltaH: 4.8},
				StructureType: "imperfect crystal",
			},
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"formulations"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "F1 - Compritol + Tween 80")
	assert.Contains(t, output, "Compritol 888 ATO")
	assert.Contains(t, output, "imperfect crystal")
}

func TestFormulationsCmd_EmptyCatalog(t *testing.T) {
	cleanup := setupTestServices(&stubPredictor{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"formulations"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No formulations available")
}
