// Package cli provides the cobra command tree for the LipidLogic client.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/ports/driven"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/ports/driving"
	"github.com/lipidlogic/lipidlogic-cli/internal/logger"
)

// version is the release version, overridable at build time.
var version = "0.1.0"

// Services injected by main before Execute runs.
var (
	sessionService driving.SessionService
	predictor      driven.Predictor
	configStore    driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "lipidlogic",
	Short: "Predict drug localisation in nanostructured lipid carriers",
	Long: `LipidLogic is an interactive client for computer-assisted drug
formulation design. Describe a drug's physicochemical properties (log P and
Hansen solubility parameters), request a formulation-suitability prediction
from the scoring service, and explore the ranking and per-hypothesis
evidence for the four candidate NLC formulations.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Config wires the core services into the command tree.
type Config struct {
	Session   driving.SessionService
	Predictor driven.Predictor
	Store     driven.ConfigStore
}

// SetConfig injects the services used by the commands.
func SetConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	sessionService = cfg.Session
	predictor = cfg.Predictor
	configStore = cfg.Store
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
