package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the scoring service health",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if predictor == nil {
		return errors.New("predictor not configured")
	}

	if err := predictor.Health(cmd.Context()); err != nil {
		if errors.Is(err, domain.ErrServiceUnreachable) {
			return fmt.Errorf("scoring service unreachable: %w", err)
		}
		return fmt.Errorf("scoring service unhealthy: %w", err)
	}

	cmd.Println("Scoring service is healthy.")
	return nil
}
