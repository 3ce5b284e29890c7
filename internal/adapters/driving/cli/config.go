package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Config keys recognised by the client.
const (
	keyBaseURL        = "service.base_url"
	keyTimeoutSeconds = "service.timeout_seconds"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage client configuration",
	Long: `View and change settings stored in the configuration file.

Recognised keys:
  service.base_url         Scoring service endpoint
  service.timeout_seconds  Request timeout in seconds

The LIPIDLOGIC_API_URL environment variable, when set, overrides the
configured base URL.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Configuration (%s)\n\n", configStore.Path())

	baseURL := configStore.GetString(keyBaseURL)
	if baseURL == "" {
		baseURL = "(default)"
	}
	cmd.Printf("  %s = %s\n", keyBaseURL, baseURL)

	if secs := configStore.GetInt(keyTimeoutSeconds); secs > 0 {
		cmd.Printf("  %s = %d\n", keyTimeoutSeconds, secs)
	} else {
		cmd.Printf("  %s = (default)\n", keyTimeoutSeconds)
	}

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Whole numbers are stored as integers so timeout reads come back typed.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}
