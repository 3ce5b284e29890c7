package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driven/config/file"
	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driven/predictor/httpapi"
	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/cli"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/services"
	"github.com/lipidlogic/lipidlogic-cli/internal/logger"
)

// Config keys recognised in ~/.lipidlogic/config.toml.
const (
	configKeyBaseURL = "service.base_url"
	configKeyTimeout = "service.timeout_seconds"
)

// envBaseURL overrides any configured base URL when set.
const envBaseURL = "LIPIDLOGIC_API_URL"

func main() {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config store: %v\n", err)
		os.Exit(1)
	}

	baseURL := configStore.GetString(configKeyBaseURL)
	if env := os.Getenv(envBaseURL); env != "" {
		baseURL = env
	}

	timeout := httpapi.DefaultTimeout
	if secs := configStore.GetInt(configKeyTimeout); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	predictor := httpapi.NewClient(httpapi.Config{
		BaseURL: baseURL,
		Timeout: timeout,
	})
	logger.Debug("scoring service at %s", predictor.BaseURL())

	session := services.NewSessionService(predictor)

	cli.SetConfig(&cli.Config{
		Session:   session,
		Predictor: predictor,
		Store:     configStore,
	})

	cli.Execute()
}
