// Package httpapi provides a Predictor adapter for the remote scoring
// service over its JSON HTTP API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/ports/driven"
	"github.com/lipidlogic/lipidlogic-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Predictor = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the scoring service client.
type Config struct {
	// BaseURL is the service origin (default: http://localhost:5000).
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration
}

// Client calls the scoring service. Failures are classified by wrapping the
// domain sentinels: ErrServiceUnreachable for transport errors,
// ErrServiceStatus for non-2xx responses, ErrMalformedResponse for bodies
// that do not decode.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a scoring service client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
	}
}

// BaseURL returns the configured service origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Predict submits drug properties and returns the prediction envelope.
func (c *Client) Predict(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResponse, error) {
	logger.Debug("POST %s/api/predict (logP %.2f)", c.baseURL, req.DrugLogP)

	var resp domain.PredictionResponse
	if err := c.post(ctx, "/api/predict", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Formulations fetches the candidate carrier catalog.
func (c *Client) Formulations(ctx context.Context) (map[string]domain.FormulationInfo, error) {
	var out map[string]domain.FormulationInfo
	if err := c.get(ctx, "/api/formulations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// validationDrug is the wire form of a validation compound entry.
type validationDrug struct {
	Name               string     `json:"name"`
	SMILES             string     `json:"smiles"`
	LogP               float64    `json:"logp"`
	HSP                domain.HSP `json:"hsp"`
	Classification     string     `json:"classification"`
	OptimalFormulation string     `json:"optimal_formulation"`
}

// ValidationDrugs fetches the service's validation compound table.
func (c *Client) ValidationDrugs(ctx context.Context) (map[string]domain.Preset, error) {
	var wire map[string]validationDrug
	if err := c.get(ctx, "/api/validation-drugs", &wire); err != nil {
		return nil, err
	}

	out := make(map[string]domain.Preset, len(wire))
	for id, d := range wire {
		out[id] = domain.Preset{
			ID:                 id,
			Name:               d.Name,
			SMILES:             d.SMILES,
			LogP:               d.LogP,
			HSP:                d.HSP,
			Classification:     d.Classification,
			OptimalFormulation: d.OptimalFormulation,
		}
	}
	return out, nil
}

// Compare evaluates all formulations side by side for a drug.
func (c *Client) Compare(ctx context.Context, req domain.PredictionRequest) (*domain.Comparison, error) {
	var resp domain.Comparison
	if err := c.post(ctx, "/api/compare", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks that the service is reachable and responding.
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := c.get(ctx, "/api/health", &resp); err != nil {
		return err
	}
	if resp.Status != "healthy" {
		return fmt.Errorf("%w: status %q", domain.ErrServiceStatus, resp.Status)
	}
	return nil
}

// post sends a JSON body and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// get fetches a path and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			return fmt.Errorf("%w: status %d", domain.ErrServiceStatus, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d: %s", domain.ErrServiceStatus, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	return nil
}
