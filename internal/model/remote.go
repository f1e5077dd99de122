package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"heat-risk/internal/types"
)

const maxErrorBody = 512

// ErrBadPrediction means the inference server answered with an unusable body
var ErrBadPrediction = errors.New("inference server returned an unusable prediction")

type predictRequest struct {
	Columns []string                              `json:"columns"`
	Rows    [][types.FeatureColumnsLength]float64 `json:"rows"`
}

type predictResponse struct {
	Predictions []float64 `json:"predictions"`
	Error       string    `json:"error,omitempty"`
}

// Remote scores features on an HTTP inference server
type Remote struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
}

// NewRemote creates a model backed by the inference endpoint at url
func NewRemote(url string, timeout time.Duration, logger *slog.Logger) *Remote {
	return &Remote{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		logger:     logger.With("component", "remote-model"),
	}
}

// Predict sends a single row and returns its prediction
func (m *Remote) Predict(ctx context.Context, features types.FeatureVector) (float64, error) {
	body, err := json.Marshal(predictRequest{
		Columns: types.FeatureColumns[:],
		Rows:    [][types.FeatureColumnsLength]float64{features.Values()},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		detail := string(bytes.TrimSpace(raw))
		var result predictResponse
		if json.Unmarshal(raw, &result) == nil && result.Error != "" {
			detail = result.Error
		}
		m.logger.Warn("inference server error", "status", resp.StatusCode, "error", detail)
		return 0, fmt.Errorf("%w: status %d: %s", ErrBadPrediction, resp.StatusCode, detail)
	}

	var result predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Predictions) != 1 {
		return 0, fmt.Errorf("%w: got %d predictions for 1 row", ErrBadPrediction, len(result.Predictions))
	}

	return result.Predictions[0], nil
}
