package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"heat-risk/internal/types"
)

// ErrSchemaMismatch means an artifact was trained on different columns
var ErrSchemaMismatch = errors.New("model columns do not match feature schema")

const (
	LinkIdentity = "identity"
	LinkLogistic = "logistic"
)

// linearArtifact is the on-disk form of a linear model
type linearArtifact struct {
	Columns      []string  `json:"columns"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
	Link         string    `json:"link,omitempty"`
}

// Linear is a linear model over the feature vector, optionally passed
// through a logistic link
type Linear struct {
	intercept    float64
	coefficients [types.FeatureColumnsLength]float64
	logistic     bool
}

// LoadLinear reads a linear model artifact from disk
func LoadLinear(path string) (*Linear, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	m, err := ParseLinear(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return m, nil
}

// ParseLinear decodes a linear model artifact. The artifact's columns must
// equal types.FeatureColumns, in order.
func ParseLinear(data []byte) (*Linear, error) {
	var a linearArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}

	if len(a.Columns) != types.FeatureColumnsLength {
		return nil, fmt.Errorf("%w: got %d columns, want %d", ErrSchemaMismatch, len(a.Columns), types.FeatureColumnsLength)
	}
	for i, col := range a.Columns {
		if col != types.FeatureColumns[i] {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrSchemaMismatch, i, col, types.FeatureColumns[i])
		}
	}
	if len(a.Coefficients) != types.FeatureColumnsLength {
		return nil, fmt.Errorf("%w: got %d coefficients, want %d", ErrSchemaMismatch, len(a.Coefficients), types.FeatureColumnsLength)
	}

	m := &Linear{intercept: a.Intercept}
	copy(m.coefficients[:], a.Coefficients)

	switch a.Link {
	case "", LinkIdentity:
	case LinkLogistic:
		m.logistic = true
	default:
		return nil, fmt.Errorf("unknown link function %q", a.Link)
	}

	return m, nil
}

// Predict returns intercept + coefficients · features
func (m *Linear) Predict(_ context.Context, features types.FeatureVector) (float64, error) {
	score := m.intercept
	for i, v := range features.Values() {
		score += m.coefficients[i] * v
	}
	if m.logistic {
		score = 1 / (1 + math.Exp(-score))
	}
	return score, nil
}
