package risk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"heat-risk/internal/observability"
	"heat-risk/internal/types"

	"github.com/jonboulle/clockwork"
)

// ErrInvalidScore means the model returned NaN or an infinite value
var ErrInvalidScore = errors.New("model returned a non-finite score")

// Model is a pre-trained predictor. Implementations must be safe for
// concurrent use.
type Model interface {
	Predict(ctx context.Context, features types.FeatureVector) (float64, error)
}

// Scorer runs feature vectors through the model
type Scorer struct {
	model   Model
	metrics *observability.Metrics
	clock   clockwork.Clock
	logger  *slog.Logger
}

// NewScorer creates a scorer around a loaded model
func NewScorer(model Model, metrics *observability.Metrics, clock clockwork.Clock, logger *slog.Logger) *Scorer {
	return &Scorer{
		model:   model,
		metrics: metrics,
		clock:   clock,
		logger:  logger.With("component", "risk-scorer"),
	}
}

// Score returns the model's risk score for one feature vector
func (s *Scorer) Score(ctx context.Context, features types.FeatureVector) (float64, error) {
	start := s.clock.Now()
	score, err := s.model.Predict(ctx, features)
	s.metrics.ScoreDuration.Observe(s.clock.Since(start).Seconds())
	if err != nil {
		return 0, fmt.Errorf("failed to score features: %w", err)
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, ErrInvalidScore
	}

	s.logger.Debug("scored features",
		"temp_max", features.TempMax,
		"temp_avg_3day", features.TempAvg3Day,
		"temp_avg_7day", features.TempAvg7Day,
		"score", score,
		"elapsed", s.clock.Since(start).Round(time.Microsecond),
	)

	return score, nil
}
