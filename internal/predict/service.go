package predict

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"heat-risk/internal/alert"
	"heat-risk/internal/observability"
	"heat-risk/internal/risk"
	"heat-risk/internal/rolling"
	"heat-risk/internal/timezone"
	"heat-risk/internal/types"
	"heat-risk/internal/weather"

	"github.com/jonboulle/clockwork"
)

// Skip reasons recorded in metrics
const (
	skipUnavailable = "unavailable"
	skipScoreError  = "score_error"
	skipPanic       = "panic"
)

// Scorer turns a feature vector into a risk score
type Scorer interface {
	Score(ctx context.Context, features types.FeatureVector) (float64, error)
}

// Alerter sends alerts for high scores
type Alerter interface {
	Notify(ctx context.Context, city string, score float64) alert.Outcome
	Threshold() *float64
}

// Service scores every configured city for one request
type Service interface {
	PredictAll(ctx context.Context, req Request) ([]types.PredictionResult, error)
}

// Dependencies are the collaborators of the prediction service
type Dependencies struct {
	Cities    []types.City
	Weather   weather.Service
	Tracker   *rolling.Tracker
	Scorer    Scorer
	Alerter   Alerter
	Timezones timezone.Service
	Clock     clockwork.Clock
	Metrics   *observability.Metrics
}

type predictService struct {
	cities    []types.City
	weather   weather.Service
	tracker   *rolling.Tracker
	scorer    Scorer
	alerter   Alerter
	timezones timezone.Service
	clock     clockwork.Clock
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewPredictService creates the prediction service. Cities defaults to
// types.Cities, Clock to the real clock and Metrics to an unregistered set.
func NewPredictService(deps Dependencies, logger *slog.Logger) Service {
	if deps.Cities == nil {
		deps.Cities = types.Cities
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Tracker == nil {
		deps.Tracker = rolling.NewTracker()
	}
	if deps.Metrics == nil {
		// unregistered, never exported
		deps.Metrics = observability.NewMetricsForTesting()
	}

	return &predictService{
		cities:    deps.Cities,
		weather:   deps.Weather,
		tracker:   deps.Tracker,
		scorer:    deps.Scorer,
		alerter:   deps.Alerter,
		timezones: deps.Timezones,
		clock:     deps.Clock,
		metrics:   deps.Metrics,
		logger:    logger.With("component", "predict-service"),
	}
}

// PredictAll scores each city in order. Cities that cannot be scored are
// left out of the result; only an invalid request fails the whole call.
func (s *predictService) PredictAll(ctx context.Context, req Request) ([]types.PredictionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	results := make([]types.PredictionResult, 0, len(s.cities))

	for _, city := range s.cities {
		result, ok := s.predictCity(ctx, city, req, now)
		if ok {
			results = append(results, result)
		}
	}

	s.logger.Info("prediction run complete",
		"cities", len(s.cities),
		"scored", len(results),
		"manual", req.UseManual,
	)

	return results, nil
}

func (s *predictService) predictCity(
	ctx context.Context,
	city types.City,
	req Request,
	now time.Time,
) (result types.PredictionResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("error processing city", "city", city.Name, "error", fmt.Errorf("panic: %v", r))
			s.metrics.CitiesSkipped.WithLabelValues(skipPanic).Inc()
			result, ok = types.PredictionResult{}, false
		}
	}()

	manual := req.IsManualFor(city.Name)

	var sample types.WeatherSample
	if manual {
		sample = req.ManualSample()
	} else {
		fetched := s.weather.Fetch(ctx, city)
		s.metrics.Fetches.WithLabelValues(city.Name, fetched.Status.String()).Inc()
		if !fetched.Available() {
			s.logger.Debug("skipping city", "city", city.Name, "reason", fetched.Reason)
			s.metrics.CitiesSkipped.WithLabelValues(skipUnavailable).Inc()
			return types.PredictionResult{}, false
		}
		sample = fetched.Sample
	}

	avg3, avg7 := s.tracker.Update(city.Name, sample.TempMax)
	cal := timezone.CalendarAt(s.timezones, now, city.Coordinates, s.logger)
	features := risk.BuildFeatures(sample, cal, avg3, avg7)

	score, err := s.scorer.Score(ctx, features)
	if err != nil {
		s.logger.Warn("error processing city", "city", city.Name, "error", err)
		s.metrics.CitiesSkipped.WithLabelValues(skipScoreError).Inc()
		return types.PredictionResult{}, false
	}
	s.metrics.Predictions.WithLabelValues(city.Name).Inc()

	if s.alerter != nil && alert.ShouldAlert(score, s.alerter.Threshold(), manual) {
		s.alerter.Notify(ctx, city.Name, score)
	}

	return types.NewPredictionResult(city, score), true
}
