package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"heat-risk/internal/config"
	"heat-risk/internal/providers/openweather"
	"heat-risk/internal/types"
)

const successCode = 200

var (
	// ErrProviderStatus means the conditions response carried a non-success code
	ErrProviderStatus = errors.New("weather provider returned non-success code")
	// ErrNoAirQuality means the air pollution response had no readings
	ErrNoAirQuality = errors.New("air pollution response contains no data")
)

// ConditionsProvider fetches raw current conditions and air quality
type ConditionsProvider interface {
	GetCurrentWeather(ctx context.Context, city, countryCode string) (*openweather.CurrentWeatherAPIResponse, error)
	GetAirPollution(ctx context.Context, latitude, longitude float64) (*openweather.AirPollutionAPIResponse, error)
}

// Service fetches normalized weather samples for cities
type Service interface {
	Fetch(ctx context.Context, city types.City) FetchResult
}

type weatherService struct {
	provider    ConditionsProvider
	countryCode string
	logger      *slog.Logger
}

// NewWeatherService creates a weather service backed by OpenWeatherMap
func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	client := openweather.NewClient(
		cfg.OpenWeather.APIKey,
		cfg.OpenWeather.BaseURL,
		cfg.OpenWeather.Timeout,
		logger,
	)
	return NewWeatherServiceWithProvider(client, cfg.OpenWeather.CountryCode, logger)
}

// NewWeatherServiceWithProvider creates a weather service with a custom provider.
// This is useful for testing with mock providers.
func NewWeatherServiceWithProvider(provider ConditionsProvider, countryCode string, logger *slog.Logger) Service {
	return &weatherService{
		provider:    provider,
		countryCode: countryCode,
		logger:      logger.With("component", "weather-service"),
	}
}

// Fetch returns the current sample for a city, or an unavailable result if
// either provider call fails. Nothing is retried.
func (s *weatherService) Fetch(ctx context.Context, city types.City) FetchResult {
	conditions, err := s.provider.GetCurrentWeather(ctx, city.Name, s.countryCode)
	if err != nil {
		s.logger.Warn("failed to get current weather", "city", city.Name, "error", err)
		return unavailable(fmt.Errorf("failed to get current weather: %w", err))
	}

	if conditions.Cod != successCode {
		s.logger.Warn("weather provider error",
			"city", city.Name,
			"code", int(conditions.Cod),
			"message", conditions.Message,
		)
		return unavailable(fmt.Errorf("%w: %d %s", ErrProviderStatus, conditions.Cod, conditions.Message))
	}

	pollution, err := s.provider.GetAirPollution(ctx, city.Coordinates.Latitude, city.Coordinates.Longitude)
	if err != nil {
		s.logger.Warn("failed to get air pollution", "city", city.Name, "error", err)
		return unavailable(fmt.Errorf("failed to get air pollution: %w", err))
	}

	sample, err := mapResponsesToSample(conditions, pollution)
	if err != nil {
		s.logger.Warn("failed to map weather responses", "city", city.Name, "error", err)
		return unavailable(err)
	}

	s.logger.Debug("fetched weather sample",
		"city", city.Name,
		"temp_max", sample.TempMax,
		"aqi", sample.AQI,
	)

	return available(sample)
}

func mapResponsesToSample(
	conditions *openweather.CurrentWeatherAPIResponse,
	pollution *openweather.AirPollutionAPIResponse,
) (types.WeatherSample, error) {
	if pollution == nil || len(pollution.List) == 0 {
		return types.WeatherSample{}, ErrNoAirQuality
	}

	rainfall := 0.0
	if conditions.Rain != nil {
		rainfall = conditions.Rain.OneHour
	}

	return types.WeatherSample{
		TempMax:    conditions.Main.TempMax,
		TempMin:    conditions.Main.TempMin,
		Humidity:   conditions.Main.Humidity,
		WindSpeed:  types.NewWindSpeedKphFromMs(conditions.Wind.Speed),
		Pressure:   conditions.Main.Pressure,
		Rainfall:   rainfall,
		CloudCover: conditions.Clouds.All,
		AQI:        float64(pollution.List[0].Main.AQI * types.AQIScale),
	}, nil
}
