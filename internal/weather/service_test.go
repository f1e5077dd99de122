package weather

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"heat-risk/internal/providers/openweather"
	"heat-risk/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockConditionsProvider struct {
	conditions    *openweather.CurrentWeatherAPIResponse
	conditionsErr error
	pollution     *openweather.AirPollutionAPIResponse
	pollutionErr  error

	gotCity        string
	gotCountryCode string
	pollutionCalls int
}

func (m *mockConditionsProvider) GetCurrentWeather(_ context.Context, city, countryCode string) (*openweather.CurrentWeatherAPIResponse, error) {
	m.gotCity = city
	m.gotCountryCode = countryCode
	return m.conditions, m.conditionsErr
}

func (m *mockConditionsProvider) GetAirPollution(_ context.Context, _, _ float64) (*openweather.AirPollutionAPIResponse, error) {
	m.pollutionCalls++
	return m.pollution, m.pollutionErr
}

func newConditions(cod int, withRain bool) *openweather.CurrentWeatherAPIResponse {
	resp := &openweather.CurrentWeatherAPIResponse{Cod: openweather.StatusCode(cod)}
	resp.Main.TempMax = 42
	resp.Main.TempMin = 35
	resp.Main.Humidity = 18
	resp.Main.Pressure = 1001
	resp.Wind.Speed = 5
	resp.Clouds.All = 10
	if withRain {
		resp.Rain = &struct {
			OneHour float64 `json:"1h"`
		}{OneHour: 2.5}
	}
	return resp
}

func newPollution(aqi ...int) *openweather.AirPollutionAPIResponse {
	resp := &openweather.AirPollutionAPIResponse{}
	for _, v := range aqi {
		entry := struct {
			Main struct {
				AQI int `json:"aqi"`
			} `json:"main"`
			Components map[string]float64 `json:"components"`
			Dt         int64              `json:"dt"`
		}{}
		entry.Main.AQI = v
		resp.List = append(resp.List, entry)
	}
	return resp
}

func testService(p ConditionsProvider) Service {
	return NewWeatherServiceWithProvider(p, "IN", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var delhi = types.City{Name: "Delhi", Coordinates: types.NewCoords(28.6139, 77.2090)}

func TestWeatherService_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		provider   *mockConditionsProvider
		wantStatus FetchStatus
		wantErr    error
		validate   func(*testing.T, types.WeatherSample)
	}{
		{
			name: "normalizes units",
			provider: &mockConditionsProvider{
				conditions: newConditions(200, true),
				pollution:  newPollution(3),
			},
			wantStatus: StatusAvailable,
			validate: func(t *testing.T, s types.WeatherSample) {
				assert.Equal(t, 42.0, s.TempMax)
				assert.Equal(t, 35.0, s.TempMin)
				assert.Equal(t, 18.0, s.Humidity)
				assert.InDelta(t, 18.0, s.WindSpeed, 1e-9)
				assert.Equal(t, 1001.0, s.Pressure)
				assert.Equal(t, 2.5, s.Rainfall)
				assert.Equal(t, 10.0, s.CloudCover)
				assert.Equal(t, 150.0, s.AQI)
			},
		},
		{
			name: "missing rain defaults to zero",
			provider: &mockConditionsProvider{
				conditions: newConditions(200, false),
				pollution:  newPollution(1),
			},
			wantStatus: StatusAvailable,
			validate: func(t *testing.T, s types.WeatherSample) {
				assert.Equal(t, 0.0, s.Rainfall)
				assert.Equal(t, 50.0, s.AQI)
			},
		},
		{
			name: "non success code",
			provider: &mockConditionsProvider{
				conditions: newConditions(404, false),
				pollution:  newPollution(1),
			},
			wantStatus: StatusUnavailable,
			wantErr:    ErrProviderStatus,
		},
		{
			name: "conditions request error",
			provider: &mockConditionsProvider{
				conditionsErr: errors.New("connection refused"),
			},
			wantStatus: StatusUnavailable,
		},
		{
			name: "air pollution request error",
			provider: &mockConditionsProvider{
				conditions:   newConditions(200, false),
				pollutionErr: errors.New("timeout"),
			},
			wantStatus: StatusUnavailable,
		},
		{
			name: "empty air pollution list",
			provider: &mockConditionsProvider{
				conditions: newConditions(200, false),
				pollution:  newPollution(),
			},
			wantStatus: StatusUnavailable,
			wantErr:    ErrNoAirQuality,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testService(tt.provider).Fetch(context.Background(), delhi)

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, "Delhi", tt.provider.gotCity)
			assert.Equal(t, "IN", tt.provider.gotCountryCode)

			if tt.wantStatus == StatusUnavailable {
				require.Error(t, result.Reason)
				assert.False(t, result.Available())
				if tt.wantErr != nil {
					assert.ErrorIs(t, result.Reason, tt.wantErr)
				}
				return
			}

			require.NoError(t, result.Reason)
			assert.True(t, result.Available())
			if tt.validate != nil {
				tt.validate(t, result.Sample)
			}
		})
	}
}

func TestWeatherService_Fetch_SkipsAirPollutionOnBadCode(t *testing.T) {
	provider := &mockConditionsProvider{
		conditions: newConditions(401, false),
		pollution:  newPollution(2),
	}

	result := testService(provider).Fetch(context.Background(), delhi)

	assert.False(t, result.Available())
	assert.Equal(t, 0, provider.pollutionCalls)
}

func TestWeatherService_Fetch_TransportErrorOmitsAPIKey(t *testing.T) {
	const secret = "SECRET-KEY-123"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	client := openweather.NewClient(secret, baseURL, time.Second, logger)
	svc := NewWeatherServiceWithProvider(client, "IN", logger)

	result := svc.Fetch(context.Background(), delhi)

	assert.False(t, result.Available())
	require.Error(t, result.Reason)
	assert.NotContains(t, result.Reason.Error(), secret)
	assert.NotContains(t, logs.String(), secret)
}

func TestFetchStatus_String(t *testing.T) {
	assert.Equal(t, "available", StatusAvailable.String())
	assert.Equal(t, "unavailable", StatusUnavailable.String())
	assert.Equal(t, "unknown", FetchStatus(7).String())
}
