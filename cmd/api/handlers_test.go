package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"heat-risk/internal/config"
	"heat-risk/internal/observability"
	"heat-risk/internal/predict"
	"heat-risk/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPredictService struct {
	results []types.PredictionResult
	err     error
	got     *predict.Request
}

func (m *mockPredictService) PredictAll(_ context.Context, req predict.Request) ([]types.PredictionResult, error) {
	m.got = &req
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func testApp(t *testing.T, svc predict.Service) *App {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: "test"},
		Model:  config.ModelConfig{Kind: "linear"},
	}
	app, err := newApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), svc, observability.NewMetricsForTesting())
	require.NoError(t, err)
	return app
}

func serve(app *App, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func TestHandlePing(t *testing.T) {
	rec := serve(testApp(t, &mockPredictService{}), http.MethodGet, "/ping", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pong", resp.Message)
	assert.Equal(t, "linear", resp.Model)
	assert.Equal(t, 8, resp.Cities)
}

func TestHandleGetCities(t *testing.T) {
	rec := serve(testApp(t, &mockPredictService{}), http.MethodGet, "/cities", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var cities []types.City
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cities))
	require.Len(t, cities, 8)
	assert.Equal(t, "Delhi", cities[0].Name)
	assert.Equal(t, "Ahmedabad", cities[7].Name)
	assert.Equal(t, 28.6139, cities[0].Coordinates.Latitude)
}

func TestHandlePredictAll(t *testing.T) {
	results := []types.PredictionResult{
		types.NewPredictionResult(types.Cities[0], 0.91),
		types.NewPredictionResult(types.Cities[1], 0.35),
	}

	tests := []struct {
		name       string
		svc        *mockPredictService
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "live prediction",
			svc:        &mockPredictService{results: results},
			body:       `{}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "manual form strings",
			svc:        &mockPredictService{results: results},
			body:       `{"use_manual": true, "target_city": "Delhi", "temp": "45", "humidity": "20", "wind": "10", "pressure": "1000"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed json",
			svc:        &mockPredictService{},
			body:       `{"use_manual": nope}`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "invalid character",
		},
		{
			name:       "non numeric temperature",
			svc:        &mockPredictService{},
			body:       `{"use_manual": true, "temp": "hot"}`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "could not convert",
		},
		{
			name:       "service rejects request",
			svc:        &mockPredictService{err: fmt.Errorf("%w: use_manual requires temp", predict.ErrInvalidRequest)},
			body:       `{"use_manual": true}`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "use_manual requires temp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(testApp(t, tt.svc), http.MethodPost, "/predict_all", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Contains(t, resp["error"], tt.wantError)
				return
			}

			var got []types.PredictionResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, results, got)
		})
	}
}

func TestHandlePredictAll_ManualFieldsReachService(t *testing.T) {
	svc := &mockPredictService{results: []types.PredictionResult{}}
	body := `{"use_manual": true, "target_city": "Jaipur", "temp": "44.5", "humidity": 18, "wind": "", "pressure": 999}`

	rec := serve(testApp(t, svc), http.MethodPost, "/predict_all", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	require.NotNil(t, svc.got)
	assert.True(t, svc.got.UseManual)
	assert.Equal(t, "Jaipur", *svc.got.TargetCity)
	assert.Equal(t, predict.NewNumber(44.5), svc.got.Temp)
	assert.False(t, svc.got.Wind.Valid)
}

func TestHandleHome(t *testing.T) {
	rec := serve(testApp(t, &mockPredictService{}), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, pageTitle)
	for _, city := range types.Cities {
		assert.Contains(t, body, fmt.Sprintf(`<option value="%s">`, city.Name))
	}
	assert.Contains(t, body, "/static/app.js")
}

func TestStaticAssets(t *testing.T) {
	rec := serve(testApp(t, &mockPredictService{}), http.MethodGet, "/static/app.js", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/predict_all")
}

func TestMetricsEndpoint(t *testing.T) {
	rec := serve(testApp(t, &mockPredictService{}), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
