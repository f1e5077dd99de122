package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
)

// API Docs: https://openweathermap.org/current and https://openweathermap.org/api/air-pollution
// Sample requests:
// - http://api.openweathermap.org/data/2.5/weather?q=Delhi,IN&appid=KEY&units=metric
// - http://api.openweathermap.org/data/2.5/air_pollution?lat=28.6139&lon=77.2090&appid=KEY
const (
	baseURL = "http://api.openweathermap.org/data/2.5"
)

// ErrBadStatus is returned when the provider answers with a non-200 HTTP status
var ErrBadStatus = errors.New("openweather returned non-success status")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger

	// one breaker per location, so failures for one city never short-circuit another
	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a client for the given base URL. An empty base URL uses
// the public API.
func NewClient(apiKey, base string, timeout time.Duration, logger *slog.Logger) *Client {
	if base == "" {
		base = baseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		apiKey:     apiKey,
		logger:     logger.With("component", "openweather-client"),
		breakers:   make(map[string]*gobreaker.CircuitBreaker[[]byte]),
	}
}

// breakerFor returns the breaker guarding requests for key, creating it on
// first use
func (c *Client) breakerFor(key string) *gobreaker.CircuitBreaker[[]byte] {
	c.mu.Lock()
	defer c.mu.Unlock()

	cb, ok := c.breakers[key]
	if !ok {
		cb = newBreaker(key)
		c.breakers[key] = cb
	}
	return cb
}

// newBreaker opens after five consecutive failures and probes again after 30s
func newBreaker(key string) *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "openweather:" + key,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: countsAsSuccess,
	})
}

// GetCurrentWeather fetches current conditions for a city name and ISO country code
func (c *Client) GetCurrentWeather(ctx context.Context, city, countryCode string) (*CurrentWeatherAPIResponse, error) {
	u, err := url.Parse(c.baseURL + "/weather")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", fmt.Sprintf("%s,%s", city, countryCode))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching current weather", "city", city, "country_code", countryCode)

	body, err := c.get(ctx, city, u.String())
	if err != nil {
		return nil, err
	}

	var apiResp CurrentWeatherAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.logger.Error("failed to decode current weather response", "city", city, "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// GetAirPollution fetches the current air quality index for a coordinate
func (c *Client) GetAirPollution(ctx context.Context, latitude, longitude float64) (*AirPollutionAPIResponse, error) {
	u, err := url.Parse(c.baseURL + "/air_pollution")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching air pollution", "latitude", latitude, "longitude", longitude)

	body, err := c.get(ctx, fmt.Sprintf("%.4f,%.4f", latitude, longitude), u.String())
	if err != nil {
		return nil, err
	}

	var apiResp AirPollutionAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.logger.Error("failed to decode air pollution response",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// get performs a GET through the breaker for key and returns the raw body.
// Non-200 responses are returned as a *StatusError; only transport errors and
// 5xx responses count against the breaker.
func (c *Client) get(ctx context.Context, key, rawURL string) ([]byte, error) {
	body, err := c.breakerFor(key).Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch: %w", stripURL(err))
		}
		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		}
		return body, nil
	})
	if err != nil {
		c.logger.Error("openweather request failed", "location", key, "error", err)
		return nil, err
	}

	return body, nil
}

// StatusError reports a non-200 response from the provider
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrBadStatus
}

// countsAsSuccess keeps 4xx answers, such as an unknown city, from tripping
// the breaker.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError
}

// stripURL drops the request URL from transport errors. The URL carries the
// API key in its query string.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
