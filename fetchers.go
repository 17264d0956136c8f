package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// NetworkError is returned for any failed call to the flight or weather API:
// transport failures, non-2xx statuses and undecodable payloads alike.
type NetworkError struct {
	Service    string
	URL        string // query string has API keys removed
	StatusCode int    // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request to %s failed with status %d: %v", e.Service, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request to %s failed: %v", e.Service, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// FlightSource returns the outgoing flights for an airport
type FlightSource interface {
	FetchSchedules(ctx context.Context, iata string) ([]FlightRecord, error)
}

// WeatherSource returns the current weather at a position
type WeatherSource interface {
	FetchCurrent(ctx context.Context, lat, lon float64) (WeatherReading, error)
}

// apiClient is the shared GET-and-decode plumbing of both API clients
type apiClient struct {
	service    string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// newAPIClient builds the shared client. requestsPerSecond <= 0 disables throttling.
func newAPIClient(service, baseURL string, timeout time.Duration, requestsPerSecond float64, log *zap.Logger) apiClient {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return apiClient{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, 1),
		logger:  log.Named(service + "-client"),
	}
}

// getJSON issues one GET request and decodes a 2xx body into target
func (c apiClient) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	u := c.baseURL + path + "?" + query.Encode()
	display := c.baseURL + path + "?" + redactQuery(query).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &NetworkError{Service: c.service, URL: display, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return &NetworkError{Service: c.service, URL: display, Err: fmt.Errorf("rate limiter: %w", err)}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error repeats the unredacted URL
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		c.logger.Warn("Request failed", zap.String("url", display), zap.Error(err))
		return &NetworkError{Service: c.service, URL: display, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("Request completed",
		zap.String("url", display),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &NetworkError{
			Service:    c.service,
			URL:        display,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status code: %d %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &NetworkError{
			Service:    c.service,
			URL:        display,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("error decoding response: %w", err),
		}
	}

	return nil
}

// redactQuery hides credentials so URLs can be logged and shown
func redactQuery(query url.Values) url.Values {
	redacted := make(url.Values, len(query))
	for k, v := range query {
		if k == "api_key" || k == "key" {
			redacted.Set(k, "REDACTED")
			continue
		}
		redacted[k] = v
	}
	return redacted
}

// FlightClient talks to the AirLabs schedules endpoint
type FlightClient struct {
	api    apiClient
	apiKey string
}

// NewFlightClient creates a flight schedule client
func NewFlightClient(cfg FlightsConfig, timeout time.Duration, log *zap.Logger) *FlightClient {
	return &FlightClient{
		api:    newAPIClient("flights", cfg.BaseURL, timeout, cfg.RequestsPerSecond, log),
		apiKey: cfg.APIKey,
	}
}

type schedulesResponse struct {
	Response []FlightRecord `json:"response"`
	Error    *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// FetchSchedules returns the scheduled departures for an airport
func (c *FlightClient) FetchSchedules(ctx context.Context, iata string) ([]FlightRecord, error) {
	query := url.Values{}
	query.Set("dep_iata", iata)
	query.Set("api_key", c.apiKey)

	var result schedulesResponse
	if err := c.api.getJSON(ctx, "/schedules", query, &result); err != nil {
		return nil, err
	}

	if result.Error != nil {
		return nil, &NetworkError{
			Service: c.api.service,
			URL:     c.api.baseURL + "/schedules?" + redactQuery(query).Encode(),
			Err:     fmt.Errorf("api error %s: %s", result.Error.Code, result.Error.Message),
		}
	}

	c.api.logger.Debug("Fetched schedules",
		zap.String("airport", iata),
		zap.Int("flights", len(result.Response)))

	return result.Response, nil
}

// WeatherClient talks to the WeatherAPI.com current conditions endpoint
type WeatherClient struct {
	api    apiClient
	apiKey string
}

// NewWeatherClient creates a weather client
func NewWeatherClient(cfg WeatherConfig, timeout time.Duration, log *zap.Logger) *WeatherClient {
	return &WeatherClient{
		api:    newAPIClient("weather", cfg.BaseURL, timeout, cfg.RequestsPerSecond, log),
		apiKey: cfg.APIKey,
	}
}

type currentResponse struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// FetchCurrent returns the temperature and condition text at a position
func (c *WeatherClient) FetchCurrent(ctx context.Context, lat, lon float64) (WeatherReading, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("q", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("aqi", "no")

	var result currentResponse
	if err := c.api.getJSON(ctx, "/current.json", query, &result); err != nil {
		return WeatherReading{}, err
	}

	return WeatherReading{
		Temperature: formatTemperature(result.Current.TempC),
		Condition:   result.Current.Condition.Text,
	}, nil
}
