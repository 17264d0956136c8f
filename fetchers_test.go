package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rmitchellscott/AirportInformer/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"k8s.io/utils/ptr"
)

func newFlightTestServer(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schedules", r.URL.Path)
		assert.Equal(t, "LHR", r.URL.Query().Get("dep_iata"))
		assert.Equal(t, "flight-secret", r.URL.Query().Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestFlightClient(t *testing.T, baseURL string) *FlightClient {
	return NewFlightClient(FlightsConfig{BaseURL: baseURL, APIKey: "flight-secret"}, 5*time.Second, zaptest.NewLogger(t))
}

func TestFlightClient_FetchSchedules(t *testing.T) {
	t.Parallel()
	srv := newFlightTestServer(t, http.StatusOK, testdata.Schedules(t))

	flights, err := newTestFlightClient(t, srv.URL+"/").FetchSchedules(context.Background(), "LHR")
	require.NoError(t, err)
	require.Len(t, flights, 3)

	assert.Equal(t, "117", flights[0].FlightNumber)
	assert.Equal(t, "LHR", flights[0].DepIATA)
	assert.Equal(t, "JFK", flights[0].ArrIATA)
	assert.Equal(t, "2023-05-09 14:30", ptr.Deref(flights[0].DepTime, ""))
	assert.Equal(t, StatusScheduled, flights[0].Status)

	assert.Equal(t, StatusActive, flights[1].Status)

	assert.Equal(t, StatusCancelled, flights[2].Status)
	assert.Nil(t, flights[2].ArrTime)
}

func TestFlightClient_FetchSchedules_empty(t *testing.T) {
	t.Parallel()
	srv := newFlightTestServer(t, http.StatusOK, []byte(`{"response": []}`))

	flights, err := newTestFlightClient(t, srv.URL).FetchSchedules(context.Background(), "LHR")
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestFlightClient_FetchSchedules_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		statusCode int
	}{
		{"server error", http.StatusInternalServerError, `oops`, http.StatusInternalServerError},
		{"unauthorized", http.StatusUnauthorized, `{"error": {"message": "Unknown api_key"}}`, http.StatusUnauthorized},
		{"malformed payload", http.StatusOK, `{"response": [`, http.StatusOK},
		{"error envelope", http.StatusOK, `{"error": {"message": "Unknown api_key", "code": "unknown_api_key"}}`, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := newFlightTestServer(t, tt.status, []byte(tt.body))

			_, err := newTestFlightClient(t, srv.URL).FetchSchedules(context.Background(), "LHR")
			require.Error(t, err)

			var netErr *NetworkError
			require.True(t, errors.As(err, &netErr))
			assert.Equal(t, "flights", netErr.Service)
			assert.Equal(t, tt.statusCode, netErr.StatusCode)
			assert.NotContains(t, err.Error(), "flight-secret")
		})
	}
}

func TestFlightClient_FetchSchedules_unreachable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := newTestFlightClient(t, srv.URL).FetchSchedules(context.Background(), "LHR")

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
	assert.NotContains(t, err.Error(), "flight-secret")
	assert.Contains(t, err.Error(), "api_key=REDACTED")
}

func TestFlightClient_FetchSchedules_unreachableLogRedacted(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	client := NewFlightClient(FlightsConfig{BaseURL: srv.URL, APIKey: "flight-secret"}, 5*time.Second, zap.New(core))

	_, err := client.FetchSchedules(context.Background(), "LHR")
	require.Error(t, err)

	entries := logs.FilterMessage("Request failed").All()
	require.Len(t, entries, 1)
	for key, value := range entries[0].ContextMap() {
		assert.NotContains(t, fmt.Sprint(value), "flight-secret", key)
	}
}

func newWeatherTestServer(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current.json", r.URL.Path)
		assert.Equal(t, "weather-secret", r.URL.Query().Get("key"))
		assert.Equal(t, "40.642334,-73.78817", r.URL.Query().Get("q"))
		assert.Equal(t, "no", r.URL.Query().Get("aqi"))
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestWeatherClient(t *testing.T, baseURL string) *WeatherClient {
	return NewWeatherClient(WeatherConfig{BaseURL: baseURL, APIKey: "weather-secret"}, 5*time.Second, zaptest.NewLogger(t))
}

func TestWeatherClient_FetchCurrent(t *testing.T) {
	t.Parallel()
	srv := newWeatherTestServer(t, http.StatusOK, testdata.Current(t))

	reading, err := newTestWeatherClient(t, srv.URL).FetchCurrent(context.Background(), 40.642334, -73.78817)
	require.NoError(t, err)
	assert.Equal(t, WeatherReading{Temperature: "18.3", Condition: "Partly cloudy"}, reading)
}

func TestWeatherClient_FetchCurrent_errors(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		status int
		body   string
	}{
		"forbidden": {http.StatusForbidden, `{"error": {"code": 2008, "message": "API key has been disabled."}}`},
		"malformed": {http.StatusOK, `not json`},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv := newWeatherTestServer(t, tc.status, []byte(tc.body))

			_, err := newTestWeatherClient(t, srv.URL).FetchCurrent(context.Background(), 40.642334, -73.78817)

			var netErr *NetworkError
			require.True(t, errors.As(err, &netErr))
			assert.Equal(t, "weather", netErr.Service)
			assert.Equal(t, tc.status, netErr.StatusCode)
			assert.NotContains(t, netErr.URL, "weather-secret")
		})
	}
}

func TestWeatherClient_FetchCurrent_unreachable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := newTestWeatherClient(t, srv.URL).FetchCurrent(context.Background(), 40.642334, -73.78817)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
	assert.NotContains(t, err.Error(), "weather-secret")
	assert.Contains(t, err.Error(), "key=REDACTED")
}

func TestWeatherClient_FetchCurrent_cancelled(t *testing.T) {
	t.Parallel()
	srv := newWeatherTestServer(t, http.StatusOK, testdata.Current(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestWeatherClient(t, srv.URL).FetchCurrent(ctx, 40.642334, -73.78817)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWeatherClient_FetchCurrent_throttled(t *testing.T) {
	t.Parallel()
	srv := newWeatherTestServer(t, http.StatusOK, testdata.Current(t))
	client := NewWeatherClient(WeatherConfig{
		BaseURL:           srv.URL,
		APIKey:            "weather-secret",
		RequestsPerSecond: 0.1,
	}, 5*time.Second, zaptest.NewLogger(t))

	_, err := client.FetchCurrent(context.Background(), 40.642334, -73.78817)
	require.NoError(t, err, "first request uses the burst")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = client.FetchCurrent(ctx, 40.642334, -73.78817)
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
	assert.ErrorContains(t, err, "rate limiter")
}
