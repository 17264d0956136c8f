package testdata

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed *.json
var data embed.FS

func read(t *testing.T, path string) []byte {
	b, err := data.ReadFile(path)
	require.NoError(t, err)
	return b
}

// Airports is a small airports file with duplicate and null names
func Airports(t *testing.T) []byte {
	return read(t, "airports.json")
}

// Countries is an ISO code to country name object
func Countries(t *testing.T) []byte {
	return read(t, "countries.json")
}

// Schedules is a recorded AirLabs schedules response for LHR
func Schedules(t *testing.T) []byte {
	return read(t, "schedules.json")
}

// Current is a recorded WeatherAPI.com current conditions response
func Current(t *testing.T) []byte {
	return read(t, "current.json")
}
