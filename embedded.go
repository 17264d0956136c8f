package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

//go:embed assets/airports.json assets/countries.json
var embeddedFiles embed.FS

const (
	embeddedAirportsPath  = "assets/airports.json"
	embeddedCountriesPath = "assets/countries.json"
)

// ReferenceData holds the read-only lookup tables loaded at startup
type ReferenceData struct {
	Airports  []Airport
	Countries map[string]string
}

// LoadReferenceData loads the airports and country tables. Paths left empty in the
// config fall back to the copies embedded in the binary.
func LoadReferenceData(cfg DataConfig, log *zap.Logger) (*ReferenceData, error) {
	log = log.Named("reference-data")

	airportsJSON, err := readDataFile(cfg.AirportsPath, embeddedAirportsPath)
	if err != nil {
		return nil, fmt.Errorf("error reading airports file: %w", err)
	}

	countriesJSON, err := readDataFile(cfg.CountriesPath, embeddedCountriesPath)
	if err != nil {
		return nil, fmt.Errorf("error reading countries file: %w", err)
	}

	ref, err := ParseReferenceData(airportsJSON, countriesJSON)
	if err != nil {
		return nil, err
	}

	log.Debug("Loaded reference data",
		zap.Int("airports", len(ref.Airports)),
		zap.Int("countries", len(ref.Countries)),
		zap.Bool("embedded_airports", cfg.AirportsPath == ""),
		zap.Bool("embedded_countries", cfg.CountriesPath == ""))

	return ref, nil
}

// ParseReferenceData decodes the raw airports array and the ISO code to name object
func ParseReferenceData(airportsJSON, countriesJSON []byte) (*ReferenceData, error) {
	var airports []Airport
	if err := json.Unmarshal(airportsJSON, &airports); err != nil {
		return nil, fmt.Errorf("error parsing airports file: %w", err)
	}

	countries := make(map[string]string)
	if err := json.Unmarshal(countriesJSON, &countries); err != nil {
		return nil, fmt.Errorf("error parsing countries file: %w", err)
	}

	return &ReferenceData{
		Airports:  airports,
		Countries: countries,
	}, nil
}

func readDataFile(path, embeddedPath string) ([]byte, error) {
	if path == "" {
		return embeddedFiles.ReadFile(embeddedPath)
	}
	return os.ReadFile(path)
}

// AirportByIATA returns the first airport with the given code
func (r *ReferenceData) AirportByIATA(iata string) (Airport, bool) {
	if iata == "" {
		return Airport{}, false
	}
	for _, airport := range r.Airports {
		if airport.IATA == iata {
			return airport, true
		}
	}
	return Airport{}, false
}
