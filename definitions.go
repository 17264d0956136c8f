package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NotAvailable is shown wherever reference or upstream data is missing
const NotAvailable = "N/A"

// ErrAirportNotFound is returned when a search matches no airport names
var ErrAirportNotFound = errors.New("airport not found")

// notFoundMessage is what the user sees for ErrAirportNotFound
const notFoundMessage = "404 error! Airport could not be found!"

// Coordinate is a latitude or longitude that may be encoded as a JSON string or number.
// The public airports dataset stores coordinates as strings.
type Coordinate struct {
	Value float64
	Valid bool
}

// UnmarshalJSON accepts "51.4775", 51.4775, "" and null
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*c = Coordinate{}
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid coordinate %s: %w", raw, err)
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Unusable coordinates are treated as missing rather than failing the whole dataset
		*c = Coordinate{}
		return nil
	}

	*c = Coordinate{Value: v, Valid: true}
	return nil
}

// Airport represents one record of the airports reference file
type Airport struct {
	Name      *string    `json:"name"`
	IATA      string     `json:"iata"`
	ISO       string     `json:"iso"`
	Latitude  Coordinate `json:"lat"`
	Longitude Coordinate `json:"lon"`
}

// HasCoordinates reports whether both latitude and longitude are usable
func (a Airport) HasCoordinates() bool {
	return a.Latitude.Valid && a.Longitude.Valid
}

// FlightStatus is the schedule status reported by the flight API
type FlightStatus string

const (
	StatusScheduled FlightStatus = "scheduled"
	StatusActive    FlightStatus = "active"
	StatusCancelled FlightStatus = "cancelled"
)

// FlightRecord is a single departure from the schedules endpoint
type FlightRecord struct {
	FlightNumber string       `json:"flight_number"`
	DepIATA      string       `json:"dep_iata"`
	ArrIATA      string       `json:"arr_iata"`
	DepTime      *string      `json:"dep_time"`
	ArrTime      *string      `json:"arr_time"`
	Status       FlightStatus `json:"status"`
}

// WeatherReading is the current weather at a destination
type WeatherReading struct {
	Temperature string
	Condition   string
}

// UnavailableWeather is used when a destination has no known coordinates
var UnavailableWeather = WeatherReading{Temperature: NotAvailable, Condition: NotAvailable}

// EnrichedRow is one rendered table row
type EnrichedRow struct {
	FlightNumber     string
	DepartureCountry string
	DepartureTime    string
	ArrivalCountry   string
	ArrivalTime      string
	Status           FlightStatus
	Temperature      string
	Conditions       string
}

// Report is the fully enriched result of one search
type Report struct {
	Airport Airport
	// DepartureIATA comes from the first flight of this search and names the export
	DepartureIATA string
	Rows          []EnrichedRow
}
