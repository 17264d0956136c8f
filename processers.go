package main

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Enricher joins fetched flights with country names and destination weather
type Enricher struct {
	ref      *ReferenceData
	weather  WeatherSource
	progress io.Writer // nil disables the progress bar
	logger   *zap.Logger
}

// NewEnricher creates an enricher. Progress is drawn on progress when it is non-nil.
func NewEnricher(ref *ReferenceData, weather WeatherSource, progress io.Writer, log *zap.Logger) *Enricher {
	return &Enricher{
		ref:      ref,
		weather:  weather,
		progress: progress,
		logger:   log.Named("enricher"),
	}
}

// Enrich builds one row per flight, in order. Weather is fetched for each flight in turn;
// a failed weather call aborts the whole report.
func (e *Enricher) Enrich(ctx context.Context, airport Airport, flights []FlightRecord) (Report, error) {
	report := Report{Airport: airport}
	if len(flights) == 0 {
		return report, nil
	}

	// Every row of a search departs from the same airport
	report.DepartureIATA = flights[0].DepIATA
	depCountry := e.ref.CountryForIATA(report.DepartureIATA)

	bar := e.newProgressBar(len(flights))
	defer func() {
		if bar != nil {
			_ = bar.Finish()
		}
	}()

	report.Rows = make([]EnrichedRow, 0, len(flights))
	for _, flight := range flights {
		reading, err := e.weatherFor(ctx, flight.ArrIATA)
		if err != nil {
			return Report{}, fmt.Errorf("error fetching weather for flight %s: %w", flight.FlightNumber, err)
		}

		report.Rows = append(report.Rows, EnrichedRow{
			FlightNumber:     flight.FlightNumber,
			DepartureCountry: depCountry,
			DepartureTime:    FormatTimestamp(flight.DepTime),
			ArrivalCountry:   e.ref.CountryForIATA(flight.ArrIATA),
			ArrivalTime:      FormatTimestamp(flight.ArrTime),
			Status:           flight.Status,
			Temperature:      reading.Temperature,
			Conditions:       reading.Condition,
		})

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	e.logger.Debug("Enriched flights",
		zap.String("airport", report.DepartureIATA),
		zap.Int("rows", len(report.Rows)))

	return report, nil
}

// weatherFor looks up destination coordinates and fetches the weather there.
// Unknown destinations get UnavailableWeather without a network call.
func (e *Enricher) weatherFor(ctx context.Context, iata string) (WeatherReading, error) {
	airport, ok := e.ref.AirportByIATA(iata)
	if !ok || !airport.HasCoordinates() {
		e.logger.Debug("No coordinates for destination", zap.String("airport", iata))
		return UnavailableWeather, nil
	}

	return e.weather.FetchCurrent(ctx, airport.Latitude.Value, airport.Longitude.Value)
}

func (e *Enricher) newProgressBar(total int) *progressbar.ProgressBar {
	if e.progress == nil {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(e.progress),
		progressbar.OptionSetDescription("Processing..."),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
