package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const exportPrompt = "Do you want to save to html?"

// Exporter writes a finished report somewhere and returns its location
type Exporter interface {
	Export(report Report) (string, error)
}

// Informer runs search sessions against the loaded reference data and the two APIs
type Informer struct {
	ref      *ReferenceData
	flights  FlightSource
	enricher *Enricher
	prompter Prompter
	exporter Exporter
	out      io.Writer
	logger   *zap.Logger
}

// NewInformer wires a session. progress may be nil to disable the progress bar.
func NewInformer(
	ref *ReferenceData,
	flights FlightSource,
	weather WeatherSource,
	prompter Prompter,
	exporter Exporter,
	out io.Writer,
	progress io.Writer,
	log *zap.Logger,
) *Informer {
	return &Informer{
		ref:      ref,
		flights:  flights,
		enricher: NewEnricher(ref, weather, progress, log),
		prompter: prompter,
		exporter: exporter,
		out:      out,
		logger:   log.Named("informer"),
	}
}

// Search runs one iteration: resolve, fetch, enrich, render and offer the export.
// An unknown airport is reported to the user and is not an error.
func (i *Informer) Search(ctx context.Context, query string) error {
	airport, err := ResolveAirport(query, i.ref.Airports, i.prompter)
	if errors.Is(err, ErrAirportNotFound) {
		i.logger.Info("No airport matched", zap.String("query", query))
		fmt.Fprintln(i.out, notFoundMessage)
		return nil
	}
	if err != nil {
		return err
	}

	i.logger.Info("Resolved airport",
		zap.String("query", query),
		zap.String("airport", airport.IATA))

	flights, err := i.flights.FetchSchedules(ctx, airport.IATA)
	if err != nil {
		return fmt.Errorf("error fetching flights for %s: %w", airport.IATA, err)
	}

	report, err := i.enricher.Enrich(ctx, airport, flights)
	if err != nil {
		return err
	}

	if !RenderFlights(i.out, report) {
		return nil
	}

	save, err := i.prompter.Confirm(exportPrompt)
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	path, err := i.exporter.Export(report)
	if err != nil {
		return fmt.Errorf("error exporting flights: %w", err)
	}
	successColor.Fprintf(i.out, "Saved to %s\n", path)

	return nil
}

// Run prints the banner and loops over searches until input ends or ctx is cancelled.
// A non-empty initial query is used for the first search. With once set, Run stops
// after one search.
func (i *Informer) Run(ctx context.Context, initial string, once bool) error {
	printBanner(i.out)

	query := initial
	for {
		if ctx.Err() != nil {
			return nil
		}

		if query == "" {
			var err error
			query, err = i.prompter.Search()
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(i.out)
				return nil
			}
			if err != nil {
				return err
			}
		}

		err := i.Search(ctx, query)
		query = ""

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(i.out)
			return nil
		case ctx.Err() != nil:
			return nil
		default:
			i.reportError(err)
		}

		if once {
			return err
		}
	}
}

// reportError shows a failed iteration to the user; the session carries on
func (i *Informer) reportError(err error) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		i.logger.Warn("Search failed",
			zap.String("service", netErr.Service),
			zap.Int("status_code", netErr.StatusCode),
			zap.Error(err))
	} else {
		i.logger.Warn("Search failed", zap.Error(err))
	}
	errorColor.Fprintf(i.out, "Error: %v\n", err)
}
