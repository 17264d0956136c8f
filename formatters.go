package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Color definitions using fatih/color
var (
	titleColor   = color.New(color.FgHiWhite, color.Bold)
	noticeColor  = color.New(color.FgRed, color.Bold)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	promptColor  = color.New(color.FgCyan)

	// Table column colors, in column order
	flightNumberColor     = color.New(color.FgCyan)
	departureCountryColor = color.New(color.FgMagenta)
	departureTimeColor    = color.New(color.FgYellow)
	arrivalCountryColor   = color.New(color.FgWhite)
	arrivalTimeColor      = color.New(color.FgHiCyan)
	temperatureColor      = color.New(color.FgBlue)
	conditionsColor       = color.New(color.FgMagenta)

	// Status colors
	cancelledColor = color.New(color.FgRed)
	scheduledColor = color.New(color.FgWhite)
	activeColor    = color.New(color.FgYellow)
)

const noFlightsNotice = "No outgoing flights from this Airport"

var tableHeader = []string{
	"Flight Number",
	"Departure From",
	"Departure Time",
	"Arrival At",
	"Arrival Time",
	"Status",
	"Weather (°C)",
	"Conditions",
}

// StatusColor returns the style for a flight status, or nil when the status is shown unstyled.
// The styles only render while color output is enabled: -no-color or a non-TTY stdout sets
// color.NoColor and every status then prints as plain text. HTML exports style statuses
// through CSS classes instead.
func StatusColor(status FlightStatus) *color.Color {
	switch status {
	case StatusCancelled:
		return cancelledColor
	case StatusScheduled:
		return scheduledColor
	case StatusActive:
		return activeColor
	}
	return nil
}

func formatStatus(status FlightStatus) string {
	if c := StatusColor(status); c != nil {
		return c.Sprint(string(status))
	}
	return string(status)
}

// formatRow applies the column styles to one row
func formatRow(row EnrichedRow) []string {
	return []string{
		flightNumberColor.Sprint(row.FlightNumber),
		departureCountryColor.Sprint(row.DepartureCountry),
		departureTimeColor.Sprint(row.DepartureTime),
		arrivalCountryColor.Sprint(row.ArrivalCountry),
		arrivalTimeColor.Sprint(row.ArrivalTime),
		formatStatus(row.Status),
		temperatureColor.Sprint(row.Temperature),
		conditionsColor.Sprint(row.Conditions),
	}
}

// RenderFlights writes the flight table for a report. A report without rows gets the
// no-flights notice instead, and false is returned.
func RenderFlights(w io.Writer, report Report) bool {
	if len(report.Rows) == 0 {
		noticeColor.Fprintln(w, noFlightsNotice)
		return false
	}

	fmt.Fprintln(w)
	titleColor.Fprintln(w, airportTitle(report.Airport))
	titleColor.Fprintln(w, "------Flight Information------")

	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeader)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, row := range report.Rows {
		table.Append(formatRow(row))
	}
	table.Render()

	return true
}

// printBanner writes the welcome banner
func printBanner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "✈️ ✈️ ✈️ ✈️ ✈️ ✈️ ✈️ ✈️")
	titleColor.Fprintln(w, "Welcome to the Airports Informer Tool")
	fmt.Fprintln(w, "✈️ ✈️ ✈️ ✈️ ✈️ ✈️ ✈️ ✈️")
	fmt.Fprintln(w)
}
