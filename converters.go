package main

import (
	"fmt"
	"strconv"
)

var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatTimestamp turns "2023-05-09T14:30..." into "14:30 on 09 May 2023".
//
// The flight API always sends this layout, so fields are read at fixed offsets with no
// calendar or timezone handling. A nil timestamp is NotAvailable; input that does not fit
// the layout is returned unchanged.
func FormatTimestamp(ts *string) string {
	if ts == nil {
		return NotAvailable
	}

	s := *ts
	if len(s) < 16 {
		return s
	}

	month, err := strconv.Atoi(s[5:7])
	if err != nil || month < 1 || month > 12 {
		return s
	}

	return s[11:16] + " on " + s[8:10] + " " + monthAbbreviations[month-1] + " " + s[0:4]
}

// formatTemperature renders a Celsius reading with one decimal place
func formatTemperature(celsius float64) string {
	return fmt.Sprintf("%.1f", celsius)
}
