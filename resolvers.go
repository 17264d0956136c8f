package main

import (
	"fmt"
	"strings"

	"k8s.io/utils/ptr"
)

// Chooser asks the user to pick one of several options
type Chooser interface {
	Choose(prompt string, options []string) (string, error)
}

const chooseAirportPrompt = "Multiple airports found, please choose one"

// ResolveAirport maps free text to a single airport.
//
// A case-insensitive exact name match wins immediately. Otherwise every airport whose name
// contains the query (ignoring case) is a candidate: none is ErrAirportNotFound, one is
// returned as is, and several are offered to the chooser by distinct name. When two airports
// share a name the first one in the list is returned.
func ResolveAirport(query string, airports []Airport, chooser Chooser) (Airport, error) {
	needle := strings.ToLower(query)

	var candidates []Airport
	for _, airport := range airports {
		if airport.Name == nil {
			continue
		}

		lower := strings.ToLower(*airport.Name)
		if lower == needle {
			return airport, nil
		}
		if strings.Contains(lower, needle) {
			candidates = append(candidates, airport)
		}
	}

	switch len(candidates) {
	case 0:
		return Airport{}, ErrAirportNotFound
	case 1:
		return candidates[0], nil
	}

	names := distinctNames(candidates)
	choice, err := chooser.Choose(chooseAirportPrompt, names)
	if err != nil {
		return Airport{}, fmt.Errorf("error choosing airport: %w", err)
	}

	for _, airport := range candidates {
		if ptr.Deref(airport.Name, "") == choice {
			return airport, nil
		}
	}

	return Airport{}, fmt.Errorf("%w: %q is not one of the offered airports", ErrAirportNotFound, choice)
}
