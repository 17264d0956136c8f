package main

import (
	"strings"

	"k8s.io/utils/ptr"
)

// distinctNames returns airport names in first-seen order without duplicates
func distinctNames(airports []Airport) []string {
	seen := make(map[string]bool, len(airports))
	names := make([]string, 0, len(airports))
	for _, airport := range airports {
		name := ptr.Deref(airport.Name, "")
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// airportTitle is the display name used for table titles and exports
func airportTitle(airport Airport) string {
	if name := ptr.Deref(airport.Name, ""); name != "" {
		return name
	}
	return airport.IATA
}

// joinQuery rebuilds a search string from command-line arguments
func joinQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
