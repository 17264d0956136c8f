package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryForIATA(t *testing.T) {
	t.Parallel()
	ref := fixtureReferenceData(t)

	tests := map[string]string{
		"LHR": "United Kingdom",
		"JFK": "United States",
		"CDG": "France",
		"XXX": "United Kingdom", // unnamed airports still resolve by code
		"NOC": "ZZ",             // ISO code missing from the country table
		"QQQ": NotAvailable,
		"":    NotAvailable,
	}

	for iata, want := range tests {
		assert.Equal(t, want, ref.CountryForIATA(iata), iata)
	}
}

func TestCountryName(t *testing.T) {
	t.Parallel()
	ref := fixtureReferenceData(t)

	assert.Equal(t, "France", ref.CountryName("FR"))
	assert.Equal(t, "DE", ref.CountryName("DE"))
}
