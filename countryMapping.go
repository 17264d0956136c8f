// countryMapping.go
package main

// CountryName returns the full country name for an ISO code.
// Unknown codes are returned unchanged.
func (r *ReferenceData) CountryName(iso string) string {
	if name, ok := r.Countries[iso]; ok {
		return name
	}
	return iso
}

// CountryForIATA resolves an airport code to the name of the country it is in.
// Airports missing from the reference table resolve to NotAvailable so the row can
// still be rendered.
func (r *ReferenceData) CountryForIATA(iata string) string {
	airport, ok := r.AirportByIATA(iata)
	if !ok {
		return NotAvailable
	}
	if airport.ISO == "" {
		return NotAvailable
	}
	return r.CountryName(airport.ISO)
}
