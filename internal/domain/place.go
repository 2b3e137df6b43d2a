package domain

import "strings"

// Raw place result as returned by a places search.
// Optional fields are pointers; absence matters for filtering and labeling.
// Records live only for the duration of a single plan build.
type PlaceRecord struct {
	PlaceID     string
	Name        string
	Rating      *float64
	RatingCount int
	PriceLevel  *int
	Coords      *Coordinates
}

// Normalized location used in discovery plans and map rendering.
type LocationEntry struct {
	Name       string       `json:"name"`
	Rating     *float64     `json:"rating"`
	PriceLabel string       `json:"price_label"`
	Coords     *Coordinates `json:"coords"`
	Link       string       `json:"link"`
}

// FormatPriceLevel converts a places price level into a readable label.
// Level 0 means free admission; higher levels map to that many "$" signs.
func FormatPriceLevel(level *int) string {
	if level == nil {
		return ""
	}
	if *level == 0 {
		return "Free"
	}
	return strings.Repeat("$", *level)
}

const placeLinkPrefix = "https://www.google.com/maps/search/?api=1&query=Google&query_place_id="

// NewLocationEntry normalizes a raw place record. It never fails: missing
// fields fall back to neutral defaults so a partial result still renders.
func NewLocationEntry(p PlaceRecord) LocationEntry {
	name := p.Name
	if name == "" {
		name = "Unknown"
	}

	link := "#"
	if p.PlaceID != "" {
		link = placeLinkPrefix + p.PlaceID
	}

	return LocationEntry{
		Name:       name,
		Rating:     p.Rating,
		PriceLabel: FormatPriceLevel(p.PriceLevel),
		Coords:     p.Coords,
		Link:       link,
	}
}
