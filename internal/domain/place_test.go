package domain

import "testing"

func intPtr(v int) *int { return &v }

func TestFormatPriceLevel(t *testing.T) {
	cases := []struct {
		name  string
		level *int
		want  string
	}{
		{"absent", nil, ""},
		{"zero is free", intPtr(0), "Free"},
		{"one", intPtr(1), "$"},
		{"two", intPtr(2), "$$"},
		{"three", intPtr(3), "$$$"},
		{"four", intPtr(4), "$$$$"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPriceLevel(tc.level); got != tc.want {
				t.Fatalf("FormatPriceLevel = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewLocationEntryDefaults(t *testing.T) {
	entry := NewLocationEntry(PlaceRecord{})

	if entry.Name != "Unknown" {
		t.Fatalf("name = %q, want %q", entry.Name, "Unknown")
	}
	if entry.Rating != nil {
		t.Fatalf("rating = %v, want nil", *entry.Rating)
	}
	if entry.PriceLabel != "" {
		t.Fatalf("price label = %q, want empty", entry.PriceLabel)
	}
	if entry.Coords != nil {
		t.Fatalf("coords = %v, want nil", entry.Coords)
	}
	if entry.Link != "#" {
		t.Fatalf("link = %q, want %q", entry.Link, "#")
	}
}

func TestNewLocationEntryFull(t *testing.T) {
	rating := 4.6
	record := PlaceRecord{
		PlaceID:     "abc123",
		Name:        "Trattoria da Enzo",
		Rating:      &rating,
		RatingCount: 1200,
		PriceLevel:  intPtr(2),
		Coords:      &Coordinates{Lat: 41.88, Lng: 12.47},
	}

	entry := NewLocationEntry(record)

	if entry.Name != "Trattoria da Enzo" {
		t.Fatalf("name = %q", entry.Name)
	}
	if entry.Rating == nil || *entry.Rating != 4.6 {
		t.Fatalf("rating = %v, want 4.6", entry.Rating)
	}
	if entry.PriceLabel != "$$" {
		t.Fatalf("price label = %q, want $$", entry.PriceLabel)
	}
	if entry.Coords == nil || entry.Coords.Lat != 41.88 || entry.Coords.Lng != 12.47 {
		t.Fatalf("coords = %v", entry.Coords)
	}
	want := "https://www.google.com/maps/search/?api=1&query=Google&query_place_id=abc123"
	if entry.Link != want {
		t.Fatalf("link = %q, want %q", entry.Link, want)
	}
}
