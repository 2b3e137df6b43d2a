package places

import "travel-discovery-service/internal/domain"

type wireLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type wireGeometry struct {
	Location wireLocation `json:"location"`
}

type wirePlace struct {
	PlaceID          string       `json:"place_id"`
	Name             string       `json:"name"`
	Rating           *float64     `json:"rating"`
	UserRatingsTotal int          `json:"user_ratings_total"`
	PriceLevel       *int         `json:"price_level"`
	Geometry         wireGeometry `json:"geometry"`
}

type searchResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Results      []wirePlace `json:"results"`
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry wireGeometry `json:"geometry"`
	} `json:"results"`
}

func (p wirePlace) toRecord() domain.PlaceRecord {
	coords := domain.Coordinates{
		Lat: p.Geometry.Location.Lat,
		Lng: p.Geometry.Location.Lng,
	}

	return domain.PlaceRecord{
		PlaceID:     p.PlaceID,
		Name:        p.Name,
		Rating:      p.Rating,
		RatingCount: p.UserRatingsTotal,
		PriceLevel:  p.PriceLevel,
		Coords:      &coords,
	}
}
