package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"travel-discovery-service/internal/domain"
	"travel-discovery-service/internal/platform/obs"
	"travel-discovery-service/internal/ports"
)

// GeocodeCache persists place name -> coordinate lookups across requests.
type GeocodeCache interface {
	Get(ctx context.Context, name string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, name string, coords domain.Coordinates) error
}

// GooglePlacesProvider implements Geocoder and PlaceSearcher against the
// Google Places web API.
//
// It coordinates:
//   - Place-name normalization
//   - Persistent geocode caching
//   - Short-lived in-process memoization of search responses
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type GooglePlacesProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	geocodeCache GeocodeCache
	results      *gocache.Cache
}

func NewGooglePlacesProvider(apiKey string, geocodeCache GeocodeCache) (*GooglePlacesProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google places api key is empty")
	}

	return &GooglePlacesProvider{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://maps.googleapis.com/maps/api",
		geocodeCache: geocodeCache,
		results:      gocache.New(5*time.Minute, 10*time.Minute),
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *GooglePlacesProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Geocode resolves a place name to coordinates. The first candidate wins.
func (g *GooglePlacesProvider) Geocode(ctx context.Context, name string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "places.Geocode")(&err)

	norm := g.normalize(name)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: name must be non-empty")
	}

	// Check the persistent cache before issuing an external API call.
	if g.geocodeCache != nil {
		coords, ok, err := g.geocodeCache.Get(ctx, norm)
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if ok {
			return coords, nil
		}
	}

	params := map[string]string{"address": norm}

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, "/geocode/json", params)
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if decoded.Status == "ZERO_RESULTS" || len(decoded.Results) == 0 {
		return domain.Coordinates{}, ports.ErrNoResults
	}
	if decoded.Status != "OK" {
		return domain.Coordinates{}, fmt.Errorf("geocode status %s: %s", decoded.Status, decoded.ErrorMessage)
	}

	loc := decoded.Results[0].Geometry.Location
	coords := domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}

	if g.geocodeCache != nil {
		if err := g.geocodeCache.Put(ctx, norm, coords); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coords, nil
}

// NearbySearch queries places around a location with optional keyword,
// category, and price filters.
func (g *GooglePlacesProvider) NearbySearch(ctx context.Context, q ports.NearbyQuery) (_ []domain.PlaceRecord, err error) {
	defer obs.Time(ctx, "places.NearbySearch")(&err)

	params := map[string]string{
		"location": formatLocation(q.Location),
		"radius":   strconv.Itoa(q.RadiusMeters),
	}
	if q.Keyword != "" {
		params["keyword"] = q.Keyword
	}
	if q.Type != "" {
		params["type"] = q.Type
	}
	if q.MinPrice != nil {
		params["minprice"] = strconv.Itoa(*q.MinPrice)
	}
	if q.MaxPrice != nil {
		params["maxprice"] = strconv.Itoa(*q.MaxPrice)
	}

	return g.search(ctx, "/place/nearbysearch/json", params)
}

// TextSearch queries places by free-text intent biased to a location.
func (g *GooglePlacesProvider) TextSearch(ctx context.Context, q ports.TextQuery) (_ []domain.PlaceRecord, err error) {
	defer obs.Time(ctx, "places.TextSearch")(&err)

	params := map[string]string{
		"query":    q.Query,
		"location": formatLocation(q.Location),
		"radius":   strconv.Itoa(q.RadiusMeters),
	}

	return g.search(ctx, "/place/textsearch/json", params)
}

func (g *GooglePlacesProvider) search(ctx context.Context, endpoint string, params map[string]string) ([]domain.PlaceRecord, error) {
	key := memoKey(endpoint, params)
	if cached, ok := g.results.Get(key); ok {
		return cached.([]domain.PlaceRecord), nil
	}

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, endpoint, params)
	})
	if err != nil {
		return nil, fmt.Errorf("execute search request: %w", err)
	}
	defer resp.Body.Close()

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if decoded.Status != "OK" && decoded.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("search status %s: %s", decoded.Status, decoded.ErrorMessage)
	}

	records := make([]domain.PlaceRecord, 0, len(decoded.Results))
	for _, p := range decoded.Results {
		records = append(records, p.toRecord())
	}

	g.results.Set(key, records, gocache.DefaultExpiration)

	return records, nil
}

func formatLocation(c domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// memoKey builds a deterministic cache key from the endpoint and its params.
func memoKey(endpoint string, params map[string]string) string {
	parts := make([]string, 0, len(params))
	for _, k := range []string{"location", "radius", "keyword", "type", "minprice", "maxprice", "query"} {
		if v, ok := params[k]; ok {
			parts = append(parts, k+"="+v)
		}
	}
	return endpoint + "?" + strings.Join(parts, "&")
}
