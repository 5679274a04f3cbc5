// README: Google Geocoding API implementation of the Geocoder contract.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"tripsense/internal/modules/trip"
	"tripsense/internal/types"
)

// GeocodeService handles interactions with the Google Geocoding API.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API Key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Geocode resolves a location name to coordinates and a country code.
// A non-empty countryHint restricts matches to that country, which is how
// the assembler keeps the end location in the start's country.
func (s *GeocodeService) Geocode(ctx context.Context, name, countryHint string) (trip.GeocodeResult, error) {
	r := &maps.GeocodingRequest{Address: name}
	if countryHint != "" {
		r.Components = map[maps.Component]string{maps.ComponentCountry: countryHint}
	}

	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return trip.GeocodeResult{}, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return trip.GeocodeResult{}, trip.ErrNotFound
	}

	best := results[0]
	return trip.GeocodeResult{
		Position: types.Coordinate{
			Lat: best.Geometry.Location.Lat,
			Lng: best.Geometry.Location.Lng,
		},
		CountryCode: countryCode(best.AddressComponents),
	}, nil
}

func countryCode(components []maps.AddressComponent) string {
	for _, c := range components {
		for _, t := range c.Types {
			if t == "country" {
				return c.ShortName
			}
		}
	}
	return ""
}
