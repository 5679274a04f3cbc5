// README: Google Places nearby search implementation of the PlaceSearcher contract.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"tripsense/internal/modules/trip"
	"tripsense/internal/types"
)

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Search returns up to limit raw candidates matching query near at, ranked
// by distance. Candidates are deliberately unfiltered: closed places and
// duplicates are included, since the assembler owns that policy and needs
// the over-fetch headroom.
func (s *PlacesService) Search(ctx context.Context, query string, at types.Coordinate, limit int) ([]trip.Candidate, error) {
	r := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: at.Lat, Lng: at.Lng},
		Keyword:  query,
		RankBy:   maps.RankByDistance,
	}

	resp, err := s.client.NearbySearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, trip.ErrNotFound
	}

	candidates := make([]trip.Candidate, 0, limit)
	for _, result := range resp.Results {
		open := result.OpeningHours != nil &&
			result.OpeningHours.OpenNow != nil &&
			*result.OpeningHours.OpenNow

		candidates = append(candidates, trip.Candidate{
			Title:   result.Name,
			Address: result.Vicinity,
			Position: types.Coordinate{
				Lat: result.Geometry.Location.Lat,
				Lng: result.Geometry.Location.Lng,
			},
			Open: open,
		})
		if len(candidates) == limit {
			break
		}
	}
	return candidates, nil
}
