// README: Google Directions API implementation of the RouteProvider contract.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"tripsense/internal/modules/trip"
	"tripsense/internal/types"
)

// RouteService handles interactions with the Google Directions API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// Route returns the drive summary from origin to dest. It assumes driving
// mode and takes the first returned route.
func (s *RouteService) Route(ctx context.Context, origin, dest types.Coordinate) (trip.RouteSummary, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin.String(),
		Destination: dest.String(),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return trip.RouteSummary{}, fmt.Errorf("directions api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return trip.RouteSummary{}, trip.ErrNotFound
	}

	best := routes[0]
	summary := trip.RouteSummary{
		EncodedPath: best.OverviewPolyline.Points,
	}
	// A coordinate-to-coordinate request yields a single leg; summing keeps
	// the numbers right if the API ever splits it.
	for _, leg := range best.Legs {
		summary.DistanceMeters += leg.Distance.Meters
		summary.DurationSeconds += int(leg.Duration.Seconds())
	}
	return summary, nil
}
