// README: Resolver collaborator contracts consumed by the assembler.
package trip

import (
	"context"
	"errors"

	"tripsense/internal/types"
)

// ErrNotFound is returned by any resolver when a lookup yields nothing.
// The assembler treats it (and timeouts) as a signal to apply fallbacks,
// never as a hard failure.
var ErrNotFound = errors.New("not found")

// Geocoder converts a location name into coordinates and a country code.
// countryHint, when non-empty, scopes the lookup to that country.
type Geocoder interface {
	Geocode(ctx context.Context, name, countryHint string) (GeocodeResult, error)
}

// PlaceSearcher finds raw candidate places matching a description near a
// coordinate. Implementations return up to limit unfiltered candidates;
// the caller applies the open-filter, dedup and final cap.
type PlaceSearcher interface {
	Search(ctx context.Context, query string, at types.Coordinate, limit int) ([]Candidate, error)
}

// RouteProvider fetches a drive summary between two coordinates.
type RouteProvider interface {
	Route(ctx context.Context, origin, dest types.Coordinate) (RouteSummary, error)
}
