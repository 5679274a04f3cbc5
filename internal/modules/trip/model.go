// README: Structured trip query result and resolver value objects.
package trip

import (
	"tripsense/internal/modules/intent"
	"tripsense/internal/types"
)

// ResolutionStatus records whether a location's coordinates came from the
// resolver or from the configured fallback. Without the flag a defaulted
// position is indistinguishable from a genuine match at the same spot.
type ResolutionStatus string

const (
	// StatusResolved means the resolver returned a real match.
	StatusResolved ResolutionStatus = "resolved"
	// StatusDefaulted means resolution failed (or was never attempted, for
	// the "current location" sentinel) and configured defaults were used.
	StatusDefaulted ResolutionStatus = "defaulted"
	// StatusUnresolved marks a waypoint whose place search failed outright.
	StatusUnresolved ResolutionStatus = "unresolved"
)

// GeocodeResult is the successful output of a Geocoder call.
type GeocodeResult struct {
	Position    types.Coordinate `json:"position"`
	CountryCode string           `json:"country_code"`
}

// Candidate is one raw, unfiltered hit from a PlaceSearcher. The searcher
// over-fetches; the assembler owns the open-filter and dedup policy.
type Candidate struct {
	Title    string           `json:"title"`
	Address  string           `json:"address"`
	Position types.Coordinate `json:"position"`
	Open     bool             `json:"open"`
}

// Place is a resolved real-world candidate kept for a waypoint.
type Place struct {
	Title    string           `json:"title"`
	Address  string           `json:"address"`
	Position types.Coordinate `json:"position"`
}

// Location is a start or end mention with its resolution outcome.
type Location struct {
	Text        string           `json:"text"`
	Position    types.Coordinate `json:"position"`
	CountryCode string           `json:"country_code,omitempty"`
	Status      ResolutionStatus `json:"status"`
}

// Waypoint is an intermediate stop description, distinct from start/end and
// from the tagger's generic locations, with its candidate places.
type Waypoint struct {
	Text   string           `json:"text"`
	Places []Place          `json:"places"`
	Status ResolutionStatus `json:"status"`
}

// TimeConstraints holds calendar mentions from the tagger and duration
// spans from the regex extractor. The two lists are not deduplicated
// against each other.
type TimeConstraints struct {
	Times     []string `json:"times"`
	Durations []string `json:"durations"`
}

// RouteSummary is the turn-level summary from the route provider.
type RouteSummary struct {
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
	EncodedPath     string `json:"encoded_path"`
}

// Result is the structured form of one trip query. Built once per query,
// never mutated after assembly, never persisted.
type Result struct {
	Query               string          `json:"query"`
	Intents             []intent.Intent `json:"intents"`
	Start               Location        `json:"start"`
	End                 *Location       `json:"end,omitempty"`
	Locations           []string        `json:"locations"`
	Waypoints           []Waypoint      `json:"waypoints"`
	DistanceConstraints []string        `json:"distance_constraints"`
	Time                TimeConstraints `json:"time_constraints"`
	Route               *RouteSummary   `json:"route,omitempty"`
	Notices             []string        `json:"notices,omitempty"`
}
