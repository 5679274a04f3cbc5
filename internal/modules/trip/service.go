// README: Trip assembler; orchestrates extraction, resolution and merge.
package trip

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"tripsense/internal/ai"
	"tripsense/internal/config"
	"tripsense/internal/modules/extract"
	"tripsense/internal/modules/intent"
	"tripsense/internal/types"
)

// Service turns one raw query into a Result. All fields are read-only
// after construction, so a single Service handles concurrent queries with
// no coordination.
type Service struct {
	classifier *intent.Classifier
	tagger     ai.EntityTagger
	geocoder   Geocoder
	places     PlaceSearcher
	router     RouteProvider
	cfg        config.ResolverConfig
}

func NewService(tagger ai.EntityTagger, geocoder Geocoder, places PlaceSearcher, router RouteProvider, cfg config.ResolverConfig) *Service {
	return &Service{
		classifier: intent.NewClassifier(),
		tagger:     tagger,
		geocoder:   geocoder,
		places:     places,
		router:     router,
		cfg:        cfg,
	}
}

// Extraction is the resolver-free view of a query: intents, spans and
// constraints, with waypoints already normalized against tagged locations.
type Extraction struct {
	Intents             []intent.Intent `json:"intents"`
	Start               string          `json:"start"`
	End                 string          `json:"end"`
	Waypoints           []string        `json:"waypoints"`
	Locations           []string        `json:"locations"`
	DistanceConstraints []string        `json:"distance_constraints"`
	Time                TimeConstraints `json:"time_constraints"`
	Notices             []string        `json:"notices,omitempty"`
}

// Extract runs the classifier, the span extractors and the entity tagger.
// The tagger is the only remote call; its failure degrades to an empty
// entity list with a notice, never an error.
func (s *Service) Extract(ctx context.Context, query string) Extraction {
	start, end := extract.StartEnd(query)
	ex := Extraction{
		Intents:             s.classifier.Classify(query),
		Start:               start,
		End:                 end,
		DistanceConstraints: extract.DistanceConstraints(query),
	}
	ex.Time.Durations = extract.Durations(query)

	tagCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	entities, err := s.tagger.Tag(tagCtx, query)
	if err != nil {
		log.Printf("entity tagger error: %v", err)
		ex.Notices = append(ex.Notices, "entity tagging failed; continuing without tagged entities")
	}

	var locations []string
	for _, e := range entities {
		if e.IsCalendar() {
			ex.Time.Times = append(ex.Time.Times, e.Text)
			continue
		}
		if !e.IsLocation() {
			continue
		}
		text := strings.ToLower(strings.TrimSpace(e.Text))
		// Start and end must never reappear as generic locations.
		if text == "" || text == ex.Start || text == ex.End {
			continue
		}
		locations = append(locations, text)
	}
	ex.Locations = locations

	// Waypoints shadowed by tagged locations are dropped, then repeats
	// collapsed so each stop is resolved once. Start and end must never
	// reappear as waypoints either.
	waypoints := uniqueOrdered(extract.Normalize(extract.Waypoints(query), locations))
	ex.Waypoints = make([]string, 0, len(waypoints))
	for _, wp := range waypoints {
		if wp == ex.Start || wp == ex.End {
			continue
		}
		ex.Waypoints = append(ex.Waypoints, wp)
	}
	return ex
}

// Plan runs the full pipeline: extraction, start/end geocoding, per-waypoint
// place search anchored at the start, and the route summary. Resolver
// failures degrade to defaults and notices; Plan fails only when ctx is
// already done.
func (s *Service) Plan(ctx context.Context, query string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ex := s.Extract(ctx, query)

	res := &Result{
		Query:               query,
		Intents:             ex.Intents,
		Locations:           ex.Locations,
		DistanceConstraints: ex.DistanceConstraints,
		Time:                ex.Time,
		Notices:             ex.Notices,
	}

	// Start resolves first: its country code scopes the end lookup and its
	// position anchors every waypoint search.
	startLoc, notice := s.resolveStart(ctx, ex.Start)
	res.Start = startLoc
	if notice != "" {
		res.Notices = append(res.Notices, notice)
	}

	// End and waypoints have no dependency on each other; each target gets
	// its own goroutine writing to its own slot.
	var wg sync.WaitGroup

	var endLoc *Location
	var endNotice string
	if ex.End != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loc, n := s.resolveEnd(ctx, ex.End, startLoc.CountryCode)
			endLoc, endNotice = &loc, n
		}()
	}

	waypoints := make([]Waypoint, len(ex.Waypoints))
	wpNotices := make([]string, len(ex.Waypoints))
	for i, text := range ex.Waypoints {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			waypoints[i], wpNotices[i] = s.resolveWaypoint(ctx, text, startLoc.Position)
		}(i, text)
	}

	wg.Wait()

	res.End = endLoc
	if endNotice != "" {
		res.Notices = append(res.Notices, endNotice)
	}
	res.Waypoints = waypoints
	for _, n := range wpNotices {
		if n != "" {
			res.Notices = append(res.Notices, n)
		}
	}

	// Route summary only makes sense with a declared destination.
	if res.End != nil {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		summary, err := s.router.Route(callCtx, res.Start.Position, res.End.Position)
		cancel()
		if err != nil {
			log.Printf("route summary error for %q: %v", query, err)
			res.Notices = append(res.Notices, fmt.Sprintf("route %s -> %s unavailable", res.Start.Text, res.End.Text))
		} else {
			res.Route = &summary
		}
	}

	return res, nil
}

// defaultLocation builds the configured fallback for a failed resolution.
func (s *Service) defaultLocation(text string) Location {
	return Location{
		Text:        text,
		Position:    types.Coordinate{Lat: s.cfg.DefaultLat, Lng: s.cfg.DefaultLng},
		CountryCode: s.cfg.DefaultCountry,
		Status:      StatusDefaulted,
	}
}

func (s *Service) resolveStart(ctx context.Context, text string) (Location, string) {
	// The sentinel is a request for the caller's own position, not a name
	// the geocoder could look up.
	if text == extract.CurrentLocation {
		return s.defaultLocation(text), fmt.Sprintf("start %q: using default position", text)
	}
	return s.geocode(ctx, "start", text, "")
}

func (s *Service) resolveEnd(ctx context.Context, text, countryHint string) (Location, string) {
	return s.geocode(ctx, "end", text, countryHint)
}

func (s *Service) geocode(ctx context.Context, role, text, countryHint string) (Location, string) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	g, err := s.geocoder.Geocode(callCtx, text, countryHint)
	if err != nil {
		log.Printf("geocode %s %q: %v", role, text, err)
		return s.defaultLocation(text), fmt.Sprintf("%s %q: geocoding failed, using default position", role, text)
	}
	return Location{
		Text:        text,
		Position:    g.Position,
		CountryCode: g.CountryCode,
		Status:      StatusResolved,
	}, ""
}

func (s *Service) resolveWaypoint(ctx context.Context, text string, anchor types.Coordinate) (Waypoint, string) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	candidates, err := s.places.Search(callCtx, text, anchor, s.cfg.OverfetchLimit)
	if err != nil {
		log.Printf("place search %q: %v", text, err)
		return Waypoint{Text: text, Places: []Place{}, Status: StatusUnresolved},
			fmt.Sprintf("waypoint %q: no places found", text)
	}
	return Waypoint{
		Text:   text,
		Places: selectPlaces(candidates, s.cfg.PlaceLimit),
		Status: StatusResolved,
	}, ""
}

// selectPlaces applies the candidate policy: drop places that are not
// currently open, collapse identical (title, address) pairs keeping the
// first seen, and cap at limit.
func selectPlaces(candidates []Candidate, limit int) []Place {
	seen := make(map[string]struct{}, len(candidates))
	places := make([]Place, 0, limit)
	for _, c := range candidates {
		if !c.Open {
			continue
		}
		key := c.Title + "|" + c.Address
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		places = append(places, Place{Title: c.Title, Address: c.Address, Position: c.Position})
		if len(places) == limit {
			break
		}
	}
	return places
}

func uniqueOrdered(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
