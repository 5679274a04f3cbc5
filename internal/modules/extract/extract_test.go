package extract

import (
	"reflect"
	"testing"
)

func TestStartEnd(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "plain from-to",
			query:     "Plan a trip from Dallas to Austin with a stop at a Walmart and a coffee shop.",
			wantStart: "dallas",
			wantEnd:   "austin",
		},
		{
			name:      "end bounded by comma",
			query:     "Plan a trip from Seattle to Portland, include scenic views.",
			wantStart: "seattle",
			wantEnd:   "portland",
		},
		{
			name:      "end bounded by and",
			query:     "Navigate from New York to Philadelphia and avoid highways.",
			wantStart: "new york",
			wantEnd:   "philadelphia",
		},
		{
			name:      "end bounded by end of string",
			query:     "drive from boston to providence",
			wantStart: "boston",
			wantEnd:   "providence",
		},
		{
			name:      "end bounded by but",
			query:     "go from tulsa to wichita but avoid tolls",
			wantStart: "tulsa",
			wantEnd:   "wichita",
		},
		{
			name:      "multi-word locations",
			query:     "Show me a scenic drive from San Francisco to Yosemite National Park.",
			wantStart: "san francisco",
			wantEnd:   "yosemite national park",
		},
		{
			name:      "no from-to pattern",
			query:     "Find me a coffee shop nearby",
			wantStart: CurrentLocation,
			wantEnd:   "",
		},
		{
			name:      "empty query",
			query:     "",
			wantStart: CurrentLocation,
			wantEnd:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := StartEnd(tt.query)
			if start != tt.wantStart {
				t.Errorf("start = %q, want %q", start, tt.wantStart)
			}
			if end != tt.wantEnd {
				t.Errorf("end = %q, want %q", end, tt.wantEnd)
			}
		})
	}
}

func TestWaypoints(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "stop at with and-list",
			query: "Plan a trip from Dallas to Austin with a stop at a Walmart and a coffee shop.",
			want:  []string{"a walmart", "a coffee shop"},
		},
		{
			name:  "night stay in",
			query: "Drive from San Francisco to Napa Valley with a night stay in Sonoma.",
			want:  []string{"sonoma"},
		},
		{
			name:  "night stay with and-list",
			query: "a night stay in Chicago and Denver.",
			want:  []string{"chicago", "denver"},
		},
		{
			name:  "via with comma list",
			query: "route from a to b via Waco, Temple",
			want:  []string{"waco", "temple"},
		},
		{
			name:  "quick stop matches both stop patterns",
			query: "with a quick stop at a nearby ATM",
			// "stop at <X>" and "quick stop at <X>" both fire; the assembler
			// collapses repeats.
			want: []string{"a nearby atm", "a nearby atm"},
		},
		{
			name:  "no waypoints",
			query: "Plan a trip from Dallas to Austin",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Waypoints(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Waypoints() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDistanceConstraints(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "rest stops every N miles",
			query: "rest stops every 300 miles",
			want:  []string{"300 miles"},
		},
		{
			name:  "km unit",
			query: "Plan a drive with rest stops every 200 km please",
			want:  []string{"200 km"},
		},
		{
			name:  "case insensitive",
			query: "REST STOPS EVERY 100 MILES",
			want:  []string{"100 miles"},
		},
		{
			name:  "no constraint",
			query: "Plan a trip from Dallas to Austin",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceConstraints(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DistanceConstraints() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "minutes",
			query: "stop for 30 minutes at a diner",
			want:  []string{"30 minutes"},
		},
		{
			name:  "hours abbreviated",
			query: "leave in 2 hrs",
			want:  []string{"2 hrs"},
		},
		{
			name:  "multiple durations",
			query: "break of 15 min then drive 3 hours",
			want:  []string{"15 min", "3 hours"},
		},
		{
			name:  "none",
			query: "Plan a trip from Dallas to Austin",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Durations(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Durations() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		waypoints []string
		locations []string
		want      []string
	}{
		{
			name:      "drops tagger-reported waypoint",
			waypoints: []string{"a walmart", "sonoma", "a coffee shop"},
			locations: []string{"sonoma"},
			want:      []string{"a walmart", "a coffee shop"},
		},
		{
			name:      "no overlap keeps order",
			waypoints: []string{"a walmart", "a coffee shop"},
			locations: []string{"dallas", "austin"},
			want:      []string{"a walmart", "a coffee shop"},
		},
		{
			name:      "empty waypoints",
			waypoints: nil,
			locations: []string{"dallas"},
			want:      []string{},
		},
		{
			name:      "empty locations",
			waypoints: []string{"a walmart"},
			locations: nil,
			want:      []string{"a walmart"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.waypoints, tt.locations)
			if len(got) != len(tt.want) {
				t.Fatalf("Normalize() = %#v, want %#v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Normalize()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalize_Disjoint(t *testing.T) {
	waypoints := []string{"a walmart", "sonoma", "a walmart", "napa"}
	locations := []string{"sonoma", "napa", "dallas"}

	got := Normalize(waypoints, locations)

	seen := make(map[string]struct{}, len(locations))
	for _, loc := range locations {
		seen[loc] = struct{}{}
	}
	for _, wp := range got {
		if _, overlap := seen[wp]; overlap {
			t.Errorf("waypoint %q still present in location list", wp)
		}
	}
}
