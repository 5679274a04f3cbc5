// README: Regex span extractors for start/end, waypoints and constraints.
package extract

import (
	"regexp"
	"strings"
)

// CurrentLocation is the sentinel start when a query carries no
// "from ... to ..." pattern. Downstream code must treat it as a request
// for the caller's own position, never as a geocodable name.
const CurrentLocation = "current location"

var (
	startPattern = regexp.MustCompile(`from ([\w\s]+?) to`)
	endPattern   = regexp.MustCompile(`to ([\w\s]+?)(,|\.| with| but| and|$)`)

	// Ordered: a query may produce waypoints from several pattern types,
	// concatenated in this order, then match order.
	waypointPatterns = []*regexp.Regexp{
		regexp.MustCompile(`stop at ([\w\s]+)`),
		regexp.MustCompile(`night stay (?:at|in) ([\w\s,]+)`),
		regexp.MustCompile(`via ([\w\s,]+)`),
		regexp.MustCompile(`quick stop at ([\w\s]+)`),
	}
	waypointSplit = regexp.MustCompile(`,|and`)

	distancePattern = regexp.MustCompile(`rest stops every (\d+ ?(?:miles|mile|km|kilometers))`)
	durationPattern = regexp.MustCompile(`(\d+\s?(?:minutes|minute|mins|min|hours|hour|hrs|hr))`)
)

// StartEnd pulls the declared origin and destination out of a
// "from <X> to <Y>" clause. Matching is case-insensitive via lower-casing;
// returned spans are lower-cased and trimmed. A query without the pattern
// yields the CurrentLocation sentinel and an empty end — that absence is
// what lets the assembler skip end resolution entirely.
func StartEnd(text string) (start, end string) {
	lower := strings.ToLower(text)
	start = CurrentLocation
	if m := startPattern.FindStringSubmatch(lower); m != nil {
		start = strings.TrimSpace(m[1])
	}
	if m := endPattern.FindStringSubmatch(lower); m != nil {
		end = strings.TrimSpace(m[1])
	}
	return start, end
}

// Waypoints extracts intermediate stop descriptions ("stop at X",
// "night stay at/in X", "via X", "quick stop at X"). Each capture is a
// comma/"and"-delimited list, split into individual trimmed entries.
func Waypoints(text string) []string {
	lower := strings.ToLower(text)
	var waypoints []string
	for _, p := range waypointPatterns {
		for _, m := range p.FindAllStringSubmatch(lower, -1) {
			for _, part := range waypointSplit.Split(m[1], -1) {
				if part = strings.TrimSpace(part); part != "" {
					waypoints = append(waypoints, part)
				}
			}
		}
	}
	return waypoints
}

// DistanceConstraints returns every "rest stops every <N> <unit>" mention
// verbatim (number plus unit).
func DistanceConstraints(text string) []string {
	var constraints []string
	for _, m := range distancePattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		constraints = append(constraints, m[1])
	}
	return constraints
}

// Durations returns every "<N> minutes/hours" style mention.
func Durations(text string) []string {
	var durations []string
	for _, m := range durationPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		durations = append(durations, m[1])
	}
	return durations
}
