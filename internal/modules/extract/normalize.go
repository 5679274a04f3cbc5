// README: Waypoint deduplication against tagger-reported locations.
package extract

// Normalize drops every waypoint that already appears in the generic
// location list, so the same physical place is never reported through both
// extraction paths. Comparison is exact match on the extracted strings;
// waypoint order is preserved.
func Normalize(waypoints, locations []string) []string {
	known := make(map[string]struct{}, len(locations))
	for _, loc := range locations {
		known[loc] = struct{}{}
	}
	unique := make([]string, 0, len(waypoints))
	for _, wp := range waypoints {
		if _, dup := known[wp]; dup {
			continue
		}
		unique = append(unique, wp)
	}
	return unique
}
