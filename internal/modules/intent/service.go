// README: Keyword-table intent classifier.
package intent

import (
	"regexp"
	"strings"
)

// triggerTable maps each intent to the phrases that signal it. Pure
// configuration data; loaded once into compiled form by NewClassifier.
type triggerEntry struct {
	intent   Intent
	triggers []string
}

// Table order fixes the order intents appear in Classify results.
var triggerTable = []triggerEntry{
	{BasicNavigation, []string{"navigate", "route", "direction", "way to reach", "go to", "plan a trip"}},
	{MultiStop, []string{"multi-stop", "stop at", "stops at", "via", "passing through", "multiple stops", "with stops"}},
	{TimeConstrained, []string{"arrive by", "reach by", "leave at", "depart at", "by", "before", "after", "sharp"}},
	{TrafficAware, []string{"avoid traffic", "traffic-free", "least traffic", "no congestion"}},
	{ScenicRouting, []string{"scenic", "beautiful", "picturesque", "scenery"}},
	{FuelEfficient, []string{"fuel-efficient", "save fuel", "economic route"}},
	{AvoidingTolls, []string{"avoid tolls", "no tolls", "without toll"}},
	{AvoidingHighways, []string{"avoid highways", "no highways", "without highways"}},
	{WeatherBased, []string{"weather", "rain", "snow", "storm", "avoid weather"}},
	{EVCharging, []string{"ev charging", "electric charging", "charging stations", "ev stops"}},
	{EmergencyRouting, []string{"hospital", "emergency", "urgent care", "immediately"}},
	{ParkingAvailability, []string{"parking", "park near", "where can i park"}},
	{Shortest, []string{"shortest", "quickest", "fastest"}},
	{RestStop, []string{"rest stop", "break every", "rest every", "stop every"}},
	{NightStay, []string{"night stay", "overnight", "stay in", "stay at"}},
}

type compiledEntry struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// Classifier matches a query against the trigger table. Safe for
// concurrent use; the compiled table is never mutated after construction.
type Classifier struct {
	entries []compiledEntry
}

// NewClassifier compiles the trigger table. Each trigger becomes a
// word-boundary pattern so "by" cannot fire inside "Albany".
func NewClassifier() *Classifier {
	entries := make([]compiledEntry, 0, len(triggerTable))
	for _, e := range triggerTable {
		ce := compiledEntry{intent: e.intent, patterns: make([]*regexp.Regexp, 0, len(e.triggers))}
		for _, trigger := range e.triggers {
			ce.patterns = append(ce.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(trigger)+`\b`))
		}
		entries = append(entries, ce)
	}
	return &Classifier{entries: entries}
}

// Classify returns every intent with at least one trigger phrase present in
// the query. The first trigger hit per intent short-circuits the rest of
// that intent's triggers. An unmatched query yields an empty slice; Classify
// never fails.
func (c *Classifier) Classify(text string) []Intent {
	lower := strings.ToLower(text)
	var detected []Intent
	for _, e := range c.entries {
		for _, p := range e.patterns {
			if p.MatchString(lower) {
				detected = append(detected, e.intent)
				break
			}
		}
	}
	return detected
}
