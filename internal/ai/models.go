// README: Entity tagger output model.
package ai

// EntityCategory labels the kind of span the tagger recognized.
type EntityCategory string

const (
	// CategoryPlace covers named geographic locations (cities, regions, countries).
	CategoryPlace EntityCategory = "place"
	// CategoryFacility covers named buildings and venues (airports, parks, stores).
	CategoryFacility EntityCategory = "facility"
	// CategoryDate covers calendar mentions ("next Friday", "March 3rd").
	CategoryDate EntityCategory = "date"
	// CategoryTime covers clock-time mentions ("9 am", "noon").
	CategoryTime EntityCategory = "time"
)

// Entity is one typed text span recognized in a query.
type Entity struct {
	// Text is the span exactly as it appears in the input.
	Text string `json:"text"`

	// Category is one of the EntityCategory constants. Spans the model
	// cannot classify into those four categories are not returned.
	Category EntityCategory `json:"category"`
}

// IsLocation reports whether the entity names a physical place.
func (e Entity) IsLocation() bool {
	return e.Category == CategoryPlace || e.Category == CategoryFacility
}

// IsCalendar reports whether the entity is a date or time mention.
func (e Entity) IsCalendar() bool {
	return e.Category == CategoryDate || e.Category == CategoryTime
}
