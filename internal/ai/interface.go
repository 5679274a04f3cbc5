// README: Entity tagger contract consumed by the extraction pipeline.
package ai

import (
	"context"
)

// EntityTagger recognizes typed entity spans in a free-form trip query.
// This interface allows for swapping different NER providers (Gemini, a
// local model, a fixture in tests) without touching the pipeline.
type EntityTagger interface {
	// Tag returns the entity spans found in text. An empty slice is a
	// valid result for a query with no recognizable entities.
	Tag(ctx context.Context, text string) ([]Entity, error)
}
