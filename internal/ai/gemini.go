// README: Gemini-backed entity tagger.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiTagger implements EntityTagger using Google's Gemini models.
type GeminiTagger struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiTagger initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiTagger(ctx context.Context, apiKey string) (*GeminiTagger, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency; tagging is a cheap, mechanical task.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Near-zero temperature: tagging must be deterministic, not creative.
	model.SetTemperature(0.1)

	return &GeminiTagger{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (t *GeminiTagger) Close() {
	t.client.Close()
}

const tagPrompt = `Role: You are a named-entity tagger for trip planning queries.

Given the user's sentence, return a JSON array of entities. Each entity is:
  {"text": "<span exactly as written in the sentence>", "category": "<category>"}

Categories (use ONLY these):
- "place": named geographic locations — cities, states, regions, countries.
- "facility": named buildings or venues — airports, national parks, stadiums, stores.
- "date": calendar mentions — "tomorrow", "next Friday", "March 3rd".
- "time": clock-time mentions — "9 am", "noon", "10:30".

Rules:
1. "text" MUST be copied verbatim from the sentence, no rewording.
2. Skip generic descriptions like "a coffee shop" or "a gas station" — those are
   not named entities.
3. Return [] if nothing qualifies. Return ONLY the JSON array.`

// Tag analyzes a trip query and returns the typed entity spans found in it.
func (t *GeminiTagger) Tag(ctx context.Context, text string) ([]Entity, error) {
	fullPrompt := fmt.Sprintf("%s\n\nSentence: %s", tagPrompt, text)

	resp, err := t.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	// Extract text from the response parts.
	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (json mode should handle this,
	// safety first).
	cleanJSON := cleanJSONString(responseText.String())

	var entities []Entity
	if err := json.Unmarshal([]byte(cleanJSON), &entities); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	// Drop anything outside the known categories; the model occasionally
	// invents labels despite the prompt.
	valid := entities[:0]
	for _, e := range entities {
		if e.Text == "" {
			continue
		}
		switch e.Category {
		case CategoryPlace, CategoryFacility, CategoryDate, CategoryTime:
			valid = append(valid, e)
		}
	}
	return valid, nil
}

// cleanJSONString strips markdown code fences the model sometimes wraps
// around its output.
func cleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
