// Package ai wraps the external text-generation API that produces day-by-day
// itinerary suggestions. The rest of the planner treats it as a black box:
// destination, day count, and interests go in; structured day suggestions
// come out, or an error the caller surfaces as one generic soft failure.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production endpoint of the generation API. Tests
// point the client at an httptest server instead.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// Activity is one suggested thing to do within a day.
type Activity struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	EstimatedCost float64 `json:"estimatedCost"`
	TimeOfDay     string  `json:"timeOfDay"`
}

// DaySuggestion is the model's plan for one day of the trip. Day is 1-based;
// the model occasionally numbers days outside the trip's range, so consumers
// must treat Day as untrusted.
type DaySuggestion struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// Client calls the generation API over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

// NewClient builds a Client for the given endpoint and API key.
// Pass DefaultBaseURL outside of tests.
func NewClient(baseURL, apiKey string, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// request/response shapes of the generateContent API. Only the fields the
// planner reads are mapped.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateItinerary asks the model for a dayCount-day itinerary for the given
// destination and interests. The model is instructed to answer with a strict
// JSON array of day suggestions; anything else fails the call.
func (c *Client) GenerateItinerary(ctx context.Context, destination string, dayCount int, interests string) ([]DaySuggestion, error) {
	if interests == "" {
		interests = "General sightseeing, food, and culture"
	}
	prompt := fmt.Sprintf(
		"Create a %d-day travel itinerary for %s. Interests: %s.\n"+
			"Return a strictly valid JSON array where each element is an object with "+
			"\"day\" (integer, 1-based) and \"activities\" (array of objects with "+
			"\"title\", \"description\", \"location\", \"estimatedCost\" (number) and "+
			"\"timeOfDay\" (Morning, Afternoon or Evening)). Return nothing but the JSON.",
		dayCount, destination, interests,
	)

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, fmt.Errorf("ai.Client.GenerateItinerary: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ai.Client.GenerateItinerary: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	// Correlation id ties the request log line to the response log line.
	callID := uuid.NewString()
	c.log.Debug("itinerary generation requested",
		"call_id", callID, "destination", destination, "days", dayCount)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai.Client.GenerateItinerary: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ai.Client.GenerateItinerary: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("itinerary generation failed",
			"call_id", callID, "status", resp.StatusCode)
		return nil, fmt.Errorf("ai.Client.GenerateItinerary: unexpected status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, fmt.Errorf("ai.Client.GenerateItinerary: decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("ai.Client.GenerateItinerary: empty response")
	}

	var suggestions []DaySuggestion
	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), &suggestions); err != nil {
		return nil, fmt.Errorf("ai.Client.GenerateItinerary: malformed suggestion JSON: %w", err)
	}

	c.log.Debug("itinerary generation succeeded",
		"call_id", callID, "suggested_days", len(suggestions))
	return suggestions, nil
}
