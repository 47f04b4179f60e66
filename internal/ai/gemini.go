package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	geminiModel       = "gemini-2.0-flash"
	submitItineraryFn = "submit_itinerary"
)

// GeminiPlanner implements ItineraryProvider using Google's Gemini models
// with function calling so the output is schema-enforced.
type GeminiPlanner struct {
	client *genai.Client
}

// NewGeminiPlanner initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiPlanner(ctx context.Context, apiKey string) (*GeminiPlanner, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiPlanner{client: client}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiPlanner) Close() {
	p.client.Close()
}

// GenerateItinerary calls the model with the submit_itinerary function forced,
// so a well-formed response always carries a structured itinerary payload.
func (p *GeminiPlanner) GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) ([]GeneratedDay, error) {
	model := p.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.4)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.Tools = []*genai.Tool{{FunctionDeclarations: []*genai.FunctionDeclaration{itineraryFunction()}}}
	model.ToolConfig = &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{
			Mode:                 genai.FunctionCallingAny,
			AllowedFunctionNames: []string{submitItineraryFn},
		},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return nil, classifyGenerateError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, NewPlannerError(http.StatusInternalServerError, "the itinerary service returned an empty response")
	}

	var call *genai.FunctionCall
	for _, part := range resp.Candidates[0].Content.Parts {
		if fc, ok := part.(genai.FunctionCall); ok && fc.Name == submitItineraryFn {
			call = &fc
			break
		}
	}
	if call == nil || len(call.Args) == 0 {
		return nil, NewPlannerError(http.StatusInternalServerError, "the itinerary service returned no structured itinerary")
	}

	rawDays, ok := call.Args["itinerary"].([]any)
	if !ok {
		return nil, NewPlannerError(http.StatusInternalServerError, "the itinerary service returned an unexpected format")
	}

	encoded, err := json.Marshal(rawDays)
	if err != nil {
		return nil, NewPlannerError(http.StatusInternalServerError, "the itinerary service returned an unreadable payload")
	}
	var days []GeneratedDay
	if err := json.Unmarshal(encoded, &days); err != nil {
		log.Printf("gemini: itinerary payload did not match schema: %v", err)
		return nil, NewPlannerError(http.StatusInternalServerError, "the itinerary service returned an unreadable payload")
	}
	if len(days) == 0 {
		return nil, NewPlannerError(http.StatusInternalServerError, "the itinerary service returned an empty itinerary")
	}

	return days, nil
}

// classifyGenerateError buckets transport failures into the planner taxonomy:
// rate limiting (retryable by the caller), quota exhaustion (operator action
// needed), and everything else as a generic service error. Gemini words its
// transient per-minute throttle as "Resource has been exhausted (e.g. check
// quota)", so a 429 only means exhausted capacity when the message points at
// billing or the pricing plan.
func classifyGenerateError(err error) *PlannerError {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		lower := strings.ToLower(gerr.Message + " " + gerr.Body)
		billing := strings.Contains(lower, "billing") || strings.Contains(lower, "plan")
		switch {
		case gerr.Code == http.StatusTooManyRequests && billing:
			return NewPlannerError(http.StatusPaymentRequired, "the itinerary service is out of credits, please try again later")
		case gerr.Code == http.StatusTooManyRequests:
			return NewPlannerError(http.StatusTooManyRequests, "the itinerary service is busy, please retry in a moment")
		case gerr.Code == http.StatusForbidden && (strings.Contains(lower, "quota") || billing):
			return NewPlannerError(http.StatusPaymentRequired, "the itinerary service is out of credits, please try again later")
		}
		log.Printf("gemini: generate content failed (%d): %s", gerr.Code, gerr.Body)
		return NewPlannerError(http.StatusInternalServerError, "the itinerary service failed, please try again")
	}
	log.Printf("gemini: generate content failed: %v", err)
	return NewPlannerError(http.StatusInternalServerError, "the itinerary service failed, please try again")
}

// itineraryFunction declares the strict output schema the model must fill.
// Every stop field except travelTime is required; days carry their stops
// inline so the whole itinerary arrives in a single function call.
func itineraryFunction() *genai.FunctionDeclaration {
	stopSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":           {Type: genai.TypeString, Description: "Unique stop id in the form d{day}s{index}, unique across the whole itinerary"},
			"time":         {Type: genai.TypeString, Description: "Suggested time of day, e.g. 9:00 AM"},
			"name":         {Type: genai.TypeString, Description: "Real place name"},
			"description":  {Type: genai.TypeString, Description: "One to two sentences about the stop"},
			"openingHours": {Type: genai.TypeString},
			"cost":         {Type: genai.TypeString},
			"travelTime":   {Type: genai.TypeString, Description: "Travel time from the previous stop"},
			"lat":          {Type: genai.TypeNumber},
			"lng":          {Type: genai.TypeNumber},
			"tags":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"id", "time", "name", "description", "openingHours", "cost", "lat", "lng", "tags"},
	}

	daySchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day":             {Type: genai.TypeInteger, Description: "1-based day number"},
			"title":           {Type: genai.TypeString},
			"subtitle":        {Type: genai.TypeString},
			"totalTravelTime": {Type: genai.TypeString},
			"estimatedCost":   {Type: genai.TypeString},
			"stops":           {Type: genai.TypeArray, Items: stopSchema},
		},
		Required: []string{"day", "title", "subtitle", "totalTravelTime", "estimatedCost", "stops"},
	}

	return &genai.FunctionDeclaration{
		Name:        submitItineraryFn,
		Description: "Submit the complete day-by-day travel itinerary.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"itinerary": {Type: genai.TypeArray, Items: daySchema},
			},
			Required: []string{"itinerary"},
		},
	}
}
