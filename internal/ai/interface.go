package ai

import (
	"context"
)

// ItineraryProvider defines the contract for the generative model gateway.
// The model is a black box: one operation, schema-conformant output or a
// typed *PlannerError. This interface allows swapping providers and lets the
// repair loop be unit-tested with a scripted fake.
type ItineraryProvider interface {
	// GenerateItinerary sends the composed system and user prompts and returns
	// the day list exactly as the model produced it. Failures are always
	// *PlannerError: 429 rate-limited, 402 quota exhausted, 500 for transport
	// errors, a missing function-call payload, or a non-array itinerary field.
	GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) ([]GeneratedDay, error)
}
