package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between the question generation pipeline
// and an LLM service. Implementations return JSON, optionally checked
// against a schema, and report token usage.
type Provider interface {
	// Generate sends one prompt and returns the structured response.
	// When the request carries a Schema, the provider asks the service
	// for schema-conforming output and validates what comes back.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model this provider is configured to call.
	ModelID() string
}

// Request is one generation call. Question batches are single-turn, so
// Messages usually holds exactly one user message.
type Request struct {
	// System sets the model's role, here an English grammar teacher.
	System string

	// Messages is the conversation. Single-turn for quiz batches.
	Messages []Message

	// Schema, when set, constrains the response shape via the provider's
	// structured output mechanism. Nil means free-form text.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the response must satisfy. Name doubles as the
// provider-side identifier (OpenAI schema name, cache key).
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is what a provider hands back.
type Response struct {
	// Content is the generated JSON. With a Schema on the request this
	// has already passed validation.
	Content json.RawMessage

	// Usage reports token consumption for the call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized across providers: "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
