// Package quizgen produces new question bank entries with an LLM and
// merges them into the bank. A generation call is all-or-nothing: records
// reach the bank only after every item in the batch has been validated.
package quizgen

import (
	"context"
	"fmt"

	"github.com/abhisek/lexiz/internal/bank"
	"github.com/abhisek/lexiz/internal/llm"
)

// Config controls generation batches.
type Config struct {
	// Count is the number of questions requested when the caller does not
	// say otherwise.
	Count int

	// MaxTokens bounds the response size. A batch of 20 items fits
	// comfortably.
	MaxTokens int

	// Temperature controls variety across batches.
	Temperature float64
}

// DefaultConfig returns the standard generation configuration.
func DefaultConfig() Config {
	return Config{
		Count:       10,
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}

// Generator builds prompts, calls the LLM provider, and validates the
// response into bank records.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate requests n new questions and returns them fully validated and
// normalized, ready to merge. The call is a single attempt; any provider
// or validation failure surfaces to the caller without retrying.
func (g *Generator) Generate(ctx context.Context, n int) ([]bank.Record, error) {
	if n <= 0 {
		n = g.config.Count
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(n)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	items, err := parsePayload(resp.Content)
	if err != nil {
		return nil, err
	}

	return validateItems(items)
}

// Merge appends validated records to the bank in canonical column order
// and returns the number of records written.
func Merge(s bank.Store, records []bank.Record) (int, error) {
	if err := s.Append(records); err != nil {
		return 0, fmt.Errorf("merge generated questions: %w", err)
	}
	return len(records), nil
}
