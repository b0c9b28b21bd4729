package quizgen

import "github.com/abhisek/lexiz/internal/llm"

// BatchSchema defines the JSON shape for a generated question batch. The
// root is an object rather than a bare array because some providers only
// support object roots for structured output; parsePayload unwraps it.
var BatchSchema = &llm.Schema{
	Name:        "quiz-batch",
	Description: "A batch of four-option English grammar questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"Question": map[string]any{
							"type":        "string",
							"description": "The question text shown to the student",
						},
						"Example_A": map[string]any{
							"type":        "string",
							"description": "Option A",
						},
						"Example_B": map[string]any{
							"type":        "string",
							"description": "Option B",
						},
						"Example_C": map[string]any{
							"type":        "string",
							"description": "Option C",
						},
						"Example_D": map[string]any{
							"type":        "string",
							"description": "Option D",
						},
						"Answer": map[string]any{
							"type":        "string",
							"description": "The correct option as a single lowercase letter: a, b, c or d",
						},
						"Explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences naming the grammar rule behind the answer",
						},
					},
					"required": []any{
						"Question", "Example_A", "Example_B", "Example_C",
						"Example_D", "Answer", "Explanation",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
