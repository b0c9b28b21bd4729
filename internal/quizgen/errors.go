package quizgen

import "fmt"

// ParseError indicates the LLM response could not be decoded into a list
// of question items. Excerpt holds up to 500 bytes of the raw response
// for diagnostics.
type ParseError struct {
	Reason  string
	Excerpt string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse generated questions: %s\nresponse excerpt: %s", e.Reason, e.Excerpt)
}

// SchemaError indicates a generated item is missing a required field.
// Position is 1-based within the batch.
type SchemaError struct {
	Position int
	Field    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("generated question %d is missing field %q", e.Position, e.Field)
}
