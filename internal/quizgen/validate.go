package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/lexiz/internal/bank"
)

// validateItems checks every item for the seven required fields and
// normalizes the answer letter, returning bank records in item order.
func validateItems(items []map[string]any) ([]bank.Record, error) {
	records := make([]bank.Record, 0, len(items))
	for i, item := range items {
		fields := make(map[string]string, len(bank.Columns))
		for _, col := range bank.Columns {
			// An explicit JSON null counts as missing.
			v, ok := item[col]
			if !ok || v == nil {
				return nil, &SchemaError{Position: i + 1, Field: col}
			}
			fields[col] = asString(v)
		}

		records = append(records, bank.Record{
			Question:    fields["Question"],
			ExampleA:    fields["Example_A"],
			ExampleB:    fields["Example_B"],
			ExampleC:    fields["Example_C"],
			ExampleD:    fields["Example_D"],
			Answer:      normalizeAnswer(fields["Answer"]),
			Explanation: fields["Explanation"],
		})
	}
	return records, nil
}

// normalizeAnswer reduces a raw answer value to one of a, b, c, d.
// "c) third" becomes "c". Anything without a usable leading letter
// defaults to "a"; a bad answer key is not grounds for throwing the whole
// batch away.
func normalizeAnswer(raw string) string {
	answer := strings.ToLower(strings.TrimSpace(raw))
	if isChoice(answer) {
		return answer
	}
	if len(answer) > 0 && isChoice(answer[:1]) {
		return answer[:1]
	}
	return "a"
}

func isChoice(s string) bool {
	switch s {
	case "a", "b", "c", "d":
		return true
	}
	return false
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
