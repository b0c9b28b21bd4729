package quizgen

import (
	"encoding/json"
	"strings"
)

// wrapperKeys are the well-known object keys probed, in order, when the
// payload root is an object instead of an array.
var wrapperKeys = []string{"questions", "quiz", "problems"}

// excerptLimit bounds how much of a bad response an error carries.
const excerptLimit = 500

// parsePayload turns a raw LLM response into one map per question item.
// It strips an optional markdown code fence, decodes the JSON, and accepts
// either an array root or an object root holding the array under one of
// the wrapperKeys. Anything else is a ParseError; there is no guessing
// beyond the key list.
func parsePayload(raw json.RawMessage) ([]map[string]any, error) {
	text := stripFences(string(raw))

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, &ParseError{
			Reason:  "response is not valid JSON: " + err.Error(),
			Excerpt: excerpt(text),
		}
	}

	var items []any
	switch v := parsed.(type) {
	case []any:
		items = v
	case map[string]any:
		found := false
		for _, key := range wrapperKeys {
			if arr, ok := v[key].([]any); ok {
				items = arr
				found = true
				break
			}
		}
		if !found {
			return nil, &ParseError{
				Reason:  "response object has none of the expected keys (questions, quiz, problems)",
				Excerpt: excerpt(text),
			}
		}
	default:
		return nil, &ParseError{
			Reason:  "response is neither a JSON array nor an object",
			Excerpt: excerpt(text),
		}
	}

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &ParseError{
				Reason:  "question list contains a non-object item",
				Excerpt: excerpt(text),
			}
		}
		out = append(out, obj)
	}
	return out, nil
}

// stripFences removes a leading ```json or ``` marker and a trailing ```
// marker. Providers are asked for bare JSON but fenced output still shows
// up, markdown habits being what they are.
func stripFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

func excerpt(text string) string {
	if len(text) > excerptLimit {
		return text[:excerptLimit]
	}
	return text
}
