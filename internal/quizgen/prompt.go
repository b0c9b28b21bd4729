package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an English grammar teacher writing practice questions for high school students.

Rules:
- Write four-option multiple choice questions that are easy to understand.
- Cover the full range of English grammar: tenses, relative pronouns, comparatives, passive voice, modal verbs, and so on.
- Exactly one option is correct. Distractors should reflect common student mistakes, not random words.
- The explanation should state the grammar rule and why the correct option follows it, in one or two sentences.
- The answer field must be a single lowercase letter: a, b, c, or d.`

// buildUserMessage asks for exactly n questions in the seven-field shape
// the bank stores.
func buildUserMessage(n int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d English grammar questions.\n\n", n)
	b.WriteString("Each question is a JSON object with exactly these fields:\n")
	b.WriteString(`{
  "Question": "the question text",
  "Example_A": "option A",
  "Example_B": "option B",
  "Example_C": "option C",
  "Example_D": "option D",
  "Answer": "the correct option: a, b, c or d",
  "Explanation": "why the answer is correct"
}
`)
	fmt.Fprintf(&b, "\nReturn a JSON object {\"questions\": [...]} holding the %d question objects and nothing else. No markdown, no commentary.", n)

	return b.String()
}
