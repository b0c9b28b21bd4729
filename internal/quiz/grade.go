// Package quiz grades submitted answers against the question bank's answer
// keys.
package quiz

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/abhisek/lexiz/internal/bank"
)

// AnswerDetail reports the outcome for one question of an attempt.
type AnswerDetail struct {
	// QuestionNum is the 1-based position of the question within the quiz.
	QuestionNum int `json:"question_num"`
	// QuestionID is the question's index in the bank.
	QuestionID int `json:"question_id"`
	Correct    bool `json:"correct"`
}

// LengthMismatchError indicates the submitted answers and question ids do
// not pair up.
type LengthMismatchError struct {
	Answers int
	IDs     int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("got %d answers for %d questions", e.Answers, e.IDs)
}

// CanonicalLetter reduces a raw answer key to its canonical single letter:
// the first rune, upper-cased. Free-form keys like "a. more better" become
// "A". An empty key stays empty and can never match a submitted letter, so
// such rows always grade incorrect; that is the documented policy for bad
// bank data, not a condition worth failing the whole quiz over.
func CanonicalLetter(raw string) string {
	for _, r := range raw {
		return string(unicode.ToUpper(r))
	}
	return raw
}

// Grade compares submitted letters against the bank's answer keys.
// answers[i] is the submission for the question at bank index ids[i]; both
// slices must have the same length. The score is the number of matches and
// details mirrors the input order.
func Grade(s bank.Store, answers []string, ids []int) (int, []AnswerDetail, error) {
	if len(answers) != len(ids) {
		return 0, nil, &LengthMismatchError{Answers: len(answers), IDs: len(ids)}
	}

	records, err := s.Load()
	if err != nil {
		return 0, nil, err
	}

	score := 0
	details := make([]AnswerDetail, 0, len(answers))
	for i, answer := range answers {
		id := ids[i]
		if id < 0 || id >= len(records) {
			return 0, nil, fmt.Errorf("question id %d out of range (bank has %d questions)", id, len(records))
		}

		correct := strings.ToUpper(answer) == CanonicalLetter(records[id].Answer)
		if correct {
			score++
		}
		details = append(details, AnswerDetail{
			QuestionNum: i + 1,
			QuestionID:  id,
			Correct:     correct,
		})
	}
	return score, details, nil
}
