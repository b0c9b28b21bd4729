package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/lexiz/internal/bank"
)

func TestCanonicalLetter(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"a. more better", "A"},
		{"B", "B"},
		{"c) third option", "C"},
		{"d", "D"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CanonicalLetter(tt.raw); got != tt.want {
			t.Errorf("CanonicalLetter(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func testStore() *bank.MemStore {
	return &bank.MemStore{Records: []bank.Record{
		{Question: "q0", Answer: "a"},
		{Question: "q1", Answer: "b. second"},
		{Question: "q2", Answer: "C"},
		{Question: "q3", Answer: ""},
	}}
}

func TestGrade_AllCorrect(t *testing.T) {
	score, details, err := Grade(testStore(), []string{"A", "B", "C"}, []int{0, 1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 3 {
		t.Fatalf("score = %d, want 3", score)
	}
	for i, d := range details {
		if !d.Correct {
			t.Errorf("detail %d not correct: %+v", i, d)
		}
		if d.QuestionNum != i+1 {
			t.Errorf("detail %d question_num = %d, want %d", i, d.QuestionNum, i+1)
		}
	}
}

func TestGrade_LowercaseSubmissions(t *testing.T) {
	score, _, err := Grade(testStore(), []string{"a", "b"}, []int{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 2 {
		t.Fatalf("score = %d, want 2", score)
	}
}

func TestGrade_Mixed(t *testing.T) {
	score, details, err := Grade(testStore(), []string{"A", "D", "C"}, []int{0, 1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 2 {
		t.Fatalf("score = %d, want 2", score)
	}
	want := []bool{true, false, true}
	for i, d := range details {
		if d.Correct != want[i] {
			t.Errorf("detail %d correct = %v, want %v", i, d.Correct, want[i])
		}
	}
}

func TestGrade_DetailsMirrorInputOrder(t *testing.T) {
	_, details, err := Grade(testStore(), []string{"C", "A"}, []int{2, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details[0].QuestionID != 2 || details[1].QuestionID != 0 {
		t.Errorf("question ids not in input order: %+v", details)
	}
	if details[0].QuestionNum != 1 || details[1].QuestionNum != 2 {
		t.Errorf("question nums not 1-based sequential: %+v", details)
	}
}

func TestGrade_EmptyAnswerKeyNeverMatches(t *testing.T) {
	// Row 3 has an empty answer key; whatever the student submits, the
	// item grades incorrect.
	for _, submitted := range []string{"A", "B", "C", "D"} {
		score, details, err := Grade(testStore(), []string{submitted}, []int{3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != 0 || details[0].Correct {
			t.Errorf("submission %q against empty key graded correct", submitted)
		}
	}
}

func TestGrade_LengthMismatch(t *testing.T) {
	_, _, err := Grade(testStore(), []string{"A", "B"}, []int{0})
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	var mismatch *LengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected LengthMismatchError, got %T (%v)", err, err)
	}
}

func TestGrade_IDOutOfRange(t *testing.T) {
	if _, _, err := Grade(testStore(), []string{"A"}, []int{42}); err == nil {
		t.Fatal("expected error for out-of-range question id")
	}
}
