package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/lexiz/internal/quiz"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)
}

func testDetails() []quiz.AnswerDetail {
	return []quiz.AnswerDetail{
		{QuestionNum: 1, QuestionID: 7, Correct: true},
		{QuestionNum: 2, QuestionID: 3, Correct: false},
	}
}

func TestAppendThenHistory_RoundTrip(t *testing.T) {
	l := New(t.TempDir())
	l.now = fixedClock

	first, err := l.Append("alice", 1, 2, testDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Date != "2026-08-30" || first.Time != "14:05:09" {
		t.Errorf("timestamp = %s %s, want 2026-08-30 14:05:09", first.Date, first.Time)
	}
	if first.ID == "" {
		t.Error("attempt has no id")
	}

	second, err := l.Append("alice", 2, 2, testDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	attempts := l.History("alice")
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].ID != first.ID {
		t.Error("prior attempt changed or reordered")
	}
	if attempts[1].ID != second.ID || attempts[1].Score != 2 {
		t.Errorf("last attempt does not match just-recorded one: %+v", attempts[1])
	}
	if len(attempts[0].Details) != 2 || attempts[0].Details[1].QuestionID != 3 {
		t.Errorf("details not preserved: %+v", attempts[0].Details)
	}
}

func TestHistory_MissingFile(t *testing.T) {
	l := New(t.TempDir())
	if attempts := l.History("nobody"); len(attempts) != 0 {
		t.Fatalf("expected empty history, got %d attempts", len(attempts))
	}
}

func TestHistory_CorruptFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bob.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := New(dir)
	if attempts := l.History("bob"); len(attempts) != 0 {
		t.Fatalf("expected empty history for corrupt file, got %d", len(attempts))
	}
}

func TestAppend_RecoversFromCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bob.json"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := New(dir)
	if _, err := l.Append("bob", 3, 5, testDetails()); err != nil {
		t.Fatalf("append after corruption failed: %v", err)
	}

	attempts := l.History("bob")
	if len(attempts) != 1 {
		t.Fatalf("expected exactly 1 attempt after recovery, got %d", len(attempts))
	}
	if attempts[0].Score != 3 || attempts[0].Total != 5 {
		t.Errorf("recovered attempt mismatch: %+v", attempts[0])
	}
}

func TestAppend_PersistedShape(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	l.now = fixedClock

	if _, err := l.Append("carol", 4, 5, testDetails()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "carol.json"))
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Username string `json:"username"`
		Attempts []struct {
			Date    string `json:"date"`
			Score   int    `json:"score"`
			Details []struct {
				QuestionNum int `json:"question_num"`
			} `json:"details"`
		} `json:"attempts"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("ledger file is not valid JSON: %v", err)
	}
	if doc.Username != "carol" {
		t.Errorf("username = %q, want carol", doc.Username)
	}
	if len(doc.Attempts) != 1 || doc.Attempts[0].Score != 4 {
		t.Errorf("attempts shape wrong: %+v", doc.Attempts)
	}
	if doc.Attempts[0].Details[0].QuestionNum != 1 {
		t.Errorf("details shape wrong: %+v", doc.Attempts[0].Details)
	}
}
