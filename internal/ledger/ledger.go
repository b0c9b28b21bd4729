// Package ledger keeps the per-user history of completed quiz attempts.
// Each user owns one JSON file under the results directory; the file is
// read fully and rewritten fully on every append. There is no locking:
// concurrent appends for the same user race and the last writer wins,
// which is an accepted limitation of the single-operator deployment.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexiz/internal/quiz"
)

// Attempt is one completed quiz, immutable once written.
type Attempt struct {
	ID      string              `json:"id"`
	Date    string              `json:"date"`
	Time    string              `json:"time"`
	Score   int                 `json:"score"`
	Total   int                 `json:"total"`
	Details []quiz.AnswerDetail `json:"details"`
}

// userFile is the persisted per-user document.
type userFile struct {
	Username string    `json:"username"`
	Attempts []Attempt `json:"attempts"`
}

// Ledger reads and appends per-user attempt files.
type Ledger struct {
	dir string
	now func() time.Time
}

// New creates a Ledger rooted at dir. The directory is created lazily on
// the first append.
func New(dir string) *Ledger {
	return &Ledger{dir: dir, now: time.Now}
}

// Append records one completed attempt for username, stamped with the
// current date and time. An existing file that cannot be parsed is
// discarded and a fresh ledger started in its place: losing a corrupt
// history is preferred over refusing to record the new attempt.
func (l *Ledger) Append(username string, score, total int, details []quiz.AnswerDetail) (Attempt, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return Attempt{}, fmt.Errorf("create results directory: %w", err)
	}

	doc := l.loadFile(username)

	now := l.now()
	attempt := Attempt{
		ID:      uuid.NewString(),
		Date:    now.Format("2006-01-02"),
		Time:    now.Format("15:04:05"),
		Score:   score,
		Total:   total,
		Details: details,
	}
	doc.Attempts = append(doc.Attempts, attempt)

	if err := l.writeFile(doc); err != nil {
		return Attempt{}, err
	}
	return attempt, nil
}

// History returns username's attempts in append order. A missing or
// unparsable file yields an empty history, never an error.
func (l *Ledger) History(username string) []Attempt {
	return l.loadFile(username).Attempts
}

func (l *Ledger) path(username string) string {
	return filepath.Join(l.dir, username+".json")
}

func (l *Ledger) loadFile(username string) userFile {
	fresh := userFile{Username: username}

	raw, err := os.ReadFile(l.path(username))
	if err != nil {
		return fresh
	}

	var doc userFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fresh
	}
	doc.Username = username
	return doc
}

func (l *Ledger) writeFile(doc userFile) error {
	f, err := os.Create(l.path(doc.Username))
	if err != nil {
		return fmt.Errorf("write ledger for %s: %w", doc.Username, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode ledger for %s: %w", doc.Username, err)
	}
	return nil
}
