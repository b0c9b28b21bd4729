// Package bank manages the question bank: a delimited text file holding
// every multiple-choice item the quiz can draw from. The file is re-read
// on every operation; callers get read-after-write consistency within a
// single process only.
package bank

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
)

// Columns is the canonical header of the bank file. Append always writes
// fields in this order.
var Columns = []string{
	"Question",
	"Example_A",
	"Example_B",
	"Example_C",
	"Example_D",
	"Answer",
	"Explanation",
}

// Record is one question row. The row's position in the bank is its
// identifier for the lifetime of a quiz session.
type Record struct {
	Question    string
	ExampleA    string
	ExampleB    string
	ExampleC    string
	ExampleD    string
	Answer      string
	Explanation string
}

// Option returns the text of the option for a canonical letter (A-D).
func (r Record) Option(letter string) string {
	switch letter {
	case "A":
		return r.ExampleA
	case "B":
		return r.ExampleB
	case "C":
		return r.ExampleC
	case "D":
		return r.ExampleD
	}
	return ""
}

// Store is the persistence contract for the question bank. It is injected
// into the sampler, grader and generation pipeline so tests can substitute
// an in-memory implementation.
type Store interface {
	// Load returns every record in file order.
	Load() ([]Record, error)

	// Append writes records after the existing ones, creating the file
	// with a header row when it does not exist yet.
	Append(records []Record) error
}

// CSVStore is the file-backed Store. UTF-8 is the primary encoding with an
// EUC-KR fallback for files produced by legacy spreadsheet exports.
type CSVStore struct {
	path string
}

// NewCSVStore creates a CSVStore for the bank file at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the bank file location.
func (s *CSVStore) Path() string {
	return s.path
}

// Load reads and validates the whole bank file.
func (s *CSVStore) Load() ([]Record, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}

	text, err := decode(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(text))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse bank file %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Column: Columns[0]}
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{
			Question:    row[index["Question"]],
			ExampleA:    row[index["Example_A"]],
			ExampleB:    row[index["Example_B"]],
			ExampleC:    row[index["Example_C"]],
			ExampleD:    row[index["Example_D"]],
			Answer:      row[index["Answer"]],
			Explanation: row[index["Explanation"]],
		})
	}
	return records, nil
}

// Append writes records to the end of the bank file in canonical column
// order. The file and its parent directory are created on first use.
func (s *CSVStore) Append(records []Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bank directory: %w", err)
		}
	}

	info, err := os.Stat(s.path)
	fresh := os.IsNotExist(err)
	if err != nil && !fresh {
		return fmt.Errorf("stat bank file: %w", err)
	}
	if !fresh && info.Size() == 0 {
		fresh = true
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open bank file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(Columns); err != nil {
			return fmt.Errorf("write bank header: %w", err)
		}
	}
	for _, r := range records {
		row := []string{r.Question, r.ExampleA, r.ExampleB, r.ExampleC, r.ExampleD, r.Answer, r.Explanation}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write bank row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush bank file: %w", err)
	}
	return nil
}

// decode returns raw as UTF-8 text, falling back to an EUC-KR decode when
// the bytes are not valid UTF-8.
func decode(raw []byte) ([]byte, error) {
	if utf8.Valid(raw) {
		return raw, nil
	}
	text, err := korean.EUCKR.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	// The decoder substitutes U+FFFD for unmappable bytes instead of
	// failing. A replacement rune in the output cannot come from a
	// well-formed EUC-KR file, so its presence means the file is in
	// neither supported encoding.
	if bytes.ContainsRune(text, utf8.RuneError) {
		return nil, &EncodingError{Err: fmt.Errorf("byte sequence is neither UTF-8 nor EUC-KR")}
	}
	return text, nil
}

// headerIndex maps each required column name to its position in the header
// row. A missing column is a SchemaError.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, &SchemaError{Column: col}
		}
	}
	return index, nil
}
