package bank

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/korean"
)

const validCSV = `Question,Example_A,Example_B,Example_C,Example_D,Answer,Explanation
"She ___ to school every day.",go,goes,going,gone,b,"Third person singular takes -es."
"I have lived here ___ 2010.",for,during,since,from,c,"Since marks a starting point in time."
`

func writeBank(t *testing.T, content string) *CSVStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quiz.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return NewCSVStore(path)
}

func TestCSVStore_Load(t *testing.T) {
	s := writeBank(t, validCSV)

	records, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Question != "She ___ to school every day." {
		t.Errorf("unexpected question: %q", records[0].Question)
	}
	if records[0].ExampleB != "goes" {
		t.Errorf("unexpected option B: %q", records[0].ExampleB)
	}
	if records[1].Answer != "c" {
		t.Errorf("unexpected answer: %q", records[1].Answer)
	}
}

func TestCSVStore_Load_ColumnOrderIrrelevant(t *testing.T) {
	s := writeBank(t, `Answer,Question,Example_A,Example_B,Example_C,Example_D,Explanation
a,What?,one,two,three,four,because
`)
	records, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].Question != "What?" || records[0].Answer != "a" {
		t.Errorf("columns mapped wrong: %+v", records[0])
	}
}

func TestCSVStore_Load_MissingColumn(t *testing.T) {
	s := writeBank(t, `Question,Example_A,Example_B,Example_C,Example_D,Answer
q,a,b,c,d,a
`)
	_, err := s.Load()
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T (%v)", err, err)
	}
	if schemaErr.Column != "Explanation" {
		t.Errorf("column = %q, want %q", schemaErr.Column, "Explanation")
	}
}

func TestCSVStore_Load_EUCKRFallback(t *testing.T) {
	// A bank exported from a Korean spreadsheet arrives in EUC-KR.
	utf8CSV := strings.ReplaceAll(validCSV, "Third person singular takes -es.", "3인칭 단수는 -es를 붙입니다.")
	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(utf8CSV))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "quiz.csv")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := NewCSVStore(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].Explanation != "3인칭 단수는 -es를 붙입니다." {
		t.Errorf("explanation not decoded: %q", records[0].Explanation)
	}
}

func TestCSVStore_Load_UndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.csv")
	raw := []byte{0xff, 0xfe, 0x80, 0x81, 0xff, 0xff}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewCSVStore(path).Load()
	if err == nil {
		t.Fatal("expected error for undecodable file")
	}
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %T (%v)", err, err)
	}
}

func TestCSVStore_Load_MissingFile(t *testing.T) {
	s := NewCSVStore(filepath.Join(t.TempDir(), "nope.csv"))
	if _, err := s.Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCSVStore_Append_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz", "quiz.csv")
	s := NewCSVStore(path)

	rec := Record{Question: "Pick one.", ExampleA: "x", ExampleB: "y", ExampleC: "z", ExampleD: "w", Answer: "d", Explanation: "why"}
	if err := s.Append([]Record{rec}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), strings.Join(Columns, ",")) {
		t.Errorf("file does not start with canonical header:\n%s", raw)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0] != rec {
		t.Errorf("round trip mismatch: %+v", records)
	}
}

func TestCSVStore_Append_AfterExisting(t *testing.T) {
	s := writeBank(t, validCSV)

	rec := Record{Question: "New one?", ExampleA: "a", ExampleB: "b", ExampleC: "c", ExampleD: "d", Answer: "a", Explanation: "e"}
	if err := s.Append([]Record{rec}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[2] != rec {
		t.Errorf("appended record mismatch: %+v", records[2])
	}

	// The header must appear exactly once.
	raw, _ := os.ReadFile(s.Path())
	if strings.Count(string(raw), "Question,Example_A") != 1 {
		t.Errorf("header written more than once:\n%s", raw)
	}
}
