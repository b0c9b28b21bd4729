package bank

import "fmt"

// SchemaError indicates the bank file header is missing a required column.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("bank file is missing required column %q", e.Column)
}

// EncodingError indicates the bank file could not be decoded as UTF-8 or
// EUC-KR.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("bank file is not valid UTF-8 or EUC-KR: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// InsufficientError indicates the bank holds fewer questions than a quiz
// needs.
type InsufficientError struct {
	Need int
	Have int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("not enough questions in the bank: need %d, have %d", e.Need, e.Have)
}
