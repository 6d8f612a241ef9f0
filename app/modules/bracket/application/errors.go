package bracketservice

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrInvalidPolicy indicates an unknown invalid-prediction policy.
var ErrInvalidPolicy = errors.New("invalid prediction policy")

// RecordError names the input file whose content was rejected. The wrapped
// error keeps its domain sentinel (ErrMalformedTopology, ErrInvalidBracket,
// ErrMalformedRecord) for errors.Is.
type RecordError struct {
	File string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: %v", filepath.Base(e.File), e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

func recordError(file string, err error) error {
	return &RecordError{File: file, Err: err}
}
