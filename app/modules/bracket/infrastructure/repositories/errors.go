package bracketdb

import (
	"errors"
	"io/fs"
)

// ErrInputUnavailable indicates a tournament folder or file that is missing
// or cannot be read. It is distinct from content that fails to parse.
var ErrInputUnavailable = errors.New("input unavailable")

// InputError names the path that could not be read.
type InputError struct {
	Path string
	Err  error
}

// Error renders "<path>: <reason>", using only the OS reason of a path error
// so the path is not repeated.
func (e *InputError) Error() string {
	reason := e.Err
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		reason = pathErr.Err
	}
	return e.Path + ": " + reason.Error()
}

func (e *InputError) Unwrap() []error { return []error{ErrInputUnavailable, e.Err} }
