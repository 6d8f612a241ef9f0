package main

import (
	"errors"

	bracketservice "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/application"
	bracketdomain "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/domain"
	bracketdb "github.com/Black-And-White-Club/bracketeering/app/modules/bracket/infrastructure/repositories"
)

// Exit statuses.
const (
	exitUsage      = 1
	exitInput      = 2
	exitValidation = 3
)

// usageError is a bad invocation: missing folder, unknown flag, bad config value.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func exitCode(err error) int {
	var usage *usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usage):
		return exitUsage
	case errors.Is(err, bracketdomain.ErrInvalidBracket):
		return exitValidation
	default:
		return exitInput
	}
}

// errorLine renders err as "error: <file>: <reason>" whenever a file is known,
// dropping the operation prefixes added on the way up.
func errorLine(err error) string {
	var (
		recErr   *bracketservice.RecordError
		inputErr *bracketdb.InputError
		usage    *usageError
	)
	switch {
	case errors.As(err, &recErr):
		return "error: " + recErr.Error()
	case errors.As(err, &inputErr):
		return "error: " + inputErr.Error()
	case errors.As(err, &usage):
		return "error: " + usage.Error()
	default:
		return "error: " + err.Error()
	}
}
