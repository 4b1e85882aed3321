package record

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSelfDuplicate is returned when a freshly generated batch repeats an
	// identifier. It points at a degraded entropy source and is not retried.
	ErrSelfDuplicate = errors.New("record: duplicate identifiers generated")

	// ErrCollision is returned when a batch shares identifiers with the
	// record files already in the directory.
	ErrCollision = errors.New("record: identifier collision detected")

	// ErrDirectory is returned when the target directory is missing, is not
	// a directory, or cannot be listed.
	ErrDirectory = errors.New("record: invalid directory")

	// ErrRecordExists is returned when the record file for the day is
	// already present.
	ErrRecordExists = errors.New("record: record file already exists")
)

// DuplicateError lists the offending identifiers of a failed uniqueness check.
type DuplicateError struct {
	Kind   error
	Values []string
}

func (e *DuplicateError) Error() string {
	const preview = 3
	shown := e.Values
	if len(shown) > preview {
		shown = shown[:preview]
	}
	msg := fmt.Sprintf("%v: %d duplicate(s): %s", e.Kind, len(e.Values), strings.Join(shown, ", "))
	if len(e.Values) > preview {
		msg += ", ..."
	}
	return msg
}

func (e *DuplicateError) Unwrap() error {
	return e.Kind
}
