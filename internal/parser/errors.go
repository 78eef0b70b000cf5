package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess marks failures to open or read the header.
	ErrFileAccess = errors.New("version header not readable")

	// ErrPatternMismatch marks headers that do not satisfy the contract.
	ErrPatternMismatch = errors.New("version header does not match contract")
)

// FileAccessError is returned when the header is missing, unreadable or
// permission-denied. No parsing is attempted in that case.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read version header %q: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

func (e *FileAccessError) Is(target error) bool { return target == ErrFileAccess }

// PatternMismatchError is returned when the header was read but the
// contract's macros are not all present, in order, with integer values.
type PatternMismatchError struct {
	Path     string
	Contract Contract

	// Missing is the first macro that could not be located after its
	// predecessors. Empty when all macros matched but a value was unusable.
	Missing string

	// Err carries the conversion error for out-of-range values.
	Err error
}

func (e *PatternMismatchError) Error() string {
	where := e.Path
	if where == "" {
		where = "<input>"
	}
	switch {
	case e.Missing != "":
		return fmt.Sprintf("%s does not satisfy contract %s: #define %s not found in expected order",
			where, e.Contract, e.Missing)
	case e.Err != nil:
		return fmt.Sprintf("%s does not satisfy contract %s: %v", where, e.Contract, e.Err)
	default:
		return fmt.Sprintf("%s does not satisfy contract %s", where, e.Contract)
	}
}

func (e *PatternMismatchError) Unwrap() error { return e.Err }

func (e *PatternMismatchError) Is(target error) bool { return target == ErrPatternMismatch }
