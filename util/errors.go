package util

import "fmt"

// LibraryError reports a failed call into a multimedia library. Err carries
// the library's own diagnostic.
type LibraryError struct {
	Op  string
	Err error
}

func (e *LibraryError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *LibraryError) Unwrap() error {
	return e.Err
}

func Fail(op string, err error) error {
	return &LibraryError{Op: op, Err: err}
}

// RunAll calls every fn, even after a failure, and returns the first error.
func RunAll(fns ...func() error) error {
	var first error
	for _, fn := range fns {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
