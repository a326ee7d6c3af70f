package storage

import (
	"errors"
	"fmt"
)

// Error reports a failure of the underlying storage engine: the connection
// was unavailable or a query or write failed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap annotates err as a storage failure of op. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Err: err}
}

// IsError reports whether err is, or wraps, a storage failure.
func IsError(err error) bool {
	var se *Error
	return errors.As(err, &se)
}
