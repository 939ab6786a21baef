package qb

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the database file is missing and autocreate is off.
	ErrNotFound = errors.New("litequery: database file does not exist")

	// ErrInvalidArgument is returned for structurally invalid input to a configuration call.
	ErrInvalidArgument = errors.New("litequery: invalid argument")

	// ErrInvalidState is returned when a terminal operation runs on an incomplete statement.
	ErrInvalidState = errors.New("litequery: invalid state")

	// ErrExecutionFailure is matched by every error the database engine returns.
	ErrExecutionFailure = errors.New("litequery: execution failure")
)

// ExecError carries the SQL that the engine rejected.
type ExecError struct {
	SQL string
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: %v (query: %s)", ErrExecutionFailure, e.Err, e.SQL)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

func (e *ExecError) Is(target error) bool {
	return target == ErrExecutionFailure
}

func invalidState(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}
