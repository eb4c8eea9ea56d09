package workerpool

import (
	"errors"
	"fmt"
)

var (
	ErrPoolClosed = errors.New("worker pool is closed")
	ErrNilJob     = errors.New("job is nil")
)

type ErrorCode int

const (
	ErrorCodeInvalidSize ErrorCode = 1
	ErrorCodeNoWorkers   ErrorCode = 2
)

// ConstructionError is returned by New. Err holds the underlying spawn
// failures when no worker could be started.
type ConstructionError struct {
	Code    ErrorCode
	Message string
	Err     error
}

var (
	ErrInvalidSize = ConstructionError{Code: ErrorCodeInvalidSize, Message: "invalid pool size"}
	ErrNoWorkers   = ConstructionError{Code: ErrorCodeNoWorkers, Message: "no worker could be started"}
)

func (e ConstructionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e ConstructionError) Unwrap() error {
	return e.Err
}

// Is matches any ConstructionError with the same code.
func (e ConstructionError) Is(target error) bool {
	t, ok := target.(ConstructionError)
	return ok && t.Code == e.Code
}

func InvalidSizeError(size int) error {
	return ConstructionError{
		Code:    ErrorCodeInvalidSize,
		Message: fmt.Sprintf("pool size must be positive, got %d", size),
	}
}

func NoWorkersError(size int, err error) error {
	return ConstructionError{
		Code:    ErrorCodeNoWorkers,
		Message: fmt.Sprintf("none of %d workers could be started", size),
		Err:     err,
	}
}
