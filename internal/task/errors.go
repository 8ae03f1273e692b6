package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyDescription   = errors.New("description is required")
	ErrDueDateNotInFuture = errors.New("due date must be in the future")
	ErrInvalidPriority    = errors.New("priority must be between 0 and 3")
	ErrInvalidStake       = errors.New("invalid stake value, allowed values: 100000, 50000, 10000, 1000")
)

// IsValidationError reports whether err was raised before any chain call.
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrEmptyDescription),
		errors.Is(err, ErrDueDateNotInFuture),
		errors.Is(err, ErrInvalidPriority),
		errors.Is(err, ErrInvalidStake):
		return true
	}
	return false
}
