package repository

import "errors"

var (
	ErrInvalidValue    = errors.New("invalid wei value")
	ErrInvalidPriority = errors.New("negative priority")
	ErrInvalidDueDate  = errors.New("negative due date")
)
