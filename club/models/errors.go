package models

import "errors"

var (
	// ErrNotFound is returned when the targeted record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrMatchCompleted is returned when completion is attempted on a
	// match that is already completed.
	ErrMatchCompleted = errors.New("match is already completed")

	// ErrInvalidTransition is returned when a status update names a
	// transition the match state machine does not allow.
	ErrInvalidTransition = errors.New("invalid match status transition")
)
