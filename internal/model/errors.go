package model

import "errors"

// Domain errors. These are expected, frequent field conditions (a double
// tap on a flaky connection, a checkout without a check-in) and handlers
// must answer them with a specific message, never a generic 500.
var (
	ErrAlreadySignedIn   = errors.New("already signed in to a project today")
	ErrNoActiveSignIn    = errors.New("no active sign-in found")
	ErrWorkerNotFound    = errors.New("worker not found")
	ErrInvalidTimeRange  = errors.New("invalid time range")
	ErrInvalidTransition = errors.New("invalid timesheet transition")

	// ErrConcurrentWrite is surfaced when an atomic upsert hits a
	// constraint violation it cannot resolve by merging.
	ErrConcurrentWrite = errors.New("concurrent write conflict")
)
