package services

import "errors"

// ===== COMMON SERVICE ERRORS =====

var (
	// Not-found errors, one per entity the lifecycle touches
	ErrUserNotFound     = errors.New("user not found")
	ErrTestNotFound     = errors.New("test not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAttemptNotFound  = errors.New("test attempt not found")

	// Invalid-state errors for the start window and counting rules
	ErrTestInactive       = errors.New("test is not active")
	ErrTestNotYetOpen     = errors.New("test has not started yet")
	ErrTestWindowClosed   = errors.New("test has ended")
	ErrMaxAttemptsReached = errors.New("maximum attempts reached")

	// Terminal-state error for submit/finish on a finished attempt
	ErrAttemptAlreadyFinished = errors.New("test attempt already finished")

	// Authoring/user errors
	ErrInvalidTestWindow = errors.New("test end time precedes start time")
	ErrEmailTaken        = errors.New("email already registered")

	ErrValidationFailed = errors.New("validation failed")
)

// IsNotFound reports whether err maps to a missing entity (HTTP 404).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTestNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrAttemptNotFound)
}

// IsInvalidState reports whether err maps to a state-machine or counting
// violation (HTTP 409).
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrTestInactive) ||
		errors.Is(err, ErrTestNotYetOpen) ||
		errors.Is(err, ErrTestWindowClosed) ||
		errors.Is(err, ErrMaxAttemptsReached) ||
		errors.Is(err, ErrAttemptAlreadyFinished) ||
		errors.Is(err, ErrEmailTaken)
}

// IsValidation reports whether err is a caller input problem (HTTP 400).
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrInvalidTestWindow)
}
