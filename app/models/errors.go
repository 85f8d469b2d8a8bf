package models

import "errors"

// Domain error taxonomy. Every ledger operation returns one of these (or a
// wrapped store error); handlers map them to HTTP status codes.
var (
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrForbidden means the caller's role or scope does not permit the
	// operation, regardless of whether it would otherwise succeed.
	ErrForbidden = errors.New("operation not permitted")

	// ErrDuplicateName means a user with the requested username exists.
	ErrDuplicateName = errors.New("username already taken")

	// ErrAlreadyEnrolled means the (student, course) pair already exists.
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")

	// ErrCourseFull means the course reached capacity at insertion time.
	ErrCourseFull = errors.New("course is full")

	// ErrDuplicateAssignment means the (teacher, course) pair already exists.
	ErrDuplicateAssignment = errors.New("teacher is already assigned to this course")

	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRange means a grade value outside [0, 100].
	ErrInvalidRange = errors.New("grade must be between 0 and 100")
)
