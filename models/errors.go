package models

import "errors"

// Sentinel errors returned by services and repositories. Handlers translate
// these into HTTP status codes.
var (
	// ErrInvalidInput indicates missing or malformed required input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates a missing, malformed, or expired credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates an authenticated caller acting on a resource
	// they do not own.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates a missing resource or malformed identifier.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail indicates a registration with an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)
