// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidCredentials is returned when login input fails validation or
	// email/password do not match. The message is generic on purpose:
	// callers must not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidRegistration is returned when registration details fail validation.
	ErrInvalidRegistration = errors.New("invalid registration details")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
