package user

import "errors"

var (
	// Not Found
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")

	// Conflict
	ErrUsernameTaken = errors.New("username already taken")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid username or password")
)
