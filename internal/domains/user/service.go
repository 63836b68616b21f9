package user

import "context"

// Service defines the auth business logic: account registration plus the
// session lifecycle (issue on login, resolve per request, revoke on logout).
type Service interface {
	// Register creates an account with a salted memory-hard password hash.
	// Errors: ErrUsernameTaken.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login verifies credentials and issues an opaque session token
	// (32 bytes of cryptographically strong randomness, hex-encoded).
	// A missing user and a wrong password both return ErrInvalidCredentials
	// so usernames cannot be enumerated.
	Login(ctx context.Context, req LoginRequest) (*UserDTO, string, error)

	// Logout revokes the session for token. A missing or empty token is
	// ignored; logout always succeeds.
	Logout(ctx context.Context, token string) error

	// Resolve maps a session token back to a user identity.
	// Errors: ErrSessionNotFound for unknown or expired tokens.
	Resolve(ctx context.Context, token string) (*UserDTO, error)
}
