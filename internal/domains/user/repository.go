package user

import "context"

// Repository defines data access for User rows.
type Repository interface {
	// Create inserts a new user and returns it with the generated id.
	// Errors: ErrUsernameTaken on a username unique violation.
	Create(ctx context.Context, u *User) (*User, error)

	// GetByID returns ErrUserNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByUsername returns ErrUserNotFound if no row matches.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername checks username uniqueness without fetching the row.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// SessionRepository defines data access for Session rows. Sessions are owned
// by the auth service; user deletion cascades to them at the store level.
type SessionRepository interface {
	// Create inserts a session row.
	Create(ctx context.Context, s *Session) error

	// GetByToken returns ErrSessionNotFound if no row matches.
	GetByToken(ctx context.Context, token string) (*Session, error)

	// Delete removes the session for token. Deleting a missing token is not
	// an error; logout must be idempotent.
	Delete(ctx context.Context, token string) error
}
