package user

import "time"

// User represents a registered account. PasswordHash is an Argon2id hash,
// never the plaintext password.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// Session is one active login. The token is the primary key and the only
// thing the browser holds; the row is the source of truth for
// "is this caller logged in".
type Session struct {
	Token     string    `db:"token"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
