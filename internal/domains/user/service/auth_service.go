package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"library-catalog/internal/domains/user"
	"library-catalog/pkg/password"
)

// authService implements user.Service.
type authService struct {
	users    user.Repository
	sessions user.SessionRepository

	// sessionTTL bounds how long a session stays resolvable. Zero disables
	// the check.
	sessionTTL time.Duration

	now func() time.Time
}

func NewAuthService(users user.Repository, sessions user.SessionRepository, sessionTTL time.Duration) user.Service {
	return &authService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	// Handler validates already; double-check so the service is safe on its own.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return nil, user.ErrUsernameTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &user.User{
		Username:     req.Username,
		PasswordHash: hash,
	})
	if err != nil {
		// The unique index still guards the race between ExistsByUsername
		// and Create; the repository maps it to ErrUsernameTaken.
		return nil, err
	}

	dto := created.ToDTO()
	return &dto, nil
}

func (s *authService) Login(ctx context.Context, req user.LoginRequest) (*user.UserDTO, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		// Same error for "no such user" and "wrong password":
		// never expose whether the username exists.
		return nil, "", user.ErrInvalidCredentials
	}

	ok, err := password.Verify(u.PasswordHash, req.Password)
	if err != nil || !ok {
		return nil, "", user.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}

	if err := s.sessions.Create(ctx, &user.Session{
		Token:     token,
		UserID:    u.ID,
		CreatedAt: s.now(),
	}); err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	dto := u.ToDTO()
	return &dto, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *authService) Resolve(ctx context.Context, token string) (*user.UserDTO, error) {
	if token == "" {
		return nil, user.ErrSessionNotFound
	}

	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if s.sessionTTL > 0 && s.now().Sub(sess.CreatedAt) > s.sessionTTL {
		_ = s.sessions.Delete(ctx, token)
		return nil, user.ErrSessionNotFound
	}

	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

// generateToken returns 32 bytes of crypto/rand entropy, hex-encoded
// (64 characters).
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
