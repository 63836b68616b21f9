package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/user"
	"library-catalog/pkg/password"
)

// stubUserRepo keeps users in a map; good enough to exercise the service.
type stubUserRepo struct {
	users  map[string]*user.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*user.User{}, nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	if _, ok := r.users[u.Username]; ok {
		return nil, user.ErrUsernameTaken
	}
	created := *u
	created.ID = r.nextID
	r.nextID++
	r.users[u.Username] = &created
	return &created, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

type stubSessionRepo struct {
	sessions map[string]*user.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: map[string]*user.Session{}}
}

func (r *stubSessionRepo) Create(_ context.Context, s *user.Session) error {
	r.sessions[s.Token] = s
	return nil
}

func (r *stubSessionRepo) GetByToken(_ context.Context, token string) (*user.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, user.ErrSessionNotFound
	}
	return s, nil
}

func (r *stubSessionRepo) Delete(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func newTestService() (user.Service, *stubUserRepo, *stubSessionRepo) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	return NewAuthService(users, sessions, 168*time.Hour), users, sessions
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users, _ := newTestService()

	dto, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", dto.Username)
	assert.NotZero(t, dto.ID)

	stored := users.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)

	ok, err := password.Verify(stored.PasswordHash, "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), user.RegisterRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), user.RegisterRequest{Username: "alice", Password: "pw2"})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestRegisterRejectsInvalidUsername(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), user.RegisterRequest{Username: "bad name!", Password: "pw"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrUsernameTaken)
}

func TestLoginIssuesOpaqueToken(t *testing.T) {
	svc, _, sessions := newTestService()

	_, err := svc.Register(context.Background(), user.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	dto, token, err := svc.Login(context.Background(), user.LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", dto.Username)

	// 32 random bytes, hex-encoded.
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), token)

	sess, err := sessions.GetByToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, dto.ID, sess.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), user.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), user.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	svc, _, _ := newTestService()

	_, _, err := svc.Login(context.Background(), user.LoginRequest{Username: "nobody", Password: "pw"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestResolveRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), user.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, token, err := svc.Login(context.Background(), user.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	dto, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", dto.Username)
}

func TestResolveEmptyToken(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, user.ErrSessionNotFound)
}

func TestResolveExpiredSessionIsRevoked(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	svc := NewAuthService(users, sessions, time.Hour).(*authService)

	_, err := svc.Register(context.Background(), user.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, token, err := svc.Login(context.Background(), user.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	// Advance the clock past the TTL.
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, user.ErrSessionNotFound)

	// The expired row is gone: a second resolve fails the same way even
	// with the clock rolled back.
	svc.now = time.Now
	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, user.ErrSessionNotFound)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), user.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, token, err := svc.Login(context.Background(), user.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))
	require.NoError(t, svc.Logout(context.Background(), token))
	require.NoError(t, svc.Logout(context.Background(), ""))

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, user.ErrSessionNotFound)
}
