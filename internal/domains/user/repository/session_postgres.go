package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/user"
)

// sessionPostgresRepository implements user.SessionRepository.
// Session rows cascade away when the referenced user is deleted
// (ON DELETE CASCADE), so no cleanup method exists here.
type sessionPostgresRepository struct {
	pool *pgxpool.Pool
}

func NewSessionPostgresRepository(pool *pgxpool.Pool) user.SessionRepository {
	return &sessionPostgresRepository{pool: pool}
}

func (r *sessionPostgresRepository) Create(ctx context.Context, s *user.Session) error {
	query := `
        INSERT INTO sessions (token, user_id, created_at)
        VALUES ($1, $2, $3)
    `

	if _, err := r.pool.Exec(ctx, query, s.Token, s.UserID, s.CreatedAt); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *sessionPostgresRepository) GetByToken(ctx context.Context, token string) (*user.Session, error) {
	query := `SELECT token, user_id, created_at FROM sessions WHERE token = $1`

	var s user.Session
	err := r.pool.QueryRow(ctx, query, token).Scan(&s.Token, &s.UserID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &s, nil
}

func (r *sessionPostgresRepository) Delete(ctx context.Context, token string) error {
	// Idempotent: deleting a token that is already gone is fine.
	if _, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
