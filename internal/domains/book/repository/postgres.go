package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/utils"
)

// postgresRepository implements book.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = "id, author_id, created_by_user_id, title, publish_year, genre"

func scanBook(row pgx.Row, b *book.Book) error {
	return row.Scan(
		&b.ID,
		&b.AuthorID,
		&b.CreatedByUserID,
		&b.Title,
		&b.PublishYear,
		&b.Genre,
	)
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (author_id, created_by_user_id, title, publish_year, genre)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + bookColumns

	var created book.Book
	err := scanBook(r.pool.QueryRow(ctx, query,
		b.AuthorID,
		b.CreatedByUserID,
		b.Title,
		b.PublishYear,
		b.Genre,
	), &created)
	if err != nil {
		return nil, mapConstraintError(err, "failed to create book")
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var b book.Book
	if err := scanBook(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) List(ctx context.Context, f book.Filter) ([]book.Book, error) {
	query, args := buildListQuery(f)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// buildListQuery assembles the filtered list statement. publish_year is a
// fixed-width text column, so the >= comparison the store performs for
// minYear is the intended lexicographic one.
func buildListQuery(f book.Filter) (string, []interface{}) {
	query := `SELECT ` + bookColumns + ` FROM books`

	var clauses []string
	var args []interface{}

	if f.AuthorID != nil {
		args = append(args, *f.AuthorID)
		clauses = append(clauses, fmt.Sprintf("author_id = $%d", len(args)))
	}
	if f.Genre != "" {
		args = append(args, f.Genre)
		clauses = append(clauses, fmt.Sprintf("genre = $%d", len(args)))
	}
	if f.MinYear != "" {
		args = append(args, f.MinYear)
		clauses = append(clauses, fmt.Sprintf("publish_year >= $%d", len(args)))
	}

	if len(clauses) > 0 {
		query += " WHERE " + utils.JoinWithAnd(clauses)
	}

	return query, args
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET author_id = $1, title = $2, publish_year = $3, genre = $4
        WHERE id = $5
        RETURNING ` + bookColumns

	var updated book.Book
	err := scanBook(r.pool.QueryRow(ctx, query,
		b.AuthorID,
		b.Title,
		b.PublishYear,
		b.Genre,
		b.ID,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, mapConstraintError(err, "failed to update book")
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// mapConstraintError turns an author_id foreign-key rejection into
// ErrAuthorMissing. The service pre-checks the author, but the constraint
// still closes the race between check and insert.
func mapConstraintError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
		return book.ErrAuthorMissing
	}
	return fmt.Errorf("%s: %w", msg, err)
}
