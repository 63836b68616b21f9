package book

import "context"

// Repository defines data access for Book rows.
type Repository interface {
	// Create inserts a new book and returns it with the generated id.
	// Errors: ErrAuthorMissing if the author_id foreign key is rejected.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns ErrBookNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// List returns books matching the filter in store-native order.
	List(ctx context.Context, f Filter) ([]Book, error)

	// Update replaces author_id, title, publish_year and genre; id and
	// created_by_user_id are preserved.
	// Errors: ErrBookNotFound, ErrAuthorMissing.
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete returns ErrBookNotFound on zero rows affected.
	Delete(ctx context.Context, id int64) error
}
