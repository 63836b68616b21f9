package author

import "context"

// Repository defines data access for Author rows.
type Repository interface {
	// Create inserts a new author and returns it with the generated id.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetAll returns all authors in store-native order.
	GetAll(ctx context.Context) ([]Author, error)

	// Delete removes the author.
	// Errors: ErrAuthorNotFound on zero rows affected,
	// ErrAuthorHasBooks when books still reference the author.
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks existence without fetching the row. The book
	// domain uses it to validate authorID references.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
