package author

import "context"

// Service defines business logic for the Author domain.
type Service interface {
	// Create inserts a validated author.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID returns ErrAuthorNotFound if absent.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetAll returns all authors in store-native order.
	GetAll(ctx context.Context) ([]Author, error)

	// Delete removes an author with no dependent books.
	// Errors: ErrAuthorNotFound, ErrAuthorHasBooks.
	Delete(ctx context.Context, id int64) error
}
