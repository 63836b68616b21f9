package book

import "context"

// Service defines business logic for the Book domain. The callerID on
// mutating operations is the authenticated user threaded in explicitly by
// the handler; there is no ambient request state down here.
type Service interface {
	// Create validates the author reference and inserts the book with
	// created_by_user_id = callerID.
	// Errors: ErrAuthorMissing.
	Create(ctx context.Context, req *BookRequest, callerID int64) (*Book, error)

	// GetByID returns ErrBookNotFound if absent.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// List returns books matching the filter in store-native order.
	List(ctx context.Context, f Filter) ([]Book, error)

	// Update replaces the four mutable fields, owner-only.
	// Errors: ErrBookNotFound, ErrAuthorMissing, ErrNotOwnerEdit.
	Update(ctx context.Context, id int64, req *BookRequest, callerID int64) (*Book, error)

	// Delete removes the book, owner-only.
	// Errors: ErrBookNotFound, ErrNotOwnerDelete.
	Delete(ctx context.Context, id int64, callerID int64) error
}
