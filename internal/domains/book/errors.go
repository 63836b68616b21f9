package book

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrAuthorMissing means the authorID in a create/update request does
	// not reference an existing author. This is an input error (400), not
	// a not-found on the book itself.
	ErrAuthorMissing = errors.New("author does not exist")

	// Ownership violations on mutating operations.
	ErrNotOwnerEdit   = errors.New("you can only edit books you created")
	ErrNotOwnerDelete = errors.New("you can only delete books you created")
)
