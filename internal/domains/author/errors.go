package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")

	// ErrAuthorHasBooks is the store's foreign-key rejection surfaced as a
	// domain conflict: an author with dependent books cannot be deleted.
	ErrAuthorHasBooks = errors.New("cannot delete author because they still have books")
)
