package utils

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned by ParseID for anything that is not a
// strictly positive decimal integer.
var ErrInvalidID = errors.New("id must be a positive integer")

// ParseID parses a path or query parameter as a positive integer id.
// Rejects non-numeric strings, zero and negatives before any store lookup.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
