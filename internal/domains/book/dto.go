package book

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field bounds
const (
	MaxTitleLength = 300
	MaxGenreLength = 100
)

// yearPattern accepts exactly four digits: "1999" passes, "99", "19999"
// and "19ab" do not.
var yearPattern = regexp.MustCompile(`^\d{4}$`)

// BookRequest is the body of both POST /api/books and PUT /api/books/:id.
// Update is a full replace of the four mutable fields.
type BookRequest struct {
	AuthorID    int64  `json:"authorID"`
	Title       string `json:"title"`
	PublishYear string `json:"publishYear"`
	Genre       string `json:"genre"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID,
			validation.Required.Error("authorID is required"),
			validation.Min(int64(1)).Error("authorID must be a positive integer"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength).Error("title must be 1-300 characters"),
		),
		validation.Field(&r.PublishYear,
			validation.Required.Error("publishYear is required"),
			validation.Match(yearPattern).Error("publishYear must be a 4-digit year"),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("genre is required"),
			validation.Length(1, MaxGenreLength).Error("genre must be 1-100 characters"),
		),
	)
}

// Filter holds the optional query filters of GET /api/books, combined
// with AND when several are present.
type Filter struct {
	AuthorID *int64 // exact match
	Genre    string // exact match
	// MinYear filters publishYear >= MinYear as a string comparison;
	// lexicographic order is correct because years are fixed-width.
	MinYear string
}

// IsValidYear reports whether s is exactly four digits.
func IsValidYear(s string) bool {
	return yearPattern.MatchString(s)
}
