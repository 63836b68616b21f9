package book

// Book represents the core Book entity. CreatedByUserID is set once from
// the authenticated caller at creation and never changes; it is the basis
// for the ownership checks on update and delete.
type Book struct {
	ID              int64  `json:"id" db:"id"`
	AuthorID        int64  `json:"authorID" db:"author_id"`
	CreatedByUserID int64  `json:"createdByUserID" db:"created_by_user_id"`
	Title           string `json:"title" db:"title"`                // 1-300 chars
	PublishYear     string `json:"publishYear" db:"publish_year"`   // exactly 4 digits
	Genre           string `json:"genre" db:"genre"`                // 1-100 chars
}
