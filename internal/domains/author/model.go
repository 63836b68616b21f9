package author

// Author represents the core Author entity. The id is generated by the
// store and immutable once assigned.
type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"` // 1-200 chars
	Bio  string `json:"bio" db:"bio"`   // 1-2000 chars
}
