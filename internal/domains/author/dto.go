package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field length bounds
const (
	MaxNameLength = 200
	MaxBioLength  = 2000
)

// CreateAuthorRequest - POST /api/authors
type CreateAuthorRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength).Error("name must be 1-200 characters"),
		),
		validation.Field(&r.Bio,
			validation.Required.Error("bio is required"),
			validation.Length(1, MaxBioLength).Error("bio must be 1-2000 characters"),
		),
	)
}

// ToEntity converts the request to an Author entity (id assigned by the store).
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name: r.Name,
		Bio:  r.Bio,
	}
}
