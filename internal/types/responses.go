//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// UserResponse is the body returned by GET /api/user/{id}.
// The placeholder backend does not return a real address, so only presence is checked.
type UserResponse struct {
	Email string `json:"email" validate:"required"`
}

// DocumentSummary is one element of the GET /api/documents body.
// Additional fields (url, domain, ...) are tolerated and ignored.
type DocumentSummary struct {
	Title string `json:"title" validate:"required"`
}

// DocumentsResponse is the body returned by GET /api/documents.
type DocumentsResponse struct {
	Documents []DocumentSummary `validate:"required,min=1,dive"`
}

// Validate validates the UserResponse using the validator.
func (r *UserResponse) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the DocumentsResponse using the validator.
func (r *DocumentsResponse) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FirstTitle returns the title of the first document.
// Callers must have validated the response.
func (r *DocumentsResponse) FirstTitle() string {
	return r.Documents[0].Title
}

