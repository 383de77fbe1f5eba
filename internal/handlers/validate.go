package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is the shared validator instance for request DTOs.
var validate = validator.New()

// PostRequest is the write body for post create and update. CategoryIDs
// is the complete desired assignment set: omitting it means "no
// categories", a full replace to empty, never "leave unchanged".
type PostRequest struct {
	Title         string      `json:"title" validate:"required,max=300"`
	Content       string      `json:"content" validate:"max=100000"`
	CoverImageURL string      `json:"coverImageURL" validate:"max=2000"`
	CategoryIDs   []uuid.UUID `json:"categoryIds"`
}

// CategoryRequest is the write body for category create and update.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// validatePostRequest normalizes and checks a post write body, returning
// the first error message found or "".
func validatePostRequest(req *PostRequest) string {
	req.Title = strings.TrimSpace(req.Title)
	if err := validate.Struct(req); err != nil {
		if hasFailedTag(err, "required") {
			return "title is required"
		}
		return "invalid post fields"
	}
	return ""
}

// validateCategoryRequest normalizes and checks a category write body.
func validateCategoryRequest(req *CategoryRequest) string {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		if hasFailedTag(err, "required") {
			return "name is required"
		}
		return "invalid category fields"
	}
	return ""
}

// hasFailedTag reports whether any field failed on the given tag.
func hasFailedTag(err error, tag string) bool {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fe := range errs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
