package types

import (
	"github.com/go-playground/validator/v10"
)

// MatchRequest represents a request to score one CV against one job
// description. Both texts are UTF-8 plain text, already extracted from their
// source documents by an upstream step.
type MatchRequest struct {
	CVText  string `json:"cv_text" validate:"required,min=1"`
	JobText string `json:"job_text" validate:"required,min=1"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
