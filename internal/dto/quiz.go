package dto

import (
	"time"

	"wikiquiz/internal/domain"
)

// GenerateQuizRequest is the body for submitting a generation run.
// @Description Request body for generating a quiz from an article URL
type GenerateQuizRequest struct {
	URL string `json:"url"`
}

// QuizArtifactResponse is the generated artifact merged with its assigned
// store identity. The embedded artifact fields marshal at the top level, so
// the response is the artifact JSON plus an "id" field.
type QuizArtifactResponse struct {
	ID int64 `json:"id"`
	domain.QuizArtifact
}

// QuizSummaryResponse is one row of the generation history listing.
type QuizSummaryResponse struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
