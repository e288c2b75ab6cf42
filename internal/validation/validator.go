package validation

import (
	"net/url"
	"strings"

	"wikiquiz/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the generate quiz request body. The
// url field is the only required field; it must be an absolute http(s) URL.
func (v *Validator) ValidateGenerateQuizRequest(rawURL string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(rawURL) == "" {
		errors = append(errors, domain.NewRequiredFieldError("url"))
		return errors
	}

	if !isValidArticleURL(rawURL) {
		errors = append(errors, domain.NewInvalidFormatError("url", rawURL))
	}

	return errors
}

// isValidArticleURL checks that the string parses as an absolute http or
// https URL with a host.
func isValidArticleURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
