package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Pipeline specific errors
	ErrQuizNotFound     ErrorCode = "QUIZ_NOT_FOUND"
	ErrSchemaViolation  ErrorCode = "SCHEMA_VIOLATION"
	ErrGenerationFailed ErrorCode = "GENERATION_FAILED"
	ErrStoreFailure     ErrorCode = "STORE_FAILURE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewQuizNotFoundError(id int64) *DomainError {
	return NewError(ErrQuizNotFound, fmt.Sprintf("Quiz not found with ID: %d", id), nil)
}

func NewGenerationError(err error) *DomainError {
	return NewError(ErrGenerationFailed, "Failed to generate quiz from language model", err)
}

func NewStoreError(message string, err error) *DomainError {
	return NewError(ErrStoreFailure, message, err)
}

// ViolationReason classifies why a generated response failed validation.
type ViolationReason string

const (
	ViolationMalformed    ViolationReason = "malformed"
	ViolationMissingField ViolationReason = "missing_field"
	ViolationConstraint   ViolationReason = "constraint"
)

// SchemaViolationError is returned when the language model output cannot be
// coerced into a conforming QuizArtifact. It is fatal to the current run.
type SchemaViolationError struct {
	Reason ViolationReason
	Field  string
	Detail string
	Err    error
}

func (e *SchemaViolationError) Error() string {
	switch e.Reason {
	case ViolationMissingField:
		return fmt.Sprintf("schema violation (%s): field %q", e.Reason, e.Field)
	case ViolationConstraint:
		return fmt.Sprintf("schema violation (%s): %s", e.Reason, e.Detail)
	default:
		if e.Err != nil {
			return fmt.Sprintf("schema violation (%s): %v", e.Reason, e.Err)
		}
		return fmt.Sprintf("schema violation (%s)", e.Reason)
	}
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Err
}

func NewMalformedOutputError(err error) *SchemaViolationError {
	return &SchemaViolationError{Reason: ViolationMalformed, Err: err}
}

func NewMissingFieldError(field string) *SchemaViolationError {
	return &SchemaViolationError{Reason: ViolationMissingField, Field: field}
}

func NewConstraintError(detail string) *SchemaViolationError {
	return &SchemaViolationError{Reason: ViolationConstraint, Detail: detail}
}

// ValidationError represents a single request-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates request validation failures so the error
// middleware can render them in one response.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Error()
}

func NewRequiredFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %s", value)}
}
