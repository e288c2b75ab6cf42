package middleware

import (
	"errors"
	"net/http"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// ErrorHandler is the centralized error handler wired into the Fiber app. It
// maps typed internal failures to the wire contract: validation and invalid
// input to 400, unknown ids to 404, schema violations and generation
// failures to upstream-style 5xx, everything else to an opaque 500.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Request validation failed",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.ErrInvalidInput),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			})
		}

		var schemaErr *domain.SchemaViolationError
		if errors.As(err, &schemaErr) {
			log.Error("Generated output failed schema validation",
				zap.String("path", c.Path()),
				zap.String("reason", string(schemaErr.Reason)),
				zap.String("field", schemaErr.Field),
				zap.String("detail", schemaErr.Detail),
			)
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Code:    string(domain.ErrSchemaViolation),
				Message: "Language model returned an invalid quiz",
				Status:  http.StatusBadGateway,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			log.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Err),
			)

			return c.Status(statusCode).JSON(ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Status:  statusCode,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.ErrInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrNotFound, domain.ErrQuizNotFound:
		return http.StatusNotFound
	case domain.ErrInvalidInput:
		return http.StatusBadRequest
	case domain.ErrGenerationFailed:
		return http.StatusServiceUnavailable
	case domain.ErrSchemaViolation:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
