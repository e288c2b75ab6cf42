package handler

import (
	"bytes"
	"encoding/json"
	"strconv"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/service"
	"wikiquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GenerateQuiz handles POST /api/quizzes. The body must be exactly
// {"url": "..."}; unknown fields are rejected before the pipeline is entered.
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return domain.NewInvalidInputError("request body must be a JSON object with a single url field")
	}

	if errs := h.validator.ValidateGenerateQuizRequest(req.URL); len(errs) > 0 {
		return errs
	}

	result, err := h.service.GenerateFromURL(c.UserContext(), req.URL)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// GetHistory handles GET /api/quizzes and returns summaries of all prior
// generation runs, without artifact bodies.
func (h *QuizHandler) GetHistory(c *fiber.Ctx) error {
	summaries, err := h.service.GetHistory(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(summaries)
}

// GetQuiz handles GET /api/quizzes/:id and returns the full stored artifact.
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", c.Params("id"))}
	}

	artifact, err := h.service.GetQuizByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(artifact)
}
