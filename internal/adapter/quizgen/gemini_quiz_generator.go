package quizgen

import (
	"context"
	"fmt"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GeminiGenerator implements domain.TextGenerator over the Gemini API via
// langchaingo. It performs a single attempt per request; malformed or failed
// generations are surfaced to the caller unretried.
type GeminiGenerator struct {
	llm         *googleai.GoogleAI
	modelName   string
	temperature float64
}

// NewGeminiGenerator creates a GeminiGenerator for the given model.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string, temperature float64) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Get().Info("Initialized Gemini generator", zap.String("model", modelName), zap.Float64("temperature", temperature))
	return &GeminiGenerator{
		llm:         llm,
		modelName:   modelName,
		temperature: temperature,
	}, nil
}

// Generate sends the prompt to Gemini and returns the raw textual output.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		logger.Get().Error("Gemini call failed", zap.String("model", g.modelName), zap.Error(err))
		return "", fmt.Errorf("gemini call failed: %w", err)
	}
	return response, nil
}

var _ domain.TextGenerator = (*GeminiGenerator)(nil)
