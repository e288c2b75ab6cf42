package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"wikiquiz/internal/adapter/quizgen"
	"wikiquiz/internal/cache"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/schema"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz generation operations
type QuizService interface {
	GenerateFromURL(ctx context.Context, url string) (*dto.QuizArtifactResponse, error)
	GetHistory(ctx context.Context) ([]*dto.QuizSummaryResponse, error)
	GetQuizByID(ctx context.Context, id int64) (*domain.QuizArtifact, error)
}

// quizService sequences the generation pipeline: scrape, build prompt, call
// the model, validate, persist. Each run is a single sequential flow owning
// its transient article and artifact; the repository is the only shared
// resource.
type quizService struct {
	scraper   domain.PageScraper
	generator domain.TextGenerator
	repo      domain.ArtifactRepository
	artCache  domain.Cache // optional, nil disables caching
	cacheTTL  time.Duration
}

// NewQuizService creates a new instance of quizService. artCache may be nil.
func NewQuizService(
	scraper domain.PageScraper,
	generator domain.TextGenerator,
	repo domain.ArtifactRepository,
	artCache domain.Cache,
	cacheTTL time.Duration,
) QuizService {
	return &quizService{
		scraper:   scraper,
		generator: generator,
		repo:      repo,
		artCache:  artCache,
		cacheTTL:  cacheTTL,
	}
}

// GenerateFromURL implements QuizService. A schema violation or generator
// failure is fatal to the run and is not retried; the caller never receives
// an id unless the artifact was actually persisted.
func (s *quizService) GenerateFromURL(ctx context.Context, url string) (*dto.QuizArtifactResponse, error) {
	l := logger.Get()

	if strings.TrimSpace(url) == "" {
		return nil, domain.NewInvalidInputError("url is required")
	}

	// Scraping never fails the pipeline. Empty text passes through and the
	// model is expected to return a degenerate artifact for it.
	title, text := s.scraper.Scrape(ctx, url)
	l.Info("Scraped article",
		zap.String("url", url),
		zap.String("title", title),
		zap.Int("text_len", len(text)),
	)

	prompt, err := quizgen.BuildPrompt(title, url, text)
	if err != nil {
		return nil, domain.NewInternalError("Failed to build generation prompt", err)
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, domain.NewGenerationError(err)
	}

	artifact, err := schema.Parse(raw)
	if err != nil {
		l.Error("Model output failed schema validation",
			zap.String("url", url),
			zap.Int("raw_len", len(raw)),
			zap.Error(err),
		)
		return nil, err
	}

	id, err := s.repo.Save(ctx, url, title, text, artifact)
	if err != nil {
		return nil, domain.NewStoreError("Failed to persist generated quiz", err)
	}

	l.Info("Generated quiz persisted",
		zap.Int64("id", id),
		zap.String("url", url),
		zap.Int("quiz_items", len(artifact.Quiz)),
	)

	return &dto.QuizArtifactResponse{ID: id, QuizArtifact: *artifact}, nil
}

// GetHistory implements QuizService
func (s *quizService) GetHistory(ctx context.Context) ([]*dto.QuizSummaryResponse, error) {
	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, domain.NewStoreError("Failed to list quiz history", err)
	}

	result := make([]*dto.QuizSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, &dto.QuizSummaryResponse{
			ID:        summary.ID,
			URL:       summary.URL,
			Title:     summary.Title,
			CreatedAt: summary.CreatedAt,
		})
	}
	return result, nil
}

// GetQuizByID implements QuizService. Reads go through the artifact cache
// when one is configured; cache failures degrade to repository reads.
func (s *quizService) GetQuizByID(ctx context.Context, id int64) (*domain.QuizArtifact, error) {
	l := logger.Get()

	if s.artCache != nil {
		cached, err := s.artCache.Get(ctx, cache.ArtifactKey(id))
		if err == nil {
			var artifact domain.QuizArtifact
			if err := json.Unmarshal([]byte(cached), &artifact); err == nil {
				return &artifact, nil
			}
			l.Warn("Dropping undecodable cached artifact", zap.Int64("id", id))
			_ = s.artCache.Delete(ctx, cache.ArtifactKey(id))
		} else if err != domain.ErrCacheMiss {
			l.Warn("Artifact cache read failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	artifact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewStoreError("Failed to load quiz", err)
	}
	if artifact == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}

	if s.artCache != nil {
		if payload, err := json.Marshal(artifact); err == nil {
			if err := s.artCache.Set(ctx, cache.ArtifactKey(id), string(payload), s.cacheTTL); err != nil {
				l.Warn("Artifact cache write failed", zap.Int64("id", id), zap.Error(err))
			}
		}
	}

	return artifact, nil
}
