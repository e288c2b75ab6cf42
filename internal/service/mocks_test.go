package service

import (
	"context"
	"time"

	"wikiquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockPageScraper ---
type MockPageScraper struct {
	mock.Mock
}

func (m *MockPageScraper) Scrape(ctx context.Context, url string) (string, string) {
	args := m.Called(ctx, url)
	return args.String(0), args.String(1)
}

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- MockArtifactRepository ---
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) Save(ctx context.Context, url, title, scrapedContent string, artifact *domain.QuizArtifact) (int64, error) {
	args := m.Called(ctx, url, title, scrapedContent, artifact)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArtifactRepository) ListSummaries(ctx context.Context) ([]*domain.ArtifactSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ArtifactSummary), args.Error(1)
}

func (m *MockArtifactRepository) GetByID(ctx context.Context, id int64) (*domain.QuizArtifact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizArtifact), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
