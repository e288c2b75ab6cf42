package domain

import (
	"context"
	"time"
)

// PageScraper fetches a page and reduces it to a clean (title, text) pair.
// Fetch failures are absorbed into placeholder results; callers always get a
// usable pair and must treat empty text as legitimate low-value input.
type PageScraper interface {
	Scrape(ctx context.Context, url string) (title string, text string)
}

// TextGenerator is the external generative-language collaborator. It takes a
// fully rendered prompt and returns the model's raw textual output.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ArtifactRepository persists generated quiz artifacts. Records are immutable
// once written; the returned id is the only handle for later retrieval.
type ArtifactRepository interface {
	Save(ctx context.Context, url, title, scrapedContent string, artifact *QuizArtifact) (int64, error)
	ListSummaries(ctx context.Context) ([]*ArtifactSummary, error)
	// GetByID returns (nil, nil) when no record has the given id.
	GetByID(ctx context.Context, id int64) (*QuizArtifact, error)
}

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache defines the interface (port) for caching operations.
// Implementations of this interface will be the adapters (e.g., RedisCacheAdapter).
type Cache interface {
	// Get retrieves an item from the cache.
	// It returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set adds an item to the cache with an expiration.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes an item from the cache.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the cache backend.
	Ping(ctx context.Context) error
}
