package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.ArtifactRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.ArtifactRepository {
	return &QuizDatabaseAdapter{db: db}
}

// Save implements domain.ArtifactRepository. The id comes from the sqlite
// AUTOINCREMENT rowid, so it is unique and strictly increasing across runs.
func (a *QuizDatabaseAdapter) Save(ctx context.Context, url, title, scrapedContent string, artifact *domain.QuizArtifact) (int64, error) {
	if artifact == nil {
		return 0, fmt.Errorf("cannot save nil artifact")
	}

	payload, err := json.Marshal(artifact)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal artifact: %w", err)
	}

	query := `INSERT INTO quizzes (
		url, title, created_at, scraped_content, artifact_json
	) VALUES (?, ?, ?, ?, ?)`

	result, err := a.db.ExecContext(ctx, query,
		url,
		title,
		time.Now().UTC(),
		scrapedContent,
		string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save quiz: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted quiz id: %w", err)
	}
	return id, nil
}

// ListSummaries implements domain.ArtifactRepository
func (a *QuizDatabaseAdapter) ListSummaries(ctx context.Context) ([]*domain.ArtifactSummary, error) {
	var rows []models.Quiz
	query := `SELECT id, url, title, created_at
	FROM quizzes
	ORDER BY id`

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list quiz summaries: %w", err)
	}

	summaries := make([]*domain.ArtifactSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &domain.ArtifactSummary{
			ID:        row.ID,
			URL:       row.URL,
			Title:     row.Title,
			CreatedAt: row.CreatedAt,
		})
	}
	return summaries, nil
}

// GetByID implements domain.ArtifactRepository. It returns (nil, nil) when no
// record has the given id.
func (a *QuizDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.QuizArtifact, error) {
	var row models.Quiz
	query := `SELECT id, url, title, created_at, scraped_content, artifact_json
	FROM quizzes
	WHERE id = ?`

	err := a.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %d: %w", id, err)
	}

	var artifact domain.QuizArtifact
	if err := json.Unmarshal([]byte(row.ArtifactJSON), &artifact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored artifact %d: %w", id, err)
	}
	return &artifact, nil
}
