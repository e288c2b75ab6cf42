package models

import "time"

// Quiz is the database row for one stored generation run. Rows are written
// once and never updated or deleted.
type Quiz struct {
	ID             int64     `db:"id"`
	URL            string    `db:"url"`
	Title          string    `db:"title"`
	CreatedAt      time.Time `db:"created_at"`
	ScrapedContent string    `db:"scraped_content"`
	ArtifactJSON   string    `db:"artifact_json"`
}
