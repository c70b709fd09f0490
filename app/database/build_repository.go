package database

import (
	"fmt"
	"time"
)

// buildRepository handles manifest operations for builds and pages
type buildRepository struct {
	db *DB
}

// NewBuildRepository creates a new build repository
func NewBuildRepository(db *DB) BuildRepository {
	return &buildRepository{db: db}
}

// RecordBuild stores one completed generate run
func (r *buildRepository) RecordBuild(startedAt time.Time, pageCount int) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO builds (started_at, page_count)
		VALUES (?, ?)
	`, startedAt.UTC(), pageCount)
	if err != nil {
		return 0, fmt.Errorf("failed to record build: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get build id: %w", err)
	}

	return id, nil
}

// GetBuildCount returns the number of recorded builds
func (r *buildRepository) GetBuildCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM builds`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count builds: %w", err)
	}
	return count, nil
}

// UpsertPage records a slug whose directory was just written
func (r *buildRepository) UpsertPage(slug string, builtAt time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO pages (slug, first_built_at, last_built_at)
		VALUES (?, ?, ?)
		ON CONFLICT (slug) DO UPDATE SET last_built_at = excluded.last_built_at
	`, slug, builtAt.UTC(), builtAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert page: %w", err)
	}
	return nil
}

// ListSlugs returns every slug in the manifest
func (r *buildRepository) ListSlugs() ([]string, error) {
	rows, err := r.db.Query(`SELECT slug FROM pages ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to list slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("failed to scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate slugs: %w", err)
	}

	return slugs, nil
}

// RemoveSlug drops a slug from the manifest
func (r *buildRepository) RemoveSlug(slug string) error {
	_, err := r.db.Exec(`DELETE FROM pages WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("failed to remove slug: %w", err)
	}
	return nil
}
