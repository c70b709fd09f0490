package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pagecomb/app/catalog"
	"pagecomb/app/database"
)

// ReconcileSiteTask removes per-slug directories for pages the generator
// once built but whose slug has since left the keywords source. Only
// directories recorded in the build manifest are ever deleted, so foreign
// paths under the site directory are never touched.
type ReconcileSiteTask struct {
	Task
	keywordsPath string
	siteDir      string
	loader       *catalog.KeywordLoader
	buildRepo    database.BuildRepository
}

func NewReconcileSiteTask(keywordsPath string, siteDir string,
	loader *catalog.KeywordLoader, buildRepo database.BuildRepository) *ReconcileSiteTask {
	return &ReconcileSiteTask{
		Task:         NewTask(TaskTypeReconcileSite),
		keywordsPath: keywordsPath,
		siteDir:      siteDir,
		loader:       loader,
		buildRepo:    buildRepo,
	}
}

func (t *ReconcileSiteTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	file, err := os.Open(t.keywordsPath)
	if err != nil {
		return fmt.Errorf("failed to open keywords source: %w", err)
	}
	defer file.Close()

	keywords, err := t.loader.Run(file)
	if err != nil {
		return fmt.Errorf("failed to load keywords: %w", err)
	}

	desired := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		desired[keyword.Slug] = true
	}

	known, err := t.buildRepo.ListSlugs()
	if err != nil {
		return fmt.Errorf("failed to list manifest slugs: %w", err)
	}

	removed := 0
	for _, slug := range known {
		if slug == "" || desired[slug] {
			continue
		}

		if err := os.RemoveAll(filepath.Join(t.siteDir, slug)); err != nil {
			return fmt.Errorf("failed to remove stale page %q: %w", slug, err)
		}
		if err := t.buildRepo.RemoveSlug(slug); err != nil {
			return err
		}
		slog.Debug("Removed stale page", "slug", slug)
		removed++
	}

	slog.Info("Task completed",
		"type", "ReconcileSite",
		"known", len(known),
		"removed", removed,
		"duration", t.GetDuration())

	return nil
}
