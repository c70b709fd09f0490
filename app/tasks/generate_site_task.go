package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"pagecomb/app/catalog"
	"pagecomb/app/database"
	"pagecomb/app/site"
)

// GenerateSiteTask renders the whole site from the keywords source and
// records the written slugs in the build manifest. Nothing is written when
// loading fails; a filesystem failure partway through leaves a partially
// updated tree.
type GenerateSiteTask struct {
	Task
	keywordsPath string
	loader       *catalog.KeywordLoader
	pageGen      *site.PageGenerator
	indexGen     *site.IndexGenerator
	sitemapGen   *site.SitemapGenerator
	robotsGen    *site.RobotsGenerator
	writer       *site.Writer
	buildRepo    database.BuildRepository
}

func NewGenerateSiteTask(keywordsPath string, loader *catalog.KeywordLoader,
	pageGen *site.PageGenerator, indexGen *site.IndexGenerator,
	sitemapGen *site.SitemapGenerator, robotsGen *site.RobotsGenerator,
	writer *site.Writer, buildRepo database.BuildRepository) *GenerateSiteTask {
	return &GenerateSiteTask{
		Task:         NewTask(TaskTypeGenerateSite),
		keywordsPath: keywordsPath,
		loader:       loader,
		pageGen:      pageGen,
		indexGen:     indexGen,
		sitemapGen:   sitemapGen,
		robotsGen:    robotsGen,
		writer:       writer,
		buildRepo:    buildRepo,
	}
}

func (t *GenerateSiteTask) Execute(ctx context.Context) error {

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

	pages := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		pages = append(pages, t.pageGen.Run(keyword))
	}

	index := t.indexGen.Run(keywords)
	sitemap := t.sitemapGen.Run(keywords)
	robots := t.robotsGen.Run()

	if err := t.writer.Run(keywords, pages, index, sitemap, robots); err != nil {
		return fmt.Errorf("failed to write site: %w", err)
	}

	builtAt := time.Now().UTC()
	if _, err := t.buildRepo.RecordBuild(builtAt, len(keywords)); err != nil {
		return fmt.Errorf("failed to record build: %w", err)
	}
	for _, keyword := range keywords {
		if keyword.Slug == "" {
			// an empty slug resolves to the site root and must never
			// enter the manifest
			continue
		}
		if err := t.buildRepo.UpsertPage(keyword.Slug, builtAt); err != nil {
			return fmt.Errorf("failed to record page %q: %w", keyword.Slug, err)
		}
	}

	slog.Info("Task completed",
		"type", "GenerateSite",
		"pages", len(keywords),
		"duration", t.GetDuration())

	return nil
}
