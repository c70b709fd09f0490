package tasks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pagecomb/app/catalog"
	"pagecomb/app/site"
)

// stubBuildRepo is an in-memory BuildRepository for task tests
type stubBuildRepo struct {
	builds int
	pages  map[string]bool
}

func newStubBuildRepo() *stubBuildRepo {
	return &stubBuildRepo{pages: make(map[string]bool)}
}

func (s *stubBuildRepo) RecordBuild(startedAt time.Time, pageCount int) (int64, error) {
	s.builds++
	return int64(s.builds), nil
}

func (s *stubBuildRepo) GetBuildCount() (int, error) {
	return s.builds, nil
}

func (s *stubBuildRepo) UpsertPage(slug string, builtAt time.Time) error {
	s.pages[slug] = true
	return nil
}

func (s *stubBuildRepo) ListSlugs() ([]string, error) {
	var slugs []string
	for slug := range s.pages {
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

func (s *stubBuildRepo) RemoveSlug(slug string) error {
	delete(s.pages, slug)
	return nil
}

func newGenerateTask(t *testing.T, keywordsCSV string, repo *stubBuildRepo) (*GenerateSiteTask, string) {
	t.Helper()

	tempDir := t.TempDir()
	keywordsPath := filepath.Join(tempDir, "keywords.csv")
	if err := os.WriteFile(keywordsPath, []byte(keywordsCSV), 0644); err != nil {
		t.Fatal(err)
	}

	siteDir := filepath.Join(tempDir, "site")
	baseUrl := "https://answers.example.com"

	task := NewGenerateSiteTask(keywordsPath,
		catalog.NewKeywordLoader(),
		site.NewPageGenerator(baseUrl),
		site.NewIndexGenerator(baseUrl, "Answer Library", "Browse quick answers and recommended offers."),
		site.NewSitemapGenerator(baseUrl),
		site.NewRobotsGenerator(baseUrl),
		site.NewWriter(siteDir),
		repo)

	return task, siteDir
}

func TestGenerateSiteTask_Execute(t *testing.T) {
	source := `slug,question,short_answer,offer_url,cta_text
best-vpn,What is the best VPN?,A fast audited VPN.,https://example.com/vpn,Get the deal
cheap-hosting,What is cheap hosting?,Shared hosting under $3.,https://example.com/host,See plans
`

	repo := newStubBuildRepo()
	task, siteDir := newGenerateTask(t, source, repo)

	task.Start()
	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(siteDir, "best-vpn", "index.html"))
	if err != nil {
		t.Fatalf("Expected per-slug page to exist: %v", err)
	}
	if !strings.Contains(string(page), "<h1>What is the best VPN?</h1>") {
		t.Error("Page should contain the question heading")
	}

	index, err := os.ReadFile(filepath.Join(siteDir, "index.html"))
	if err != nil {
		t.Fatalf("Expected root index to exist: %v", err)
	}
	if !strings.Contains(string(index), `<a href="cheap-hosting/">What is cheap hosting?</a>`) {
		t.Error("Index should list every keyword")
	}

	if _, err := os.Stat(filepath.Join(siteDir, "sitemap.xml")); err != nil {
		t.Errorf("Expected sitemap to exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(siteDir, "robots.txt")); err != nil {
		t.Errorf("Expected robots.txt to exist: %v", err)
	}

	// The build and both pages are recorded in the manifest
	if repo.builds != 1 {
		t.Errorf("Expected 1 recorded build, got %d", repo.builds)
	}
	if !repo.pages["best-vpn"] || !repo.pages["cheap-hosting"] {
		t.Errorf("Expected both slugs in the manifest, got %v", repo.pages)
	}
}

func TestGenerateSiteTask_SchemaErrorWritesNothing(t *testing.T) {
	source := `slug,question,short_answer,cta_text
best-vpn,What is the best VPN?,A fast audited VPN.,Get the deal
`

	repo := newStubBuildRepo()
	task, siteDir := newGenerateTask(t, source, repo)

	task.Start()
	err := task.Execute(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing column, got nil")
	}
	if !strings.Contains(err.Error(), "offer_url") {
		t.Errorf("Expected error to name the missing column, got: %v", err)
	}

	// The job aborts before producing any output
	if _, err := os.Stat(siteDir); !os.IsNotExist(err) {
		t.Error("Expected no site directory after schema error")
	}
	if repo.builds != 0 {
		t.Errorf("Expected no recorded build, got %d", repo.builds)
	}
}

func TestGenerateSiteTask_EmptyCatalog(t *testing.T) {
	source := "slug,question,short_answer,offer_url,cta_text\n"

	repo := newStubBuildRepo()
	task, siteDir := newGenerateTask(t, source, repo)

	task.Start()
	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Zero keywords still produce the root files
	index, err := os.ReadFile(filepath.Join(siteDir, "index.html"))
	if err != nil {
		t.Fatalf("Expected root index to exist: %v", err)
	}
	if strings.Contains(string(index), "<li>") {
		t.Error("Empty catalog should list zero items")
	}

	sitemap, err := os.ReadFile(filepath.Join(siteDir, "sitemap.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(sitemap), "<url>") != 1 {
		t.Error("Empty catalog sitemap should contain exactly the root entry")
	}
}
