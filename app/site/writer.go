package site

import (
	"fmt"
	"os"
	"path/filepath"

	"pagecomb/app/catalog"
)

// Writer persists rendered documents under the site directory. Directory
// creation is idempotent and existing files are overwritten unconditionally.
// There is no atomicity across files: a failure partway through leaves a
// partially updated tree.
type Writer struct {
	siteDir string
}

func NewWriter(siteDir string) *Writer {
	return &Writer{siteDir: siteDir}
}

// Run writes one page per keyword plus the root index, sitemap and robots
// files. pages must be ordered like keywords.
func (w *Writer) Run(keywords []catalog.Keyword, pages []string, index string, sitemap string, robots string) error {
	if len(pages) != len(keywords) {
		return fmt.Errorf("page count %d does not match keyword count %d", len(pages), len(keywords))
	}

	if err := os.MkdirAll(w.siteDir, 0755); err != nil {
		return fmt.Errorf("failed to create site directory: %w", err)
	}

	for i, keyword := range keywords {
		pageDir := filepath.Join(w.siteDir, keyword.Slug)
		if err := os.MkdirAll(pageDir, 0755); err != nil {
			return fmt.Errorf("failed to create page directory for %q: %w", keyword.Slug, err)
		}
		if err := os.WriteFile(filepath.Join(pageDir, "index.html"), []byte(pages[i]), 0644); err != nil {
			return fmt.Errorf("failed to write page for %q: %w", keyword.Slug, err)
		}
	}

	if err := os.WriteFile(filepath.Join(w.siteDir, "index.html"), []byte(index), 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.siteDir, "sitemap.xml"), []byte(sitemap), 0644); err != nil {
		return fmt.Errorf("failed to write sitemap: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.siteDir, "robots.txt"), []byte(robots), 0644); err != nil {
		return fmt.Errorf("failed to write robots.txt: %w", err)
	}

	return nil
}
