package prune

import (
	"fmt"
	"os"
	"strings"

	"pagecomb/app/catalog"
)

// Pruner flags low-performing slugs. The decision is a pure function of the
// three counters; thresholds come from the site configuration.
type Pruner struct {
	minImpressions int
	minClicks      int
}

func NewPruner(minImpressions int, minClicks int) *Pruner {
	return &Pruner{minImpressions: minImpressions, minClicks: minClicks}
}

// ShouldPrune reports whether a page earned enough exposure without any
// engagement to be worth removing.
func (p *Pruner) ShouldPrune(impressions int, clicks int, conversions int) bool {
	return (impressions >= p.minImpressions && clicks == 0) ||
		(clicks >= p.minClicks && conversions == 0)
}

// Run returns the slugs to prune, preserving input order
func (p *Pruner) Run(entries []catalog.Metrics) []string {
	var slugs []string
	for _, entry := range entries {
		if p.ShouldPrune(entry.Impressions, entry.Clicks, entry.Conversions) {
			slugs = append(slugs, entry.Slug)
		}
	}
	return slugs
}

// WriteList writes the slugs as newline-separated text. The trailing newline
// is only present when the list is non-empty; an empty list writes an empty
// file.
func WriteList(path string, slugs []string) error {
	content := strings.Join(slugs, "\n")
	if len(slugs) > 0 {
		content += "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write prune list: %w", err)
	}

	return nil
}
