package site

import (
	"strings"
	"testing"
	"time"

	"pagecomb/app/catalog"
)

func TestSitemapGenerator_Run(t *testing.T) {
	generator := NewSitemapGenerator("https://answers.example.com")
	generator.now = func() time.Time {
		return time.Date(2024, 5, 7, 15, 30, 0, 0, time.UTC)
	}

	keywords := []catalog.Keyword{
		{Slug: "best-vpn"},
		{Slug: "cheap-hosting"},
	}

	sitemap := generator.Run(keywords)

	if !strings.Contains(sitemap, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("Sitemap should contain XML declaration")
	}
	if !strings.Contains(sitemap, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`) {
		t.Error("Sitemap should declare the sitemap namespace")
	}
	if !strings.Contains(sitemap, "<url><loc>https://answers.example.com/</loc><lastmod>2024-05-07</lastmod></url>") {
		t.Error("Sitemap should contain the root entry with a date-only lastmod")
	}
	if !strings.Contains(sitemap, "<url><loc>https://answers.example.com/best-vpn/</loc><lastmod>2024-05-07</lastmod></url>") {
		t.Error("Sitemap should contain one entry per keyword")
	}
	if !strings.Contains(sitemap, "<url><loc>https://answers.example.com/cheap-hosting/</loc><lastmod>2024-05-07</lastmod></url>") {
		t.Error("Sitemap should contain every keyword entry")
	}
	if strings.Count(sitemap, "<url>") != 3 {
		t.Errorf("Expected 3 url entries, got %d", strings.Count(sitemap, "<url>"))
	}
}

func TestSitemapGenerator_LastmodIsUTCDate(t *testing.T) {
	generator := NewSitemapGenerator("https://answers.example.com")

	// 23:30 on May 7 in UTC-5 is already May 8 in UTC
	loc := time.FixedZone("UTC-5", -5*60*60)
	generator.now = func() time.Time {
		return time.Date(2024, 5, 7, 23, 30, 0, 0, loc)
	}

	sitemap := generator.Run(nil)

	if !strings.Contains(sitemap, "<lastmod>2024-05-08</lastmod>") {
		t.Error("Lastmod should be the current UTC calendar date")
	}
}

func TestSitemapGenerator_Empty(t *testing.T) {
	generator := NewSitemapGenerator("https://answers.example.com")
	generator.now = func() time.Time {
		return time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)
	}

	sitemap := generator.Run(nil)

	// Zero keywords still produce exactly the root entry
	if strings.Count(sitemap, "<url>") != 1 {
		t.Errorf("Expected exactly 1 url entry, got %d", strings.Count(sitemap, "<url>"))
	}
	if !strings.Contains(sitemap, "<loc>https://answers.example.com/</loc>") {
		t.Error("Sitemap should contain the root entry")
	}
}
