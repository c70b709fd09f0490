package site

import (
	"bytes"
	"fmt"
	"time"

	"pagecomb/app/catalog"
)

// SitemapGenerator renders the sitemap with one <url> entry for the root
// page and one per keyword. The lastmod date comes from the injected clock
// so tests can pin it.
type SitemapGenerator struct {
	baseUrl string
	now     func() time.Time
}

func NewSitemapGenerator(baseUrl string) *SitemapGenerator {
	return &SitemapGenerator{baseUrl: baseUrl, now: time.Now}
}

func (g *SitemapGenerator) Run(keywords []catalog.Keyword) string {
	updated := g.now().UTC().Format("2006-01-02")

	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	buf.WriteString("\n")

	buf.WriteString(fmt.Sprintf("  <url><loc>%s/</loc><lastmod>%s</lastmod></url>\n", g.baseUrl, updated))
	for _, keyword := range keywords {
		buf.WriteString(fmt.Sprintf("  <url><loc>%s/%s/</loc><lastmod>%s</lastmod></url>\n", g.baseUrl, keyword.Slug, updated))
	}

	buf.WriteString("</urlset>\n")

	return buf.String()
}
