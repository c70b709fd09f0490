package site

import "fmt"

// RobotsGenerator renders the fixed robots.txt directives
type RobotsGenerator struct {
	baseUrl string
}

func NewRobotsGenerator(baseUrl string) *RobotsGenerator {
	return &RobotsGenerator{baseUrl: baseUrl}
}

func (g *RobotsGenerator) Run() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", g.baseUrl)
}
