package config

// SiteConfig represents the complete site configuration
type SiteConfig struct {
	Site  SiteInfo      `yaml:"site"`
	Prune PruneSettings `yaml:"prune"`
}

// SiteInfo contains the site metadata rendered into the index page
// and used to build canonical links
type SiteInfo struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	BaseUrl     string `yaml:"base_url"`
}

// PruneSettings contains the thresholds of the prune rule
type PruneSettings struct {
	MinImpressions int `yaml:"min_impressions"`
	MinClicks      int `yaml:"min_clicks"`
}
