package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the site configuration
type Loader struct {
	path string
}

// NewLoader creates a new configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the site configuration file. A missing file is not an error:
// the defaults describe a complete site on their own.
func (l *Loader) Load() (*SiteConfig, error) {
	var config SiteConfig

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			l.setDefaults(&config)
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&config)

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	return &config, nil
}

// setDefaults applies default values to configuration
func (l *Loader) setDefaults(config *SiteConfig) {
	if config.Site.Title == "" {
		config.Site.Title = "Answer Library"
	}
	if config.Site.Description == "" {
		config.Site.Description = "Browse quick answers and recommended offers."
	}
	if config.Site.BaseUrl == "" {
		config.Site.BaseUrl = "https://example.com"
	}
}

// validate validates the configuration
func (l *Loader) validate(config *SiteConfig) error {
	if config.Prune.MinImpressions < 0 {
		return fmt.Errorf("min impressions must be non-negative")
	}
	if config.Prune.MinClicks < 0 {
		return fmt.Errorf("min clicks must be non-negative")
	}
	return nil
}
