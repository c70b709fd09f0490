package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Input sources
	KeywordsPath string `long:"keywords" env:"KEYWORDS_PATH" default:"./data/keywords.csv" description:"Path to the keywords CSV source"`
	MetricsPath  string `long:"metrics" env:"METRICS_PATH" default:"./data/metrics.csv" description:"Path to the metrics CSV source"`

	// Output destinations
	SiteDir       string `long:"site-dir" env:"SITE_DIR" default:"./site" description:"Directory the generated site is written into"`
	PruneListPath string `long:"prune-list" env:"PRUNE_LIST_PATH" default:"./data/prune_list.txt" description:"Path the prune list is written to"`

	// Application configuration
	ConfigFile string `long:"config" env:"CONFIG_FILE" default:"./site.yaml" description:"Path to the site configuration file"`
	BaseUrl    string `long:"base-url" env:"BASE_URL" description:"Public base URL for canonical and sitemap links (overrides site.yaml)"`
	DBPath     string `long:"db-path" env:"DB_PATH" default:"./pagecomb.db" description:"Path to the build manifest database"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		Command string `positional-arg-name:"command" description:"Job to run: generate, prune or reconcile"`
	} `positional-args:"yes" required:"yes"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Command:       raw.Args.Command,
		KeywordsPath:  raw.KeywordsPath,
		MetricsPath:   raw.MetricsPath,
		SiteDir:       raw.SiteDir,
		PruneListPath: raw.PruneListPath,
		ConfigFile:    raw.ConfigFile,
		BaseUrl:       raw.BaseUrl,
		DBPath:        raw.DBPath,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
