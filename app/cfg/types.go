package cfg

type Cfg struct {
	// Job selection
	Command string

	// Input sources
	KeywordsPath string
	MetricsPath  string

	// Output destinations
	SiteDir       string
	PruneListPath string

	// Application configuration
	ConfigFile string
	BaseUrl    string
	DBPath     string

	// Application metadata
	Debug   bool
	Version string
}
