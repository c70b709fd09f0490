package catalog

// Keyword is one row of the keywords source, representing one answer page.
// All fields are trimmed and NFC-normalized at load time; the record is
// never mutated afterwards.
type Keyword struct {
	Slug        string // URL path segment and output directory name
	Question    string
	ShortAnswer string
	OfferURL    string
	CTAText     string
}

// Metrics is one row of the metrics source. Blank integer cells load as zero.
type Metrics struct {
	Slug         string
	Impressions  int
	Clicks       int
	Conversions  int
	LastSeenDate string // loaded but not part of the prune decision
}
