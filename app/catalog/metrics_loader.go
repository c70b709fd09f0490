package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var metricsColumns = []string{"slug", "impressions", "clicks", "conversions", "last_seen_date"}

// MetricsLoader parses the metrics source into an ordered list of records
type MetricsLoader struct{}

func NewMetricsLoader() *MetricsLoader {
	return &MetricsLoader{}
}

// Run reads the metrics source, preserving input order. Blank integer cells
// load as zero; any other non-integer content is a ParseError.
func (l *MetricsLoader) Run(r io.Reader) ([]Metrics, error) {
	reader := csv.NewReader(r)

	index, err := readHeader(reader, "metrics", metricsColumns)
	if err != nil {
		return nil, err
	}

	var entries []Metrics
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line++

		impressions, err := l.parseCount(row[index["impressions"]], "impressions", line)
		if err != nil {
			return nil, err
		}
		clicks, err := l.parseCount(row[index["clicks"]], "clicks", line)
		if err != nil {
			return nil, err
		}
		conversions, err := l.parseCount(row[index["conversions"]], "conversions", line)
		if err != nil {
			return nil, err
		}

		entries = append(entries, Metrics{
			Slug:         cleanCell(row[index["slug"]]),
			Impressions:  impressions,
			Clicks:       clicks,
			Conversions:  conversions,
			LastSeenDate: cleanCell(row[index["last_seen_date"]]),
		})
	}

	return entries, nil
}

// parseCount parses a counter cell as a base-10 non-negative integer,
// treating a blank or whitespace-only cell as zero.
func (l *MetricsLoader) parseCount(cell string, column string, line int) (int, error) {
	trimmed := cleanCell(cell)
	if trimmed == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil || value < 0 {
		return 0, &ParseError{Source: "metrics", Column: column, Value: trimmed, Line: line}
	}

	return value, nil
}
