package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// readHeader reads the header row and maps each required column to its
// position. Returns a SchemaError when required columns are absent; an
// empty source counts as missing every column.
func readHeader(r *csv.Reader, source string, required []string) (map[string]int, error) {
	header, err := r.Read()
	if err == io.EOF {
		missing := append([]string(nil), required...)
		sort.Strings(missing)
		return nil, &SchemaError{Source: source, Missing: missing}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Source: source, Missing: missing}
	}

	return index, nil
}

// cleanCell trims surrounding whitespace and normalizes to NFC so that
// visually identical source rows render byte-identically.
func cleanCell(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
