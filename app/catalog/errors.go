package catalog

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns absent from a source's header row.
// Missing is sorted alphabetically.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing columns in %s source: %s", e.Source, strings.Join(e.Missing, ", "))
}

// ParseError reports a numeric cell whose content is not a valid
// non-negative integer.
type ParseError struct {
	Source string
	Column string
	Value  string
	Line   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s source line %d: column %q: invalid non-negative integer %q", e.Source, e.Line, e.Column, e.Value)
}
