package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
)

var keywordColumns = []string{"slug", "question", "short_answer", "offer_url", "cta_text"}

// KeywordLoader parses the keywords source into an ordered list of records
type KeywordLoader struct{}

func NewKeywordLoader() *KeywordLoader {
	return &KeywordLoader{}
}

// Run reads the keywords source, preserving input order. Cells are trimmed;
// no further validation is applied, so an empty slug passes through.
func (l *KeywordLoader) Run(r io.Reader) ([]Keyword, error) {
	reader := csv.NewReader(r)

	index, err := readHeader(reader, "keywords", keywordColumns)
	if err != nil {
		return nil, err
	}

	var keywords []Keyword
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		keywords = append(keywords, Keyword{
			Slug:        cleanCell(row[index["slug"]]),
			Question:    cleanCell(row[index["question"]]),
			ShortAnswer: cleanCell(row[index["short_answer"]]),
			OfferURL:    cleanCell(row[index["offer_url"]]),
			CTAText:     cleanCell(row[index["cta_text"]]),
		})
	}

	return keywords, nil
}
