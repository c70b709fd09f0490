package database

import (
	"time"
)

type Build struct {
	ID        int64
	StartedAt time.Time
	PageCount int
}

// Page is one manifest entry: a slug whose directory the generator has
// written at least once. Reconciliation only ever removes directories
// recorded here.
type Page struct {
	Slug         string
	FirstBuiltAt time.Time
	LastBuiltAt  time.Time
}
