package database

import (
	"time"
)

type BuildRepository interface {
	RecordBuild(startedAt time.Time, pageCount int) (int64, error)
	GetBuildCount() (int, error)

	UpsertPage(slug string, builtAt time.Time) error
	ListSlugs() ([]string, error)
	RemoveSlug(slug string) error
}
