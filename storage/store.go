// Package storage provides the persistence operations for stories and
// photos behind a small interface, with a PostgreSQL implementation and
// an in-memory implementation for tests and local development.
package storage

import (
	"context"

	"github.com/google/uuid"

	"geostory-backend/models"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListFilter is the filter specification for listing stories. All
// predicates are optional and AND-combined; an absent predicate imposes
// no constraint.
type ListFilter struct {
	Category *models.StoryCategory
	DateFrom *models.Date
	DateTo   *models.Date
	Query    string // case-insensitive substring match on title or body
	Order    string // OrderAsc or OrderDesc (default)
	Limit    int
	Offset   int
}

// StoryStore is the persistence contract used by the HTTP handlers.
// Implementations must enforce uniqueness and referential invariants
// transactionally; failed writes leave nothing partially visible.
type StoryStore interface {
	// CreateStory persists a validated story and returns it with all
	// store-generated fields (id, timestamps) populated and an empty
	// photo list.
	CreateStory(ctx context.Context, story *models.Story) (*models.Story, error)

	// GetStory returns one story with its photos in ordinal order, or
	// ErrNotFound.
	GetStory(ctx context.Context, id uuid.UUID) (*models.Story, error)

	// ListStories returns one page of matching stories plus the total
	// count of matches ignoring the pagination window. Read-only.
	ListStories(ctx context.Context, filter ListFilter) ([]models.Story, int64, error)

	// UpdateStory applies a partial column update (column name → new
	// value, nil to clear) and returns the refreshed story.
	UpdateStory(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Story, error)

	// DeleteStory removes a story and, by cascade, all its photos.
	DeleteStory(ctx context.Context, id uuid.UUID) error

	// AddPhoto attaches photo metadata to an existing story.
	AddPhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error)
}
