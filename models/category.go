package models

import "strings"

// StoryCategory is one of the fixed descriptive tags a story may carry.
//
// This list is the single source of truth for categories. It is used by
// request validation and by the stories_category_check constraint in the
// initial migration; adding a category means adding a constant here and
// issuing a migration that recreates the constraint.
type StoryCategory string

const (
	CategoryTravel   StoryCategory = "travel"
	CategoryFood     StoryCategory = "food"
	CategoryHistory  StoryCategory = "history"
	CategoryCulture  StoryCategory = "culture"
	CategoryNature   StoryCategory = "nature"
	CategoryUrban    StoryCategory = "urban"
	CategoryPersonal StoryCategory = "personal"
)

// StoryCategories returns all categories in declaration order.
func StoryCategories() []StoryCategory {
	return []StoryCategory{
		CategoryTravel,
		CategoryFood,
		CategoryHistory,
		CategoryCulture,
		CategoryNature,
		CategoryUrban,
		CategoryPersonal,
	}
}

// Valid reports whether c is exactly one of the known categories.
// Matching is case-sensitive and tolerates no surrounding whitespace.
func (c StoryCategory) Valid() bool {
	for _, known := range StoryCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryCheckConstraint renders the SQL CHECK expression enforcing the
// category set, e.g. category IN ('travel', 'food', ...). The migration
// DDL for stories_category_check is derived from this exact text.
func CategoryCheckConstraint() string {
	values := make([]string, 0, len(StoryCategories()))
	for _, c := range StoryCategories() {
		values = append(values, string(c))
	}
	return "category IN ('" + strings.Join(values, "', '") + "')"
}
