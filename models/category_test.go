package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoryCategoriesOrder(t *testing.T) {
	assert.Equal(t, []StoryCategory{
		"travel", "food", "history", "culture", "nature", "urban", "personal",
	}, StoryCategories())
}

func TestCategoryValid(t *testing.T) {
	for _, c := range StoryCategories() {
		assert.True(t, c.Valid(), "expected %q to be valid", c)
	}

	invalid := []string{
		"",
		"Travel",
		"TRAVEL",
		" travel",
		"travel ",
		"sports",
		"trave",
	}
	for _, c := range invalid {
		assert.False(t, StoryCategory(c).Valid(), "expected %q to be invalid", c)
	}
}

func TestCategoryCheckConstraint(t *testing.T) {
	want := "category IN ('travel', 'food', 'history', 'culture', 'nature', 'urban', 'personal')"
	assert.Equal(t, want, CategoryCheckConstraint())
}
