package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geostory-backend/models"
)

// The category check constraint in the schema must stay textually
// derivable from the category list; this catches one-sided edits.
func TestCategoryConstraintMatchesModel(t *testing.T) {
	ddl, err := Migrations.ReadFile("00001_initial_schema.sql")
	require.NoError(t, err)

	assert.Contains(t, string(ddl), models.CategoryCheckConstraint())
}

func TestInitialMigrationNamesConstraints(t *testing.T) {
	ddl, err := Migrations.ReadFile("00001_initial_schema.sql")
	require.NoError(t, err)

	for _, name := range []string{
		"stories_category_check",
		"stories_latitude_check",
		"stories_longitude_check",
		"update_stories_updated_at",
	} {
		assert.Contains(t, string(ddl), name)
	}
}
