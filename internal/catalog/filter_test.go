package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/learnhub-api/internal/models"
)

func courseIDs(courses []models.Course) []string {
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}

func TestFilterCoursesEmptyCriteriaReturnsAll(t *testing.T) {
	all := Default().Courses()
	filtered := FilterCourses(all, models.FilterCriteria{})
	assert.Equal(t, courseIDs(all), courseIDs(filtered))
}

func TestFilterCoursesAllLevelsSentinel(t *testing.T) {
	all := Default().Courses()
	filtered := FilterCourses(all, models.FilterCriteria{Level: models.LevelAll})
	assert.Equal(t, courseIDs(all), courseIDs(filtered))
}

func TestFilterCoursesByCategory(t *testing.T) {
	filtered := FilterCourses(Default().Courses(), models.FilterCriteria{Category: "programming"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)
}

func TestFilterCoursesByLevelPreservesOrder(t *testing.T) {
	filtered := FilterCourses(Default().Courses(), models.FilterCriteria{Level: string(models.LevelAdvanced)})
	assert.Equal(t, []string{"2", "4", "6", "7"}, courseIDs(filtered))
}

func TestFilterCoursesSearchCaseInsensitive(t *testing.T) {
	lower := FilterCourses(Default().Courses(), models.FilterCriteria{SearchTerm: "react"})
	upper := FilterCourses(Default().Courses(), models.FilterCriteria{SearchTerm: "REACT"})
	assert.Equal(t, courseIDs(lower), courseIDs(upper))
	assert.Contains(t, courseIDs(lower), "2")
	assert.Contains(t, courseIDs(lower), "5")
}

func TestFilterCoursesSearchMatchesSkills(t *testing.T) {
	filtered := FilterCourses(Default().Courses(), models.FilterCriteria{SearchTerm: "pandas"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
}

func TestFilterCoursesCriteriaCombineWithAnd(t *testing.T) {
	criteria := models.FilterCriteria{
		Category:   "web-dev",
		Level:      string(models.LevelAdvanced),
		SearchTerm: "mongodb",
	}
	filtered := FilterCourses(Default().Courses(), criteria)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)
}

func TestFilterCoursesEmptyResultIsValid(t *testing.T) {
	filtered := FilterCourses(Default().Courses(), models.FilterCriteria{SearchTerm: "no such course anywhere"})
	assert.Empty(t, filtered)
}

func TestFilterCoursesIsStable(t *testing.T) {
	criteria := models.FilterCriteria{Level: string(models.LevelIntermediate)}
	first := FilterCourses(Default().Courses(), criteria)
	second := FilterCourses(Default().Courses(), criteria)
	assert.Equal(t, courseIDs(first), courseIDs(second))
}
