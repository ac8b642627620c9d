package catalog

import (
	"strings"

	"github.com/learnhub/learnhub-api/internal/models"
)

// FilterCourses returns the sublist of courses satisfying every criterion,
// preserving catalog order. It is pure: identical inputs yield identical,
// order-stable results, and an empty result is a valid outcome.
func FilterCourses(courses []models.Course, criteria models.FilterCriteria) []models.Course {
	term := strings.ToLower(criteria.SearchTerm)

	filtered := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if !matchesCategory(course, criteria.Category) {
			continue
		}
		if !matchesLevel(course, criteria.Level) {
			continue
		}
		if !matchesSearch(course, term) {
			continue
		}
		filtered = append(filtered, course)
	}
	return filtered
}

func matchesCategory(course models.Course, category string) bool {
	return category == "" || course.Category == category
}

func matchesLevel(course models.Course, level string) bool {
	return level == "" || level == models.LevelAll || string(course.Level) == level
}

func matchesSearch(course models.Course, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(course.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(course.Description), term) {
		return true
	}
	for _, skill := range course.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}
