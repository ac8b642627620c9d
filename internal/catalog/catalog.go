package catalog

import (
	"github.com/learnhub/learnhub-api/internal/models"
)

// Store holds the static catalog reference data: courses, categories,
// learning paths and the instructor directory. It is built once at
// startup and never mutated afterwards.
type Store struct {
	courses     []models.Course
	categories  []models.CourseCategory
	paths       []models.LearningPath
	instructors []models.Instructor
	posts       []models.CommunityPost

	courseByID map[string]models.Course
	pathByID   map[string]models.LearningPath
}

// NewStore builds a Store from the provided reference data.
func NewStore(courses []models.Course, categories []models.CourseCategory, paths []models.LearningPath, instructors []models.Instructor, posts []models.CommunityPost) *Store {
	s := &Store{
		courses:     courses,
		categories:  categories,
		paths:       paths,
		instructors: instructors,
		posts:       posts,
		courseByID:  make(map[string]models.Course, len(courses)),
		pathByID:    make(map[string]models.LearningPath, len(paths)),
	}
	for _, c := range courses {
		s.courseByID[c.ID] = c
	}
	for _, p := range paths {
		s.pathByID[p.ID] = p
	}
	return s
}

// Default returns a Store seeded with the built-in catalog.
func Default() *Store {
	return NewStore(seedCourses, seedCategories, seedPaths, seedInstructors, seedPosts)
}

// Courses returns all courses in catalog order.
func (s *Store) Courses() []models.Course {
	return s.courses
}

// CourseByID looks up a single course.
func (s *Store) CourseByID(id string) (models.Course, bool) {
	c, ok := s.courseByID[id]
	return c, ok
}

// Categories returns all course categories.
func (s *Store) Categories() []models.CourseCategory {
	return s.categories
}

// Paths returns all learning paths.
func (s *Store) Paths() []models.LearningPath {
	return s.paths
}

// PathByID looks up a single learning path.
func (s *Store) PathByID(id string) (models.LearningPath, bool) {
	p, ok := s.pathByID[id]
	return p, ok
}

// ResolvePath expands a learning path's course ids into course records.
// Ids that do not resolve are silently dropped.
func (s *Store) ResolvePath(path models.LearningPath) models.LearningPathDetail {
	detail := models.LearningPathDetail{LearningPath: path, Courses: make([]models.Course, 0, len(path.CourseIDs))}
	for _, id := range path.CourseIDs {
		if c, ok := s.courseByID[id]; ok {
			detail.Courses = append(detail.Courses, c)
		}
	}
	return detail
}

// Instructors returns the instructor directory.
func (s *Store) Instructors() []models.Instructor {
	return s.instructors
}

// Posts returns the community post seeds.
func (s *Store) Posts() []models.CommunityPost {
	return s.posts
}

// PostByID looks up a community post seed.
func (s *Store) PostByID(id string) (models.CommunityPost, bool) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.CommunityPost{}, false
}
