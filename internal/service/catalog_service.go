package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/learnhub/learnhub-api/internal/catalog"
	"github.com/learnhub/learnhub-api/internal/models"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
)

const catalogCachePrefix = "catalog"

// CatalogService answers course, category, learning-path and instructor
// queries over the static catalog, with optional read-through caching of
// filtered course listings.
type CatalogService struct {
	store  *catalog.Store
	cache  *CacheService
	logger *zap.Logger
}

// NewCatalogService constructs a CatalogService instance.
func NewCatalogService(store *catalog.Store, cache *CacheService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{store: store, cache: cache, logger: logger}
}

// Courses returns the catalog filtered by the given criteria, preserving
// catalog order. Results are cached per criteria combination.
func (s *CatalogService) Courses(ctx context.Context, criteria models.FilterCriteria) []models.Course {
	key := s.coursesCacheKey(criteria)
	if s.cache.Enabled() {
		var cached []models.Course
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return cached
		}
	}

	filtered := catalog.FilterCourses(s.store.Courses(), criteria)

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, key, filtered, 0); err != nil {
			s.logger.Debug("failed to cache course listing", zap.String("key", key), zap.Error(err))
		}
	}
	return filtered
}

// Course returns a single course by identifier.
func (s *CatalogService) Course(id string) (models.Course, error) {
	course, ok := s.store.CourseByID(id)
	if !ok {
		return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// Categories returns the fixed category list in display order.
func (s *CatalogService) Categories() []models.CourseCategory {
	return s.store.Categories()
}

// LearningPaths returns every path with its course references resolved.
// References to unknown courses are dropped rather than failing the path.
func (s *CatalogService) LearningPaths() []models.LearningPathDetail {
	paths := s.store.Paths()
	out := make([]models.LearningPathDetail, 0, len(paths))
	for _, p := range paths {
		out = append(out, s.store.ResolvePath(p))
	}
	return out
}

// LearningPath returns a single resolved path by identifier.
func (s *CatalogService) LearningPath(id string) (models.LearningPathDetail, error) {
	path, ok := s.store.PathByID(id)
	if !ok {
		return models.LearningPathDetail{}, appErrors.Clone(appErrors.ErrNotFound, "learning path not found")
	}
	return s.store.ResolvePath(path), nil
}

// Instructors returns the instructor roster.
func (s *CatalogService) Instructors() []models.Instructor {
	return s.store.Instructors()
}

func (s *CatalogService) coursesCacheKey(criteria models.FilterCriteria) string {
	return fmt.Sprintf("%s:courses:%s:%s:%s",
		catalogCachePrefix,
		strings.ToLower(criteria.Category),
		strings.ToLower(criteria.Level),
		strings.ToLower(criteria.SearchTerm),
	)
}
