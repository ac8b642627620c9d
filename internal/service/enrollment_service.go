package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/learnhub/learnhub-api/internal/models"
	"github.com/learnhub/learnhub-api/internal/session"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
)

type enrollmentRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Enrollment, error)
	FindByUserAndCourse(ctx context.Context, userID, courseID string) (*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	UpdateProgress(ctx context.Context, userID, courseID string, progress int, lastAccessed time.Time, completedAt *time.Time) error
}

type courseCatalog interface {
	CourseByID(id string) (models.Course, bool)
}

// EnrollmentService caches each signed-in user's enrollment records and
// answers derived queries without re-fetching. The cache is replaced
// wholesale on load, mutated only by successful collaborator calls, and
// cleared the moment the user signs out.
type EnrollmentService struct {
	repo    enrollmentRepository
	catalog courseCatalog
	logger  *zap.Logger

	mu    sync.RWMutex
	cache map[string][]models.Enrollment
}

// NewEnrollmentService constructs EnrollmentService and subscribes it to
// session-change events.
func NewEnrollmentService(repo enrollmentRepository, catalog courseCatalog, sessions *session.Broker, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &EnrollmentService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
		cache:   make(map[string][]models.Enrollment),
	}
	if sessions != nil {
		sessions.Subscribe(func(evt session.Event) {
			switch evt.Kind {
			case session.SignedIn:
				if err := s.Load(context.Background(), evt.UserID); err != nil {
					s.logger.Warn("failed to load enrollments on sign-in", zap.String("user_id", evt.UserID), zap.Error(err))
				}
			case session.SignedOut:
				s.Clear(evt.UserID)
			}
		})
	}
	return s
}

// Load fetches all of the user's enrollments, most recent first, and
// replaces the cached set wholesale. A fetch failure leaves the previous
// cache untouched so already-displayed state survives transient errors.
func (s *EnrollmentService) Load(ctx context.Context, userID string) error {
	enrollments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.replace(userID, nil)
			return nil
		}
		s.logger.Warn("failed to fetch enrollments", zap.String("user_id", userID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch enrollments")
	}
	s.replace(userID, enrollments)
	return nil
}

// Enroll registers the user for a course with zero progress and prepends
// the new record to the cache. Failures leave the cache unchanged.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	if _, ok := s.catalog.CourseByID(courseID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	if _, err := s.repo.FindByUserAndCourse(ctx, userID, courseID); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "already enrolled in this course")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment")
	}

	enrollment := &models.Enrollment{UserID: userID, CourseID: courseID, Progress: 0}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enroll")
	}

	s.mu.Lock()
	s.cache[userID] = append([]models.Enrollment{*enrollment}, s.cache[userID]...)
	s.mu.Unlock()

	return enrollment, nil
}

// UpdateProgress sets the enrollment's progress, stamps last_accessed and
// sets completed_at iff progress is 100 (clearing it otherwise). Progress
// outside [0,100] is rejected before the collaborator is contacted.
func (s *EnrollmentService) UpdateProgress(ctx context.Context, userID, courseID string, progress int) (*models.Enrollment, error) {
	if progress < 0 || progress > 100 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "progress must be between 0 and 100")
	}

	now := time.Now().UTC()
	var completedAt *time.Time
	if progress == 100 {
		completedAt = &now
	}

	if err := s.repo.UpdateProgress(ctx, userID, courseID, progress, now, completedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "not enrolled in this course")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update progress")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.cache[userID]
	for i := range records {
		if records[i].CourseID == courseID {
			records[i].Progress = progress
			records[i].LastAccessed = now
			records[i].CompletedAt = completedAt
			updated := records[i]
			return &updated, nil
		}
	}

	// Cache was never loaded for this user; return the collaborator's view.
	updated := models.Enrollment{UserID: userID, CourseID: courseID, Progress: progress, LastAccessed: now, CompletedAt: completedAt}
	return &updated, nil
}

// IsEnrolled reports whether any cached record matches the course.
func (s *EnrollmentService) IsEnrolled(userID, courseID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.cache[userID] {
		if e.CourseID == courseID {
			return true
		}
	}
	return false
}

// GetEnrollment returns the cached record for the course, if any.
func (s *EnrollmentService) GetEnrollment(userID, courseID string) (*models.Enrollment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.cache[userID] {
		if e.CourseID == courseID {
			found := e
			return &found, true
		}
	}
	return nil, false
}

// Enrollments returns the cached records, most recent first.
func (s *EnrollmentService) Enrollments(userID string) []models.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.cache[userID]
	out := make([]models.Enrollment, len(records))
	copy(out, records)
	return out
}

// Stats computes aggregates over the cached records on demand. The
// average is the rounded mean of all progress values, 0 for an empty cache.
func (s *EnrollmentService) Stats(userID string) models.EnrollmentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.cache[userID]

	stats := models.EnrollmentStats{EnrolledCount: len(records)}
	if len(records) == 0 {
		return stats
	}

	sum := 0
	for _, e := range records {
		sum += e.Progress
		if e.Progress == 100 {
			stats.CompletedCount++
		}
	}
	stats.AverageProgress = int(math.Round(float64(sum) / float64(len(records))))
	return stats
}

// Clear drops the user's cached records, e.g. on sign-out.
func (s *EnrollmentService) Clear(userID string) {
	s.mu.Lock()
	delete(s.cache, userID)
	s.mu.Unlock()
}

func (s *EnrollmentService) replace(userID string, enrollments []models.Enrollment) {
	s.mu.Lock()
	s.cache[userID] = enrollments
	s.mu.Unlock()
}
