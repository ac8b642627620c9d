package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/learnhub/learnhub-api/internal/models"
)

// EnrollmentRepository handles persistence of course enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// ListByUser returns all enrollments for a user, most recent first.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]models.Enrollment, error) {
	const query = `SELECT id, user_id, course_id, progress, enrolled_at, completed_at, last_accessed
        FROM course_enrollments WHERE user_id = $1 ORDER BY enrolled_at DESC`
	var enrollments []models.Enrollment
	if err := r.db.SelectContext(ctx, &enrollments, query, userID); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// FindByUserAndCourse returns the enrollment for a (user, course) pair.
func (r *EnrollmentRepository) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	const query = `SELECT id, user_id, course_id, progress, enrolled_at, completed_at, last_accessed
        FROM course_enrollments WHERE user_id = $1 AND course_id = $2`
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, userID, courseID); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Create persists a new enrollment with zero progress.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = now
	}
	if enrollment.LastAccessed.IsZero() {
		enrollment.LastAccessed = now
	}
	const query = `INSERT INTO course_enrollments (id, user_id, course_id, progress, enrolled_at, completed_at, last_accessed)
        VALUES (:id, :user_id, :course_id, :progress, :enrolled_at, :completed_at, :last_accessed)`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// UpdateProgress sets progress and last_accessed, and sets or clears
// completed_at. Returns sql.ErrNoRows when no matching enrollment exists.
func (r *EnrollmentRepository) UpdateProgress(ctx context.Context, userID, courseID string, progress int, lastAccessed time.Time, completedAt *time.Time) error {
	const query = `UPDATE course_enrollments SET progress = $3, last_accessed = $4, completed_at = $5
        WHERE user_id = $1 AND course_id = $2`
	res, err := r.db.ExecContext(ctx, query, userID, courseID, progress, lastAccessed, completedAt)
	if err != nil {
		return fmt.Errorf("update enrollment progress: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update enrollment progress: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
