package models

import "time"

// Enrollment captures a user's registration and progress for one course.
// completed_at is set iff progress reaches 100 and cleared when it drops
// back below.
type Enrollment struct {
	ID           string     `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"user_id"`
	CourseID     string     `db:"course_id" json:"course_id"`
	Progress     int        `db:"progress" json:"progress"`
	EnrolledAt   time.Time  `db:"enrolled_at" json:"enrolled_at"`
	CompletedAt  *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	LastAccessed time.Time  `db:"last_accessed" json:"last_accessed"`
}

// EnrollmentStats aggregates a user's cached enrollments on demand.
type EnrollmentStats struct {
	EnrolledCount   int `json:"enrolled_count"`
	CompletedCount  int `json:"completed_count"`
	AverageProgress int `json:"average_progress"`
}
