package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/learnhub/learnhub-api/internal/catalog"
	"github.com/learnhub/learnhub-api/internal/models"
	"github.com/learnhub/learnhub-api/internal/session"
)

type mockEnrollmentRepo struct {
	listResult   []models.Enrollment
	listErr      error
	findResult   *models.Enrollment
	findErr      error
	createErr    error
	updateErr    error
	updateCalled bool
}

func (m *mockEnrollmentRepo) ListByUser(ctx context.Context, userID string) ([]models.Enrollment, error) {
	return m.listResult, m.listErr
}

func (m *mockEnrollmentRepo) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.findResult, nil
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if m.createErr != nil {
		return m.createErr
	}
	enrollment.ID = "enr-new"
	enrollment.EnrolledAt = time.Now().UTC()
	enrollment.LastAccessed = enrollment.EnrolledAt
	return nil
}

func (m *mockEnrollmentRepo) UpdateProgress(ctx context.Context, userID, courseID string, progress int, lastAccessed time.Time, completedAt *time.Time) error {
	m.updateCalled = true
	return m.updateErr
}

func newEnrollmentFixture(repo *mockEnrollmentRepo) (*EnrollmentService, *session.Broker) {
	broker := session.NewBroker()
	svc := NewEnrollmentService(repo, catalog.Default(), broker, zap.NewNop())
	return svc, broker
}

func TestEnrollmentServiceLoadReplacesCache(t *testing.T) {
	repo := &mockEnrollmentRepo{listResult: []models.Enrollment{
		{ID: "enr-2", UserID: "u1", CourseID: "2", Progress: 40},
		{ID: "enr-1", UserID: "u1", CourseID: "1", Progress: 100},
	}}
	svc, _ := newEnrollmentFixture(repo)

	require.NoError(t, svc.Load(context.Background(), "u1"))
	assert.Len(t, svc.Enrollments("u1"), 2)

	repo.listResult = []models.Enrollment{{ID: "enr-2", UserID: "u1", CourseID: "2", Progress: 40}}
	require.NoError(t, svc.Load(context.Background(), "u1"))
	assert.Len(t, svc.Enrollments("u1"), 1)
}

func TestEnrollmentServiceLoadErrorKeepsPreviousCache(t *testing.T) {
	repo := &mockEnrollmentRepo{listResult: []models.Enrollment{{ID: "enr-1", UserID: "u1", CourseID: "1"}}}
	svc, _ := newEnrollmentFixture(repo)
	require.NoError(t, svc.Load(context.Background(), "u1"))

	repo.listErr = errors.New("connection reset")
	require.Error(t, svc.Load(context.Background(), "u1"))
	assert.Len(t, svc.Enrollments("u1"), 1)
}

func TestEnrollmentServiceLoadNoRowsClearsCache(t *testing.T) {
	repo := &mockEnrollmentRepo{listResult: []models.Enrollment{{ID: "enr-1", UserID: "u1", CourseID: "1"}}}
	svc, _ := newEnrollmentFixture(repo)
	require.NoError(t, svc.Load(context.Background(), "u1"))

	repo.listResult = nil
	repo.listErr = sql.ErrNoRows
	require.NoError(t, svc.Load(context.Background(), "u1"))
	assert.Empty(t, svc.Enrollments("u1"))
}

func TestEnrollmentServiceEnrollPrependsToCache(t *testing.T) {
	repo := &mockEnrollmentRepo{
		listResult: []models.Enrollment{{ID: "enr-1", UserID: "u1", CourseID: "1", Progress: 30}},
		findErr:    sql.ErrNoRows,
	}
	svc, _ := newEnrollmentFixture(repo)
	require.NoError(t, svc.Load(context.Background(), "u1"))

	enrollment, err := svc.Enroll(context.Background(), "u1", "2")
	require.NoError(t, err)
	assert.Equal(t, 0, enrollment.Progress)

	cached := svc.Enrollments("u1")
	require.Len(t, cached, 2)
	assert.Equal(t, "2", cached[0].CourseID)
	assert.Equal(t, "1", cached[1].CourseID)
}

func TestEnrollmentServiceEnrollUnknownCourse(t *testing.T) {
	repo := &mockEnrollmentRepo{findErr: sql.ErrNoRows}
	svc, _ := newEnrollmentFixture(repo)

	_, err := svc.Enroll(context.Background(), "u1", "999")
	require.Error(t, err)
	assert.Empty(t, svc.Enrollments("u1"))
}

func TestEnrollmentServiceEnrollDuplicate(t *testing.T) {
	repo := &mockEnrollmentRepo{findResult: &models.Enrollment{ID: "enr-1", UserID: "u1", CourseID: "1"}}
	svc, _ := newEnrollmentFixture(repo)

	_, err := svc.Enroll(context.Background(), "u1", "1")
	require.Error(t, err)
	assert.Empty(t, svc.Enrollments("u1"))
}

func TestEnrollmentServiceUpdateProgressValidatesRange(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	svc, _ := newEnrollmentFixture(repo)

	_, err := svc.UpdateProgress(context.Background(), "u1", "1", -1)
	require.Error(t, err)
	_, err = svc.UpdateProgress(context.Background(), "u1", "1", 101)
	require.Error(t, err)
	assert.False(t, repo.updateCalled)
}

func TestEnrollmentServiceUpdateProgressCompletion(t *testing.T) {
	repo := &mockEnrollmentRepo{listResult: []models.Enrollment{{ID: "enr-1", UserID: "u1", CourseID: "1", Progress: 50}}}
	svc, _ := newEnrollmentFixture(repo)
	require.NoError(t, svc.Load(context.Background(), "u1"))

	updated, err := svc.UpdateProgress(context.Background(), "u1", "1", 100)
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)

	updated, err = svc.UpdateProgress(context.Background(), "u1", "1", 50)
	require.NoError(t, err)
	assert.Nil(t, updated.CompletedAt)
	assert.Equal(t, 50, updated.Progress)
}

func TestEnrollmentServiceStats(t *testing.T) {
	repo := &mockEnrollmentRepo{listResult: []models.Enrollment{
		{ID: "a", CourseID: "1", Progress: 0},
		{ID: "b", CourseID: "2", Progress: 50},
		{ID: "c", CourseID: "3", Progress: 100},
	}}
	svc, _ := newEnrollmentFixture(repo)
	require.NoError(t, svc.Load(context.Background(), "u1"))

	stats := svc.Stats("u1")
	assert.Equal(t, 3, stats.EnrolledCount)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 50, stats.AverageProgress)
}

func TestEnrollmentServiceStatsEmpty(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	svc, _ := newEnrollmentFixture(repo)

	stats := svc.Stats("u1")
	assert.Equal(t, 0, stats.EnrolledCount)
	assert.Equal(t, 0, stats.CompletedCount)
	assert.Equal(t, 0, stats.AverageProgress)
}

func TestEnrollmentServiceSessionLifecycle(t *testing.T) {
	repo := &mockEnrollmentRepo{listResult: []models.Enrollment{{ID: "enr-1", UserID: "u1", CourseID: "1"}}}
	svc, broker := newEnrollmentFixture(repo)

	broker.Publish(session.Event{Kind: session.SignedIn, UserID: "u1"})
	assert.Len(t, svc.Enrollments("u1"), 1)
	assert.True(t, svc.IsEnrolled("u1", "1"))

	broker.Publish(session.Event{Kind: session.SignedOut, UserID: "u1"})
	assert.Empty(t, svc.Enrollments("u1"))
	assert.False(t, svc.IsEnrolled("u1", "1"))
}
