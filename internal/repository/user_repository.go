package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/learnhub/learnhub-api/internal/models"
)

// UserRepository handles persistence of user profiles.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs the repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the profile with the given email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	const query = `SELECT id, email, password_hash, full_name, avatar_url, learning_level, last_login, created_at, updated_at
        FROM user_profiles WHERE email = $1`
	var user models.UserProfile
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the profile with the given id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	const query = `SELECT id, email, password_hash, full_name, avatar_url, learning_level, last_login, created_at, updated_at
        FROM user_profiles WHERE id = $1`
	var user models.UserProfile
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create persists a new user profile.
func (r *UserRepository) Create(ctx context.Context, user *models.UserProfile) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	if user.LearningLevel == "" {
		user.LearningLevel = models.LevelBeginner
	}
	const query = `INSERT INTO user_profiles (id, email, password_hash, full_name, avatar_url, learning_level, created_at, updated_at)
        VALUES (:id, :email, :password_hash, :full_name, :avatar_url, :learning_level, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("create user profile: %w", err)
	}
	return nil
}

// UpdateLastLogin stamps the user's last sign-in time.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	const query = `UPDATE user_profiles SET last_login = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, ts); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// UpdateLearningLevel changes the user's self-assessed level.
func (r *UserRepository) UpdateLearningLevel(ctx context.Context, id string, level models.LearningLevel, updatedAt time.Time) error {
	const query = `UPDATE user_profiles SET learning_level = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, level, updatedAt); err != nil {
		return fmt.Errorf("update learning level: %w", err)
	}
	return nil
}
