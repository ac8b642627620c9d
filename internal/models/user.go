package models

import "time"

// LearningLevel mirrors the difficulty scale used across courses and profiles.
type LearningLevel string

const (
	LevelBeginner     LearningLevel = "Beginner"
	LevelIntermediate LearningLevel = "Intermediate"
	LevelAdvanced     LearningLevel = "Advanced"
)

// LevelAll is the filter sentinel matching every course level.
const LevelAll = "All Levels"

// UserProfile represents a learner stored in the user_profiles table.
type UserProfile struct {
	ID            string        `db:"id" json:"id"`
	Email         string        `db:"email" json:"email"`
	PasswordHash  string        `db:"password_hash" json:"-"`
	FullName      string        `db:"full_name" json:"full_name"`
	AvatarURL     *string       `db:"avatar_url" json:"avatar_url,omitempty"`
	LearningLevel LearningLevel `db:"learning_level" json:"learning_level"`
	LastLogin     *time.Time    `db:"last_login" json:"last_login,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}
