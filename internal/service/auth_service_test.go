package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/learnhub/learnhub-api/internal/models"
	"github.com/learnhub/learnhub-api/internal/session"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
)

type mockUserRepo struct {
	userByEmail      *models.UserProfile
	userByID         *models.UserProfile
	created          *models.UserProfile
	lastLoginUpdated bool
	level            models.LearningLevel
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	if m.userByEmail == nil {
		return nil, sql.ErrNoRows
	}
	return m.userByEmail, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	if m.userByID != nil {
		return m.userByID, nil
	}
	if m.userByEmail != nil {
		return m.userByEmail, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.UserProfile) error {
	user.ID = "user-new"
	m.created = user
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	m.lastLoginUpdated = true
	return nil
}

func (m *mockUserRepo) UpdateLearningLevel(ctx context.Context, id string, level models.LearningLevel, updatedAt time.Time) error {
	m.level = level
	return nil
}

func authConfig() AuthConfig {
	return AuthConfig{TokenSecret: "secret", TokenExpiry: time.Hour, Issuer: "learnhub-api"}
}

func TestAuthServiceSignUp(t *testing.T) {
	repo := &mockUserRepo{}
	broker := session.NewBroker()
	var events []session.Event
	broker.Subscribe(func(evt session.Event) { events = append(events, evt) })
	svc := NewAuthService(repo, broker, validator.New(), zap.NewNop(), authConfig())

	res, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Email:    "alex@example.com",
		Password: "secret123",
		FullName: "Alex Doe",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "user-new", res.User.ID)

	require.NotNil(t, repo.created)
	assert.NotEqual(t, "secret123", repo.created.PasswordHash)

	require.Len(t, events, 1)
	assert.Equal(t, session.SignedIn, events[0].Kind)
	assert.Equal(t, "user-new", events[0].UserID)
}

func TestAuthServiceSignUpEmailTaken(t *testing.T) {
	repo := &mockUserRepo{userByEmail: &models.UserProfile{ID: "user-1", Email: "alex@example.com"}}
	svc := NewAuthService(repo, session.NewBroker(), validator.New(), zap.NewNop(), authConfig())

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Email:    "alex@example.com",
		Password: "secret123",
		FullName: "Alex Doe",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrEmailTaken.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceSignInSuccess(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := &mockUserRepo{userByEmail: &models.UserProfile{
		ID:           "user-1",
		Email:        "alex@example.com",
		PasswordHash: string(hash),
		FullName:     "Alex Doe",
	}}
	svc := NewAuthService(repo, session.NewBroker(), validator.New(), zap.NewNop(), authConfig())

	res, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "alex@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.True(t, repo.lastLoginUpdated)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
}

func TestAuthServiceSignInWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := &mockUserRepo{userByEmail: &models.UserProfile{ID: "user-1", Email: "alex@example.com", PasswordHash: string(hash)}}
	svc := NewAuthService(repo, session.NewBroker(), validator.New(), zap.NewNop(), authConfig())

	_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "alex@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceSignInUnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, session.NewBroker(), validator.New(), zap.NewNop(), authConfig())

	_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "ghost@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceSignOutPublishesEvent(t *testing.T) {
	broker := session.NewBroker()
	var events []session.Event
	broker.Subscribe(func(evt session.Event) { events = append(events, evt) })
	svc := NewAuthService(&mockUserRepo{}, broker, validator.New(), zap.NewNop(), authConfig())

	svc.SignOut(context.Background(), "user-1")

	require.Len(t, events, 1)
	assert.Equal(t, session.SignedOut, events[0].Kind)
	assert.Equal(t, "user-1", events[0].UserID)
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, session.NewBroker(), validator.New(), zap.NewNop(), authConfig())

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestAuthServiceUpdateLearningLevel(t *testing.T) {
	repo := &mockUserRepo{userByID: &models.UserProfile{ID: "user-1", LearningLevel: models.LevelBeginner}}
	svc := NewAuthService(repo, session.NewBroker(), validator.New(), zap.NewNop(), authConfig())

	_, err := svc.UpdateLearningLevel(context.Background(), "user-1", models.LevelAdvanced)
	require.NoError(t, err)
	assert.Equal(t, models.LevelAdvanced, repo.level)

	_, err = svc.UpdateLearningLevel(context.Background(), "user-1", models.LearningLevel("Expert"))
	require.Error(t, err)
}
