package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/learnhub/learnhub-api/internal/catalog"
)

type mockCommunityRepo struct {
	counts map[string]int
	liked  map[string]bool
}

func newMockCommunityRepo() *mockCommunityRepo {
	return &mockCommunityRepo{counts: map[string]int{}, liked: map[string]bool{}}
}

func (m *mockCommunityRepo) LikeCounts(ctx context.Context, postIDs []string) (map[string]int, error) {
	return m.counts, nil
}

func (m *mockCommunityRepo) LikedByUser(ctx context.Context, userID string, postIDs []string) (map[string]bool, error) {
	return m.liked, nil
}

func (m *mockCommunityRepo) Like(ctx context.Context, postID, userID string) error {
	m.liked[postID] = true
	m.counts[postID]++
	return nil
}

func (m *mockCommunityRepo) Unlike(ctx context.Context, postID, userID string) error {
	delete(m.liked, postID)
	m.counts[postID]--
	return nil
}

func (m *mockCommunityRepo) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	return m.liked[postID], nil
}

func (m *mockCommunityRepo) LikeCount(ctx context.Context, postID string) (int, error) {
	return m.counts[postID], nil
}

func TestCommunityServicePostsMergesLikeState(t *testing.T) {
	repo := newMockCommunityRepo()
	repo.counts["post-1"] = 5
	repo.liked["post-1"] = true
	svc := NewCommunityService(catalog.Default(), repo, nil, zap.NewNop())

	posts, err := svc.Posts(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, posts)

	assert.Equal(t, "post-1", posts[0].ID)
	assert.Equal(t, 5, posts[0].Likes)
	assert.True(t, posts[0].Liked)
	for _, p := range posts[1:] {
		assert.Equal(t, 0, p.Likes)
		assert.False(t, p.Liked)
	}
}

func TestCommunityServicePostsAnonymousViewer(t *testing.T) {
	repo := newMockCommunityRepo()
	repo.counts["post-1"] = 2
	repo.liked["post-1"] = true
	svc := NewCommunityService(catalog.Default(), repo, nil, zap.NewNop())

	posts, err := svc.Posts(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, posts)

	assert.Equal(t, 2, posts[0].Likes)
	assert.False(t, posts[0].Liked)
}

func TestCommunityServiceToggleLike(t *testing.T) {
	repo := newMockCommunityRepo()
	svc := NewCommunityService(catalog.Default(), repo, nil, zap.NewNop())

	result, err := svc.ToggleLike(context.Background(), "post-1", "user-1")
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.Likes)

	result, err = svc.ToggleLike(context.Background(), "post-1", "user-1")
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 0, result.Likes)
}

func TestCommunityServiceToggleLikeUnknownPost(t *testing.T) {
	svc := NewCommunityService(catalog.Default(), newMockCommunityRepo(), nil, zap.NewNop())

	_, err := svc.ToggleLike(context.Background(), "post-missing", "user-1")
	require.Error(t, err)
}
