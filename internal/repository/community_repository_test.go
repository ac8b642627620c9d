package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestCommunityRepositoryLikeCounts(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCommunityRepository(db)

	rows := sqlmock.NewRows([]string{"post_id", "likes"}).
		AddRow("p1", 3).
		AddRow("p3", 1)
	mock.ExpectQuery("SELECT post_id, COUNT\\(\\*\\) AS likes FROM community_post_likes").
		WithArgs("p1", "p2", "p3").
		WillReturnRows(rows)

	counts, err := repo.LikeCounts(context.Background(), []string{"p1", "p2", "p3"})
	require.NoError(t, err)
	require.Equal(t, 3, counts["p1"])
	require.Equal(t, 1, counts["p3"])
	_, ok := counts["p2"]
	require.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepositoryLikeCountsEmptyInput(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCommunityRepository(db)

	counts, err := repo.LikeCounts(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, counts)
}

func TestCommunityRepositoryLikedByUser(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCommunityRepository(db)

	rows := sqlmock.NewRows([]string{"post_id"}).AddRow("p2")
	mock.ExpectQuery("SELECT post_id FROM community_post_likes").
		WithArgs("user-1", "p1", "p2").
		WillReturnRows(rows)

	liked, err := repo.LikedByUser(context.Background(), "user-1", []string{"p1", "p2"})
	require.NoError(t, err)
	require.True(t, liked["p2"])
	require.False(t, liked["p1"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepositoryLikeIsIdempotent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCommunityRepository(db)

	mock.ExpectExec("INSERT INTO community_post_likes").
		WithArgs("p1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Like(context.Background(), "p1", "user-1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepositoryHasLiked(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCommunityRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM community_post_likes WHERE post_id = \\$1 AND user_id = \\$2").
		WithArgs("p1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	liked, err := repo.HasLiked(context.Background(), "p1", "user-1")
	require.NoError(t, err)
	require.True(t, liked)
	require.NoError(t, mock.ExpectationsWereMet())
}
