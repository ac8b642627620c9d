package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/learnhub-api/internal/models"
)

func subscriptionColumns() []string {
	return []string{"customer_id", "subscription_id", "subscription_status", "price_id",
		"current_period_start", "current_period_end", "cancel_at_period_end",
		"payment_method_brand", "payment_method_last4"}
}

func TestSubscriptionRepositoryListByUserEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM user_subscriptions WHERE user_id = \\$1 LIMIT 2").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(subscriptionColumns()))

	snapshots, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Empty(t, snapshots)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepositoryListByUserReturnsUpToTwoRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubscriptionRepository(db)

	rows := sqlmock.NewRows(subscriptionColumns()).
		AddRow("cus_1", "sub_1", models.SubscriptionActive, "price_1", int64(1700000000), int64(1702592000), false, "visa", "4242").
		AddRow("cus_1", "sub_2", models.SubscriptionCanceled, "price_2", nil, nil, true, nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM user_subscriptions WHERE user_id = \\$1 LIMIT 2").
		WithArgs("user-1").
		WillReturnRows(rows)

	snapshots, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	require.Equal(t, models.SubscriptionActive, snapshots[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
