package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/learnhub/learnhub-api/internal/models"
)

// SubscriptionRepository reads subscription snapshots recorded by the
// payment webhook.
type SubscriptionRepository struct {
	db *sqlx.DB
}

// NewSubscriptionRepository constructs the repository.
func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// ListByUser returns the user's live snapshots. The contract allows at most
// one; LIMIT 2 lets the caller detect a violation without scanning the
// whole table.
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]models.SubscriptionSnapshot, error) {
	const query = `SELECT customer_id, subscription_id, subscription_status, price_id,
        current_period_start, current_period_end, cancel_at_period_end,
        payment_method_brand, payment_method_last4
        FROM user_subscriptions WHERE user_id = $1 LIMIT 2`
	var snapshots []models.SubscriptionSnapshot
	if err := r.db.SelectContext(ctx, &snapshots, query, userID); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return snapshots, nil
}
