package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/learnhub/learnhub-api/internal/models"
)

// OrderRepository reads completed orders written by payment fulfillment.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository constructs the repository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// LatestByUser returns the user's most recent order. sql.ErrNoRows means
// the user has no orders yet, which the caller treats as a valid state.
func (r *OrderRepository) LatestByUser(ctx context.Context, userID string) (*models.Order, error) {
	const query = `SELECT id, user_id, checkout_session_id, payment_intent_id, amount_total, currency, payment_status, order_date
        FROM orders WHERE user_id = $1 ORDER BY order_date DESC LIMIT 1`
	var order models.Order
	if err := r.db.GetContext(ctx, &order, query, userID); err != nil {
		return nil, err
	}
	return &order, nil
}
