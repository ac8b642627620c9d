package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/learnhub/learnhub-api/internal/models"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
)

type orderRepository interface {
	LatestByUser(ctx context.Context, userID string) (*models.Order, error)
}

// OrderService reads completed orders for the post-checkout success page.
type OrderService struct {
	repo orderRepository
}

// NewOrderService constructs an OrderService instance.
func NewOrderService(repo orderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Latest returns the user's most recent order. Having no orders yet is a
// valid state and surfaces as not found.
func (s *OrderService) Latest(ctx context.Context, userID string) (*models.Order, error) {
	order, err := s.repo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no orders found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load order")
	}
	return order, nil
}
