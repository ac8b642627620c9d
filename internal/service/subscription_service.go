package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/learnhub/learnhub-api/internal/billing"
	"github.com/learnhub/learnhub-api/internal/models"
	"github.com/learnhub/learnhub-api/internal/session"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
)

// UnknownPlanName is reported when a snapshot carries a price id the
// product registry does not recognize.
const UnknownPlanName = "Unknown Plan"

type subscriptionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.SubscriptionSnapshot, error)
}

// SubscriptionService holds the per-user subscription snapshot and answers
// derived questions about it. A user has at most one snapshot; more than
// one row is a data contract violation and is treated as no subscription.
type SubscriptionService struct {
	repo     subscriptionRepository
	products *billing.Registry
	logger   *zap.Logger

	mu        sync.RWMutex
	snapshots map[string]*models.SubscriptionSnapshot
}

// NewSubscriptionService constructs SubscriptionService and subscribes it
// to session-change events.
func NewSubscriptionService(repo subscriptionRepository, products *billing.Registry, sessions *session.Broker, logger *zap.Logger) *SubscriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if products == nil {
		products = billing.DefaultRegistry()
	}
	s := &SubscriptionService{
		repo:      repo,
		products:  products,
		logger:    logger,
		snapshots: make(map[string]*models.SubscriptionSnapshot),
	}
	if sessions != nil {
		sessions.Subscribe(func(evt session.Event) {
			switch evt.Kind {
			case session.SignedIn:
				if err := s.Load(context.Background(), evt.UserID); err != nil {
					s.logger.Warn("failed to load subscription on sign-in", zap.String("user_id", evt.UserID), zap.Error(err))
				}
			case session.SignedOut:
				s.Clear(evt.UserID)
			}
		})
	}
	return s
}

// Load refreshes the user's snapshot from storage. Zero rows means no
// subscription. More than one row violates the at-most-one contract, is
// logged, and resolves to no subscription rather than picking a row
// arbitrarily. A fetch error leaves the previous snapshot untouched.
func (s *SubscriptionService) Load(ctx context.Context, userID string) error {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to fetch subscription", zap.String("user_id", userID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch subscription")
	}

	switch len(rows) {
	case 0:
		s.replace(userID, nil)
	case 1:
		snapshot := rows[0]
		s.replace(userID, &snapshot)
	default:
		s.logger.Error("multiple subscription rows for user, expected at most one", zap.String("user_id", userID))
		s.replace(userID, nil)
	}
	return nil
}

// Snapshot returns the cached snapshot, or nil when the user has none.
func (s *SubscriptionService) Snapshot(userID string) *models.SubscriptionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snapshots[userID]
	if snap == nil {
		return nil
	}
	copied := *snap
	return &copied
}

func (s *SubscriptionService) hasStatus(userID string, status models.SubscriptionStatus) bool {
	snap := s.Snapshot(userID)
	return snap != nil && snap.Status == status
}

// IsActive reports whether the subscription status is exactly "active".
// Trial periods are reported separately by IsTrialing.
func (s *SubscriptionService) IsActive(userID string) bool {
	return s.hasStatus(userID, models.SubscriptionActive)
}

// IsTrialing reports whether the subscription is in its trial period.
func (s *SubscriptionService) IsTrialing(userID string) bool {
	return s.hasStatus(userID, models.SubscriptionTrialing)
}

// IsCancelled reports whether the subscription has been canceled.
func (s *SubscriptionService) IsCancelled(userID string) bool {
	return s.hasStatus(userID, models.SubscriptionCanceled)
}

// IsPastDue reports whether the subscription's payment is past due.
func (s *SubscriptionService) IsPastDue(userID string) bool {
	return s.hasStatus(userID, models.SubscriptionPastDue)
}

// PlanName resolves the snapshot's price id against the product registry.
// It returns false when the user has no subscription, or has one without
// a price id; the sentinel is reserved for a price id the registry does
// not recognize.
func (s *SubscriptionService) PlanName(userID string) (string, bool) {
	snap := s.Snapshot(userID)
	if snap == nil || snap.PriceID == nil {
		return "", false
	}
	product, ok := s.products.ByPriceID(*snap.PriceID)
	if !ok {
		return UnknownPlanName, true
	}
	return product.Name, true
}

// CurrentPeriodEnd returns when the current billing period ends, if the
// snapshot carries that information.
func (s *SubscriptionService) CurrentPeriodEnd(userID string) (time.Time, bool) {
	snap := s.Snapshot(userID)
	if snap == nil || snap.CurrentPeriodEnd == nil {
		return time.Time{}, false
	}
	return time.Unix(*snap.CurrentPeriodEnd, 0).UTC(), true
}

// Clear drops the user's cached snapshot, e.g. on sign-out.
func (s *SubscriptionService) Clear(userID string) {
	s.mu.Lock()
	delete(s.snapshots, userID)
	s.mu.Unlock()
}

func (s *SubscriptionService) replace(userID string, snapshot *models.SubscriptionSnapshot) {
	s.mu.Lock()
	s.snapshots[userID] = snapshot
	s.mu.Unlock()
}
