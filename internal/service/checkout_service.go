package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/learnhub/learnhub-api/internal/billing"
	"github.com/learnhub/learnhub-api/internal/gateway"
	"github.com/learnhub/learnhub-api/internal/models"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
)

type checkoutCatalog interface {
	CourseByID(id string) (models.Course, bool)
	PathByID(id string) (models.LearningPath, bool)
}

// CheckoutConfig carries the redirect targets handed to the gateway. The
// session id placeholder in the success URL is substituted by the gateway
// itself after payment.
type CheckoutConfig struct {
	SiteURL string
}

// CheckoutService turns a catalog item into a payment gateway session.
// Items resolve to products by exact title match; anything without a
// product registration is rejected before the gateway is contacted.
type CheckoutService struct {
	catalog  checkoutCatalog
	products *billing.Registry
	gateway  gateway.PaymentGateway
	metrics  *MetricsService
	logger   *zap.Logger
	config   CheckoutConfig
}

// NewCheckoutService constructs a CheckoutService instance.
func NewCheckoutService(catalog checkoutCatalog, products *billing.Registry, gw gateway.PaymentGateway, metrics *MetricsService, logger *zap.Logger, config CheckoutConfig) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if products == nil {
		products = billing.DefaultRegistry()
	}
	return &CheckoutService{
		catalog:  catalog,
		products: products,
		gateway:  gw,
		metrics:  metrics,
		logger:   logger,
		config:   config,
	}
}

// Start creates a checkout session for the given catalog item and returns
// the URL the client should redirect to. The caller's access token is
// forwarded to the gateway so the purchase is tied to their account.
func (s *CheckoutService) Start(ctx context.Context, accessToken, itemID string, itemType models.PurchaseType) (*gateway.CheckoutSession, error) {
	title, err := s.itemTitle(itemID, itemType)
	if err != nil {
		s.metrics.RecordCheckout("rejected")
		return nil, err
	}

	product, ok := s.products.ByName(title)
	if !ok {
		s.metrics.RecordCheckout("rejected")
		return nil, appErrors.Clone(appErrors.ErrProductNotAvailable, "")
	}

	req := gateway.CheckoutRequest{
		PriceID:    product.PriceID,
		Mode:       string(product.Mode),
		SuccessURL: s.config.SiteURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.config.SiteURL + "/cancel",
	}

	session, err := s.gateway.CreateSession(ctx, accessToken, req)
	if err != nil {
		s.metrics.RecordCheckout("unavailable")
		s.logger.Error("checkout session creation failed",
			zap.String("item_id", itemID),
			zap.String("price_id", product.PriceID),
			zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrCheckoutFailed.Code, appErrors.ErrCheckoutFailed.Status, appErrors.ErrCheckoutFailed.Message)
	}

	s.metrics.RecordCheckout("redirected")
	return session, nil
}

func (s *CheckoutService) itemTitle(itemID string, itemType models.PurchaseType) (string, error) {
	switch itemType {
	case models.PurchaseCourse:
		course, ok := s.catalog.CourseByID(itemID)
		if !ok {
			return "", appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return course.Title, nil
	case models.PurchasePath:
		path, ok := s.catalog.PathByID(itemID)
		if !ok {
			return "", appErrors.Clone(appErrors.ErrNotFound, "learning path not found")
		}
		return path.Title, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, "item type must be course or path")
	}
}
