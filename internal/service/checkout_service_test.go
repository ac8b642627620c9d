package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/learnhub/learnhub-api/internal/billing"
	"github.com/learnhub/learnhub-api/internal/catalog"
	"github.com/learnhub/learnhub-api/internal/gateway"
	"github.com/learnhub/learnhub-api/internal/models"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
)

type mockGateway struct {
	lastToken   string
	lastRequest gateway.CheckoutRequest
	session     *gateway.CheckoutSession
	err         error
	called      bool
}

func (m *mockGateway) CreateSession(ctx context.Context, accessToken string, req gateway.CheckoutRequest) (*gateway.CheckoutSession, error) {
	m.called = true
	m.lastToken = accessToken
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

func newCheckoutFixture(gw *mockGateway) *CheckoutService {
	return NewCheckoutService(catalog.Default(), billing.DefaultRegistry(), gw, NewMetricsService(), zap.NewNop(), CheckoutConfig{
		SiteURL: "http://localhost:5173",
	})
}

func TestCheckoutServiceStartForLearningPath(t *testing.T) {
	gw := &mockGateway{session: &gateway.CheckoutSession{SessionID: "cs_1", URL: "https://pay.example/cs_1"}}
	svc := newCheckoutFixture(gw)

	session, err := svc.Start(context.Background(), "token-123", "fullstack-web-dev", models.PurchasePath)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_1", session.URL)

	assert.Equal(t, "token-123", gw.lastToken)
	assert.Equal(t, "price_1RcxxpB4TclDueTYhs6HxZEs", gw.lastRequest.PriceID)
	assert.Equal(t, "payment", gw.lastRequest.Mode)
	assert.Equal(t, "http://localhost:5173/success?session_id={CHECKOUT_SESSION_ID}", gw.lastRequest.SuccessURL)
	assert.Equal(t, "http://localhost:5173/cancel", gw.lastRequest.CancelURL)
}

func TestCheckoutServiceUnregisteredItemRejectedBeforeGateway(t *testing.T) {
	gw := &mockGateway{}
	svc := newCheckoutFixture(gw)

	// Course 1 exists in the catalog but has no product registration.
	_, err := svc.Start(context.Background(), "token-123", "1", models.PurchaseCourse)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrProductNotAvailable.Code, appErr.Code)
	assert.False(t, gw.called)
}

func TestCheckoutServiceUnknownItem(t *testing.T) {
	gw := &mockGateway{}
	svc := newCheckoutFixture(gw)

	_, err := svc.Start(context.Background(), "token-123", "missing", models.PurchaseCourse)
	require.Error(t, err)
	assert.False(t, gw.called)
}

func TestCheckoutServiceInvalidItemType(t *testing.T) {
	gw := &mockGateway{}
	svc := newCheckoutFixture(gw)

	_, err := svc.Start(context.Background(), "token-123", "1", models.PurchaseType("bundle"))
	require.Error(t, err)
	assert.False(t, gw.called)
}

func TestCheckoutServiceGatewayFailure(t *testing.T) {
	gw := &mockGateway{err: errors.New("gateway timeout")}
	svc := newCheckoutFixture(gw)

	_, err := svc.Start(context.Background(), "token-123", "fullstack-web-dev", models.PurchasePath)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrCheckoutFailed.Code, appErr.Code)
}
