package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
)

// CheckoutRequest is the payload accepted by the hosted payment gateway.
// The success URL carries the {CHECKOUT_SESSION_ID} placeholder that the
// gateway substitutes on redirect.
type CheckoutRequest struct {
	PriceID    string `json:"price_id"`
	Mode       string `json:"mode"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

// CheckoutSession is the gateway's answer: a location to hand the browser to.
type CheckoutSession struct {
	SessionID string `json:"sessionId,omitempty"`
	URL       string `json:"url"`
}

type gatewayError struct {
	Error string `json:"error"`
}

// PaymentGateway creates hosted checkout sessions. Two implementations
// exist: the live HTTP client and an offline stand-in selected at startup
// when no gateway URL is configured.
type PaymentGateway interface {
	CreateSession(ctx context.Context, accessToken string, req CheckoutRequest) (*CheckoutSession, error)
}

// HTTPGateway talks to the hosted checkout endpoint.
type HTTPGateway struct {
	client *resty.Client
	url    string
	logger *zap.Logger
}

// NewHTTPGateway constructs the live gateway client.
func NewHTTPGateway(gatewayURL string, timeout time.Duration, logger *zap.Logger) *HTTPGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)
	return &HTTPGateway{client: client, url: gatewayURL, logger: logger}
}

// CreateSession posts the checkout payload and returns the redirect URL.
func (g *HTTPGateway) CreateSession(ctx context.Context, accessToken string, req CheckoutRequest) (*CheckoutSession, error) {
	var session CheckoutSession
	var gwErr gatewayError

	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&session).
		SetError(&gwErr).
		Post(g.url)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCheckoutFailed.Code, appErrors.ErrCheckoutFailed.Status, "payment gateway unreachable")
	}

	if resp.IsError() {
		msg := gwErr.Error
		if msg == "" {
			msg = fmt.Sprintf("payment gateway returned status %d", resp.StatusCode())
		}
		g.logger.Warn("checkout session rejected",
			zap.Int("status", resp.StatusCode()),
			zap.String("price_id", req.PriceID))
		return nil, appErrors.Clone(appErrors.ErrCheckoutFailed, msg)
	}

	if session.URL == "" {
		return nil, appErrors.Clone(appErrors.ErrCheckoutFailed, "no checkout URL received")
	}

	return &session, nil
}

// OfflineGateway is the stand-in used when no gateway is configured. It
// fabricates a deterministic redirect so the rest of the flow is exercisable
// in development.
type OfflineGateway struct {
	baseURL string
}

// NewOfflineGateway constructs the stand-in with the given site base URL.
func NewOfflineGateway(baseURL string) *OfflineGateway {
	return &OfflineGateway{baseURL: baseURL}
}

// CreateSession returns a fake checkout location without any network call.
func (g *OfflineGateway) CreateSession(_ context.Context, _ string, req CheckoutRequest) (*CheckoutSession, error) {
	sessionID := "offline_" + req.PriceID
	return &CheckoutSession{
		SessionID: sessionID,
		URL:       fmt.Sprintf("%s/checkout/offline?price=%s&mode=%s", g.baseURL, url.QueryEscape(req.PriceID), url.QueryEscape(req.Mode)),
	}, nil
}
