package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub-api/internal/models"
	"github.com/learnhub/learnhub-api/internal/service"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
	"github.com/learnhub/learnhub-api/pkg/response"
)

// SubscriptionHandler exposes the caller's subscription snapshot along
// with derived plan information.
type SubscriptionHandler struct {
	service *service.SubscriptionService
}

// NewSubscriptionHandler creates a new handler.
func NewSubscriptionHandler(svc *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: svc}
}

type subscriptionView struct {
	Subscription     *models.SubscriptionSnapshot `json:"subscription"`
	Active           bool                         `json:"active"`
	Trialing         bool                         `json:"trialing"`
	Cancelled        bool                         `json:"cancelled"`
	PastDue          bool                         `json:"past_due"`
	PlanName         string                       `json:"plan_name,omitempty"`
	CurrentPeriodEnd *time.Time                   `json:"current_period_end,omitempty"`
}

// Get godoc
// @Summary Get subscription
// @Description The caller's subscription snapshot with derived plan state
// @Tags Subscription
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /subscription [get]
func (h *SubscriptionHandler) Get(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Load(c.Request.Context(), claims.UserID); err != nil {
		response.Error(c, err)
		return
	}

	view := subscriptionView{
		Subscription: h.service.Snapshot(claims.UserID),
		Active:       h.service.IsActive(claims.UserID),
		Trialing:     h.service.IsTrialing(claims.UserID),
		Cancelled:    h.service.IsCancelled(claims.UserID),
		PastDue:      h.service.IsPastDue(claims.UserID),
	}
	if name, ok := h.service.PlanName(claims.UserID); ok {
		view.PlanName = name
	}
	if end, ok := h.service.CurrentPeriodEnd(claims.UserID); ok {
		view.CurrentPeriodEnd = &end
	}

	response.JSON(c, http.StatusOK, view, nil)
}
