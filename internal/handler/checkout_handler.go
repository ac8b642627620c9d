package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub-api/internal/models"
	"github.com/learnhub/learnhub-api/internal/service"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
	"github.com/learnhub/learnhub-api/pkg/response"
)

// CheckoutHandler starts payment gateway sessions for catalog items.
type CheckoutHandler struct {
	service *service.CheckoutService
}

// NewCheckoutHandler creates a new handler.
func NewCheckoutHandler(svc *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: svc}
}

// Create godoc
// @Summary Start checkout
// @Description Create a payment session for a course or learning path and return the redirect URL
// @Tags Checkout
// @Accept json
// @Produce json
// @Param payload body object true "Item id and type"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /checkout [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var payload struct {
		ItemID   string              `json:"item_id" binding:"required"`
		ItemType models.PurchaseType `json:"item_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "item id and type required"))
		return
	}

	session, err := h.service.Start(c.Request.Context(), tokenFromContext(c), payload.ItemID, payload.ItemType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, session, nil)
}
