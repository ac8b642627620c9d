package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub-api/internal/service"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
	"github.com/learnhub/learnhub-api/pkg/response"
)

// CommunityHandler serves the community feed and like toggles.
type CommunityHandler struct {
	service *service.CommunityService
}

// NewCommunityHandler creates a new handler.
func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: svc}
}

// ListPosts godoc
// @Summary List community posts
// @Description The post feed with like counts; signed-in viewers also see their own likes
// @Tags Community
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /community/posts [get]
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	userID := ""
	if claims := claimsFromContext(c); claims != nil {
		userID = claims.UserID
	}

	posts, err := h.service.Posts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, posts, nil)
}

// ToggleLike godoc
// @Summary Toggle post like
// @Description Like or unlike a post and return the resulting count
// @Tags Community
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /community/posts/{id}/like [post]
func (h *CommunityHandler) ToggleLike(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	result, err := h.service.ToggleLike(c.Request.Context(), c.Param("id"), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result, nil)
}
