package http

import (
	"net/http"

	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RegistryHandler struct {
	registryUseCase usecase.RegistryUseCase
	logger          *logger.Logger
}

func NewRegistryHandler(registryUseCase usecase.RegistryUseCase, logger *logger.Logger) *RegistryHandler {
	return &RegistryHandler{
		registryUseCase: registryUseCase,
		logger:          logger,
	}
}

type PaidGrantRequest struct {
	PriceAcknowledged bool `json:"price_acknowledged"`
}

// Subscribe godoc
// @Summary      Subscribe to a creator
// @Description  Create a recurring access grant; a paid subscription requires price acknowledgement
// @Tags         registry
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id path string true "Creator ID"
// @Param        request body PaidGrantRequest false "Price acknowledgement"
// @Success      201  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /subscriptions/{creator_id} [post]
func (h *RegistryHandler) Subscribe(c *gin.Context) {
	var req PaidGrantRequest
	_ = c.ShouldBindJSON(&req)

	err := h.registryUseCase.Subscribe(c.GetString("user_id"), c.Param("creator_id"), req.PriceAcknowledged)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "subscribed"})
}

// Unsubscribe godoc
// @Summary      Unsubscribe from a creator
// @Description  Remove the recurring grant; one-off unlocks remain
// @Tags         registry
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id path string true "Creator ID"
// @Success      200  {object}  map[string]string
// @Router       /subscriptions/{creator_id} [delete]
func (h *RegistryHandler) Unsubscribe(c *gin.Context) {
	err := h.registryUseCase.Unsubscribe(c.GetString("user_id"), c.Param("creator_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unsubscribed"})
}

// GetSubscription godoc
// @Summary      Check subscription
// @Tags         registry
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id path string true "Creator ID"
// @Success      200  {object}  map[string]bool
// @Router       /subscriptions/{creator_id} [get]
func (h *RegistryHandler) GetSubscription(c *gin.Context) {
	subscribed, err := h.registryUseCase.IsSubscribed(c.GetString("user_id"), c.Param("creator_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribed": subscribed})
}

// ListSubscriptions godoc
// @Summary      List subscribed creators
// @Tags         registry
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Profile
// @Router       /subscriptions [get]
func (h *RegistryHandler) ListSubscriptions(c *gin.Context) {
	profiles, err := h.registryUseCase.ListSubscriptions(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// ListUnlocks godoc
// @Summary      List unlocked posts
// @Tags         registry
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Post
// @Router       /unlocks [get]
func (h *RegistryHandler) ListUnlocks(c *gin.Context) {
	posts, err := h.registryUseCase.ListUnlockedPosts(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UnlockPost godoc
// @Summary      Unlock a post
// @Description  Buy permanent access to one locked post; repeated calls never double-charge
// @Tags         registry
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Param        request body PaidGrantRequest false "Price acknowledgement"
// @Success      200  {object}  map[string]string
// @Router       /unlocks/{post_id} [post]
func (h *RegistryHandler) UnlockPost(c *gin.Context) {
	var req PaidGrantRequest
	_ = c.ShouldBindJSON(&req)

	err := h.registryUseCase.UnlockPost(c.GetString("user_id"), c.Param("post_id"), req.PriceAcknowledged)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unlocked"})
}
