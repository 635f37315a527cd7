package http

import (
	"net/http"

	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// GetOverview godoc
// @Summary      Platform overview
// @Description  User counts, pending verifications and platform revenue
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.PlatformOverview
// @Failure      403  {object}  map[string]string
// @Router       /admin/overview [get]
func (h *AdminHandler) GetOverview(c *gin.Context) {
	overview, err := h.adminUseCase.Overview(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// Settle godoc
// @Summary      Settle a transaction
// @Description  Complete a pending ledger entry and apply its amount to the balance
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        transaction_id path string true "Transaction ID"
// @Success      200  {object}  map[string]string
// @Router       /admin/transactions/{transaction_id}/settle [post]
func (h *AdminHandler) Settle(c *gin.Context) {
	err := h.adminUseCase.Settle(c.GetString("user_id"), c.Param("transaction_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transaction settled"})
}

// Reconcile godoc
// @Summary      Reconcile a wallet
// @Description  Compare a profile balance against its completed ledger
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  usecase.ReconcileReport
// @Router       /admin/wallets/{user_id}/reconcile [get]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	report, err := h.adminUseCase.Reconcile(c.GetString("user_id"), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
