package http

import (
	"net/http"

	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        *logger.Logger
}

func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger *logger.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// GetWallet godoc
// @Summary      Get wallet
// @Description  Balance, ledger sum and recent history for the authenticated user
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.WalletView
// @Router       /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	view, err := h.walletUseCase.View(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

type DepositRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,min=1"`
}

// Deposit godoc
// @Summary      Start a deposit
// @Description  Record a pending top-up and return the off-band payment instructions
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DepositRequest true "Deposit amount in cents"
// @Success      201  {object}  usecase.DepositIntent
// @Failure      400  {object}  map[string]string
// @Router       /wallet/deposit [post]
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := h.walletUseCase.Deposit(c.GetString("user_id"), req.AmountCents)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, intent)
}

type CashOutRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,min=1"`
}

// CashOut godoc
// @Summary      Request a cash-out
// @Description  Record a pending withdrawal for a creator
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CashOutRequest true "Withdrawal amount in cents"
// @Success      201  {object}  entity.Transaction
// @Failure      400  {object}  map[string]string
// @Router       /wallet/cashout [post]
func (h *WalletHandler) CashOut(c *gin.Context) {
	var req CashOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.walletUseCase.CashOut(c.GetString("user_id"), req.AmountCents)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}
