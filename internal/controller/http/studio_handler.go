package http

import (
	"net/http"

	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
)

type StudioHandler struct {
	studioUseCase usecase.StudioUseCase
	logger        *logger.Logger
}

func NewStudioHandler(studioUseCase usecase.StudioUseCase, logger *logger.Logger) *StudioHandler {
	return &StudioHandler{
		studioUseCase: studioUseCase,
		logger:        logger,
	}
}

// GetStats godoc
// @Summary      Creator dashboard stats
// @Description  Earnings, subscriber count, post count and pending private requests
// @Tags         studio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.StudioStats
// @Failure      403  {object}  map[string]string
// @Router       /studio/stats [get]
func (h *StudioHandler) GetStats(c *gin.Context) {
	stats, err := h.studioUseCase.Stats(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
