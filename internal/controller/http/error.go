package http

import (
	"errors"
	"net/http"

	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto HTTP statuses. Anything unmapped is
// a 500 and gets logged.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrUsernameTaken),
		errors.Is(err, usecase.ErrAlreadySubscribed),
		errors.Is(err, usecase.ErrPendingRequest),
		errors.Is(err, usecase.ErrRequestDecided):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrPriceNotAcknowledged),
		errors.Is(err, usecase.ErrSelfAction),
		errors.Is(err, usecase.ErrNotCreator),
		errors.Is(err, usecase.ErrNotSubscribed),
		errors.Is(err, usecase.ErrPostNotLocked),
		errors.Is(err, usecase.ErrDepositTooSmall),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInsufficientBalance),
		errors.Is(err, usecase.ErrBlocked),
		errors.Is(err, usecase.ErrInvalidResetToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("Unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
