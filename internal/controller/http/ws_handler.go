package http

import (
	"net/http"

	"velvet/pkg/jwt"
	"velvet/pkg/logger"
	"velvet/pkg/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub        *realtime.Hub
	jwtService *jwt.Service
	upgrader   websocket.Upgrader
	logger     *logger.Logger
}

func NewWSHandler(hub *realtime.Hub, jwtService *jwt.Service, logger *logger.Logger) *WSHandler {
	return &WSHandler{
		hub:        hub,
		jwtService: jwtService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Serve upgrades the connection and subscribes the user to their change
// events. Browsers cannot set headers on websocket dials, so the token rides
// in the query string.
func (h *WSHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token is required"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Websocket upgrade failed: %v", err)
		return
	}

	client := &realtime.Client{
		Hub:    h.hub,
		Conn:   conn,
		Send:   make(chan []byte, 32),
		UserID: claims.UserID,
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
