package http

import (
	"net/http"

	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messagingUseCase usecase.MessagingUseCase
	logger           *logger.Logger
}

func NewMessageHandler(messagingUseCase usecase.MessagingUseCase, logger *logger.Logger) *MessageHandler {
	return &MessageHandler{
		messagingUseCase: messagingUseCase,
		logger:           logger,
	}
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// Send godoc
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "Receiver ID"
// @Param        request body SendMessageRequest true "Message"
// @Success      201  {object}  entity.Message
// @Failure      400  {object}  map[string]string
// @Router       /messages/{user_id} [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messagingUseCase.Send(c.GetString("user_id"), c.Param("user_id"), req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// SendWithMedia godoc
// @Summary      Send a message with an attachment
// @Description  Attachments are limited to creators, admins and subscribers of the receiving creator
// @Tags         messages
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "Receiver ID"
// @Param        file formData file true "Attachment"
// @Param        content formData string false "Message text"
// @Success      201  {object}  entity.Message
// @Failure      403  {object}  map[string]string
// @Router       /messages/{user_id}/media [post]
func (h *MessageHandler) SendWithMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	msg, err := h.messagingUseCase.SendWithMedia(
		c.GetString("user_id"),
		c.Param("user_id"),
		c.PostForm("content"),
		file,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// GetThread godoc
// @Summary      Get conversation thread
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "Counterpart ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /messages/{user_id} [get]
func (h *MessageHandler) GetThread(c *gin.Context) {
	messages, err := h.messagingUseCase.Thread(c.GetString("user_id"), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}

// GetConversations godoc
// @Summary      List conversations
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /messages [get]
func (h *MessageHandler) GetConversations(c *gin.Context) {
	conversations, err := h.messagingUseCase.Conversations(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations, "count": len(conversations)})
}
