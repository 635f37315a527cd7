package http

import (
	"mime/multipart"
	"net/http"

	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	verificationUseCase usecase.VerificationUseCase
	logger              *logger.Logger
}

func NewVerificationHandler(verificationUseCase usecase.VerificationUseCase, logger *logger.Logger) *VerificationHandler {
	return &VerificationHandler{
		verificationUseCase: verificationUseCase,
		logger:              logger,
	}
}

// Submit godoc
// @Summary      Submit verification request
// @Description  File a become-a-creator request with legal name and two identity documents
// @Tags         verification
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        full_legal_name formData string true "Full legal name"
// @Param        id_document formData file true "Government ID"
// @Param        selfie_with_id formData file true "Selfie holding the ID"
// @Success      201  {object}  entity.VerificationRequest
// @Failure      409  {object}  map[string]string
// @Router       /verification [post]
func (h *VerificationHandler) Submit(c *gin.Context) {
	fullLegalName := c.PostForm("full_legal_name")
	if fullLegalName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full_legal_name is required"})
		return
	}

	idDoc, idDocType, ok := h.openFormFile(c, "id_document")
	if !ok {
		return
	}
	defer idDoc.Close()

	selfie, _, ok := h.openFormFile(c, "selfie_with_id")
	if !ok {
		return
	}
	defer selfie.Close()

	req, err := h.verificationUseCase.Submit(c.GetString("user_id"), fullLegalName, idDoc, selfie, idDocType)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, req)
}

func (h *VerificationHandler) openFormFile(c *gin.Context, field string) (multipart.File, string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " is required"})
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, "", false
	}
	return file, fileHeader.Header.Get("Content-Type"), true
}

// ListPending godoc
// @Summary      List pending requests
// @Tags         verification
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /admin/verification [get]
func (h *VerificationHandler) ListPending(c *gin.Context) {
	requests, err := h.verificationUseCase.ListPending()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}

// Approve godoc
// @Summary      Approve a request
// @Description  Mark the request approved and promote the profile to a verified creator
// @Tags         verification
// @Produce      json
// @Security     BearerAuth
// @Param        request_id path string true "Request ID"
// @Success      200  {object}  map[string]string
// @Router       /admin/verification/{request_id}/approve [post]
func (h *VerificationHandler) Approve(c *gin.Context) {
	err := h.verificationUseCase.Approve(c.GetString("user_id"), c.Param("request_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request approved"})
}

// Reject godoc
// @Summary      Reject a request
// @Tags         verification
// @Produce      json
// @Security     BearerAuth
// @Param        request_id path string true "Request ID"
// @Success      200  {object}  map[string]string
// @Router       /admin/verification/{request_id}/reject [post]
func (h *VerificationHandler) Reject(c *gin.Context) {
	err := h.verificationUseCase.Reject(c.GetString("user_id"), c.Param("request_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request rejected"})
}
