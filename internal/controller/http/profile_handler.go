package http

import (
	"io"
	"net/http"

	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase   usecase.ProfileUseCase
	discoveryUseCase usecase.DiscoveryUseCase
	logger           *logger.Logger
}

func NewProfileHandler(
	profileUseCase usecase.ProfileUseCase,
	discoveryUseCase usecase.DiscoveryUseCase,
	logger *logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:   profileUseCase,
		discoveryUseCase: discoveryUseCase,
		logger:           logger,
	}
}

// GetMe godoc
// @Summary      Get own profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Profile
// @Router       /profiles/me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profile, err := h.profileUseCase.Get(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfile godoc
// @Summary      Get profile by ID
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  entity.Profile
// @Failure      404  {object}  map[string]string
// @Router       /profiles/{user_id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUseCase.Get(c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetByUsername godoc
// @Summary      Get profile by username
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      200  {object}  entity.Profile
// @Failure      404  {object}  map[string]string
// @Router       /profiles/by-username/{username} [get]
func (h *ProfileHandler) GetByUsername(c *gin.Context) {
	profile, err := h.profileUseCase.GetByUsername(c.Param("username"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.ProfileUpdate true "Fields to update"
// @Success      200  {object}  entity.Profile
// @Router       /profiles/me [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var update usecase.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileUseCase.Update(c.GetString("user_id"), update)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadAvatar godoc
// @Summary      Upload avatar
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image file"
// @Success      200  {object}  map[string]string
// @Router       /profiles/me/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	h.uploadImage(c, h.profileUseCase.UploadAvatar)
}

// UploadBanner godoc
// @Summary      Upload banner
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image file"
// @Success      200  {object}  map[string]string
// @Router       /profiles/me/banner [post]
func (h *ProfileHandler) UploadBanner(c *gin.Context) {
	h.uploadImage(c, h.profileUseCase.UploadBanner)
}

func (h *ProfileHandler) uploadImage(c *gin.Context, upload func(string, io.Reader, string) (string, error)) {
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

	url, err := upload(c.GetString("user_id"), file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

type GhostModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetGhostMode godoc
// @Summary      Toggle ghost mode
// @Description  Hide or show the profile in location discovery
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GhostModeRequest true "Ghost mode flag"
// @Success      200  {object}  map[string]bool
// @Router       /profiles/me/ghost-mode [put]
func (h *ProfileHandler) SetGhostMode(c *gin.Context) {
	var req GhostModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.discoveryUseCase.SetGhostMode(c.Request.Context(), c.GetString("user_id"), *req.Enabled)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ghost_mode": *req.Enabled})
}

// Block godoc
// @Summary      Block a user
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User to block"
// @Success      200  {object}  map[string]string
// @Router       /profiles/{user_id}/block [post]
func (h *ProfileHandler) Block(c *gin.Context) {
	err := h.profileUseCase.Block(c.GetString("user_id"), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user blocked"})
}

// Unblock godoc
// @Summary      Unblock a user
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User to unblock"
// @Success      200  {object}  map[string]string
// @Router       /profiles/{user_id}/block [delete]
func (h *ProfileHandler) Unblock(c *gin.Context) {
	err := h.profileUseCase.Unblock(c.GetString("user_id"), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user unblocked"})
}

// DeleteAccount godoc
// @Summary      Delete own account
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /profiles/me [delete]
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	err := h.profileUseCase.DeleteAccount(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
