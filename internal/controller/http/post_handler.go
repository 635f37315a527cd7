package http

import (
	"net/http"
	"strconv"

	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase   usecase.PostUseCase
	accessUseCase usecase.AccessUseCase
	logger        *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, accessUseCase usecase.AccessUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase:   postUseCase,
		accessUseCase: accessUseCase,
		logger:        logger,
	}
}

// CreatePost godoc
// @Summary      Create post
// @Description  Upload media and publish a post, optionally paywalled
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Media file"
// @Param        caption formData string false "Caption"
// @Param        is_locked formData bool false "Paywall the post"
// @Success      201  {object}  entity.Post
// @Failure      403  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
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

	isLocked, _ := strconv.ParseBool(c.PostForm("is_locked"))

	post, err := h.postUseCase.Create(
		c.GetString("user_id"),
		c.PostForm("caption"),
		isLocked,
		file,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetFeed godoc
// @Summary      Get feed
// @Description  Recent posts with the viewer's access decision per row
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of posts"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/feed [get]
func (h *PostHandler) GetFeed(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	items, err := h.postUseCase.Feed(c.GetString("user_id"), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": items, "count": len(items)})
}

// GetUserPosts godoc
// @Summary      Get a user's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "Owner user ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/user/{user_id} [get]
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	items, err := h.postUseCase.ListByUser(c.GetString("user_id"), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": items, "count": len(items)})
}

// GetAccess godoc
// @Summary      Resolve post access
// @Description  Resolve what the viewer may see of one post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  entity.AccessDecision
// @Router       /posts/{post_id}/access [get]
func (h *PostHandler) GetAccess(c *gin.Context) {
	decision, err := h.accessUseCase.ResolvePost(c.GetString("user_id"), c.Param("post_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}

// DeletePost godoc
// @Summary      Delete post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Router       /posts/{post_id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	err := h.postUseCase.Delete(c.GetString("user_id"), c.Param("post_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=500"`
}

// AddComment godoc
// @Summary      Comment on a post
// @Description  Comments are open to the post owner and the creator's subscribers
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Param        request body CommentRequest true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      403  {object}  map[string]string
// @Router       /posts/{post_id}/comments [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.postUseCase.Comment(c.GetString("user_id"), c.Param("post_id"), req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GetComments godoc
// @Summary      List comments
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{post_id}/comments [get]
func (h *PostHandler) GetComments(c *gin.Context) {
	comments, err := h.postUseCase.ListComments(c.GetString("user_id"), c.Param("post_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}
