package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"profilehub/internal/http-api/dto"
	"profilehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment-related routes
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	comments := router.Group("/comments")
	{
		comments.POST("", h.Create)             // Create a comment
		comments.GET("", h.List)                // Get comments for a profile
		comments.GET("/:comment_id", h.GetByID) // Get a specific comment

		comments.POST("/:comment_id/like/:profile_id", h.Like)       // Like a comment
		comments.GET("/:comment_id/like/:profile_id", h.LikeStatus)  // Check whether a profile liked a comment
		comments.POST("/:comment_id/dislike/:profile_id", h.Dislike) // Undo a like
	}
}

// Create adds a new comment for a profile and returns its ID as plain text
// POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	id, err := h.commentService.AddComment(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.String(http.StatusCreated, id)
}

// List retrieves comments for a profile, optionally filtered by tag and
// sorted by like count
// GET /api/comments?profileId=&tag=&best=
func (h *CommentHandler) List(c *gin.Context) {
	var query dto.CommentQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comments, err := h.commentService.GetCommentsByProfile(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// GetByID retrieves a comment by ID
// GET /api/comments/:comment_id
func (h *CommentHandler) GetByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comment, err := h.commentService.GetCommentByID(ctx, c.Param("comment_id"))
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Like records a like on a comment by a profile
// POST /api/comments/:comment_id/like/:profile_id
func (h *CommentHandler) Like(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.commentService.LikeComment(ctx, c.Param("comment_id"), c.Param("profile_id"))
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment liked"})
}

// LikeStatus reports whether a profile has liked a comment
// GET /api/comments/:comment_id/like/:profile_id
func (h *CommentHandler) LikeStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	liked, err := h.commentService.GetLikeStatus(ctx, c.Param("comment_id"), c.Param("profile_id"))
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// Dislike removes a like from a comment by a profile
// POST /api/comments/:comment_id/dislike/:profile_id
func (h *CommentHandler) Dislike(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.commentService.DislikeComment(ctx, c.Param("comment_id"), c.Param("profile_id"))
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment disliked"})
}
