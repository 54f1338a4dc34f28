package dto

import (
	"time"

	"profilehub/internal/http-api/models"
)

// CreateCommentDTO for creating a comment
type CreateCommentDTO struct {
	ProfileID   string `json:"profileId" binding:"required"`
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required,min=1,max=5000"`
	SystemTag   string `json:"systemTag" binding:"required,oneof=mbti enneagram zodiac"`
}

// CommentQueryDTO for listing comments by profile
type CommentQueryDTO struct {
	ProfileID string `form:"profileId" binding:"required"`
	Tag       string `form:"tag" binding:"omitempty,oneof=mbti enneagram zodiac"`
	Best      bool   `form:"best"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profileId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SystemTag   string    `json:"systemTag"`
	LikeCount   int       `json:"likeCount"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:          comment.ID,
		ProfileID:   comment.ProfileID,
		Title:       comment.Title,
		Description: comment.Description,
		SystemTag:   comment.SystemTag,
		LikeCount:   comment.LikeCount,
		CreatedAt:   comment.CreatedAt,
	}
}
