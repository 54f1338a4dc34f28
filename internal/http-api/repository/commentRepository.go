package repository

import (
	"context"
	"fmt"

	"profilehub/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	GetByProfile(ctx context.Context, profileID, tag string, best bool) ([]models.Comment, error)
	IncrementLikeCount(ctx context.Context, id string) error
	DecrementLikeCount(ctx context.Context, id string) error
	SetLikeCount(ctx context.Context, id string, count int) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment; LikeCount starts at zero, CreatedAt is set by the hook
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.LikeCount = 0
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByProfile retrieves comments for a profile, optionally filtered by
// system tag. best=true orders by like count, otherwise insertion order.
func (r *commentRepository) GetByProfile(ctx context.Context, profileID, tag string, best bool) ([]models.Comment, error) {
	var comments []models.Comment

	query := r.db.WithContext(ctx).Where("profile_id = ?", profileID)
	if tag != "" {
		query = query.Where("system_tag = ?", tag)
	}
	if best {
		query = query.Order("like_count desc, created_at asc, id asc")
	} else {
		query = query.Order("created_at asc, id asc")
	}

	if err := query.Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("get comments by profile: %w", err)
	}
	return comments, nil
}

// IncrementLikeCount adds 1 to the counter in a single UPDATE so that
// concurrent likes on the same comment never lose updates.
func (r *commentRepository) IncrementLikeCount(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Update("like_count", gorm.Expr("like_count + 1")).Error
	if err != nil {
		return fmt.Errorf("increment like count: %w", err)
	}
	return nil
}

// DecrementLikeCount subtracts 1 with a floor at zero. Decrementing a
// comment that is already at zero is a no-op.
func (r *commentRepository) DecrementLikeCount(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Update("like_count", gorm.Expr("GREATEST(like_count - 1, 0)")).Error
	if err != nil {
		return fmt.Errorf("decrement like count: %w", err)
	}
	return nil
}

// SetLikeCount overwrites the counter, used when reconciling it against the
// ledger after a partial failure left it behind.
func (r *commentRepository) SetLikeCount(ctx context.Context, id string, count int) error {
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Update("like_count", count).Error
	if err != nil {
		return fmt.Errorf("set like count: %w", err)
	}
	return nil
}
