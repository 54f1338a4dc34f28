package repository

import (
	"context"
	"errors"
	"fmt"

	"profilehub/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Postgres error code for unique_violation.
const uniqueViolationCode = "23505"

type CommentLikeRepository interface {
	Create(ctx context.Context, commentID, profileID string) (bool, error)
	Delete(ctx context.Context, commentID, profileID string) (bool, error)
	Exists(ctx context.Context, commentID, profileID string) (bool, error)
	CountByComment(ctx context.Context, commentID string) (int64, error)
}

type commentLikeRepository struct {
	db *gorm.DB
}

func NewCommentLikeRepository(db *gorm.DB) CommentLikeRepository {
	return &commentLikeRepository{db: db}
}

// Create records a like for the (comment, profile) pair. The insert is
// atomic insert-if-absent: ON CONFLICT DO NOTHING against the composite
// unique index, so two concurrent likes cannot both insert. Returns true
// only when a new row was created.
func (r *commentLikeRepository) Create(ctx context.Context, commentID, profileID string) (bool, error) {
	like := models.CommentLike{
		CommentID: commentID,
		ProfileID: profileID,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like)
	if res.Error != nil {
		// Some dialects still surface the conflict; treat it as "already liked".
		var pgErr *pgconn.PgError
		if errors.As(res.Error, &pgErr) && pgErr.Code == uniqueViolationCode {
			return false, nil
		}
		return false, fmt.Errorf("create comment like: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the like for the (comment, profile) pair. Deleting a like
// that does not exist is not an error. Returns true when a row was removed.
func (r *commentLikeRepository) Delete(ctx context.Context, commentID, profileID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("comment_id = ? AND profile_id = ?", commentID, profileID).
		Delete(&models.CommentLike{})
	if res.Error != nil {
		return false, fmt.Errorf("delete comment like: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Exists reports whether the (comment, profile) pair is currently liked.
func (r *commentLikeRepository) Exists(ctx context.Context, commentID, profileID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("comment_id = ? AND profile_id = ?", commentID, profileID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check comment like: %w", err)
	}
	return count > 0, nil
}

// CountByComment returns the ledger cardinality for one comment.
func (r *commentLikeRepository) CountByComment(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count comment likes: %w", err)
	}
	return count, nil
}
