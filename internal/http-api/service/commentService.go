package service

import (
	"context"
	"errors"
	"fmt"

	"profilehub/internal/cache"
	"profilehub/internal/http-api/dto"
	"profilehub/internal/http-api/models"
	"profilehub/internal/http-api/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	AddComment(ctx context.Context, in dto.CreateCommentDTO) (string, error)
	GetCommentsByProfile(ctx context.Context, query dto.CommentQueryDTO) ([]dto.CommentResponse, error)
	GetCommentByID(ctx context.Context, commentID string) (*dto.CommentResponse, error)
	LikeComment(ctx context.Context, commentID, profileID string) error
	DislikeComment(ctx context.Context, commentID, profileID string) error
	GetLikeStatus(ctx context.Context, commentID, profileID string) (bool, error)
	ReconcileLikeCount(ctx context.Context, commentID string) (int, error)
}

// commentService coordinates the comment store and the like ledger. It owns
// the write ordering for likes: the ledger row is written before the
// denormalized counter, so a failure between the two steps can only leave
// the counter behind the ledger, and retrying the whole call converges.
type commentService struct {
	commentRepo repository.CommentRepository
	likeRepo    repository.CommentLikeRepository
	profileRepo repository.ProfileRepository
	cache       *cache.Cache
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	likeRepo repository.CommentLikeRepository,
	profileRepo repository.ProfileRepository,
	c *cache.Cache,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		profileRepo: profileRepo,
		cache:       c,
	}
}

// AddComment creates a new comment after verifying the referenced profile
// exists, and returns the new comment's ID.
func (s *commentService) AddComment(ctx context.Context, in dto.CreateCommentDTO) (string, error) {
	// Check if the associated profile exists
	if _, err := s.profileRepo.GetByID(ctx, in.ProfileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrProfileNotFound
		}
		return "", err
	}

	comment := &models.Comment{
		ProfileID:   in.ProfileID,
		Title:       in.Title,
		Description: in.Description,
		SystemTag:   in.SystemTag,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return "", err
	}

	s.cache.InvalidatePrefix(ctx, commentListPrefix(in.ProfileID))
	return comment.ID, nil
}

// GetCommentsByProfile lists a profile's comments with optional tag filter
// and like-count ordering, served through the cache.
func (s *commentService) GetCommentsByProfile(ctx context.Context, query dto.CommentQueryDTO) ([]dto.CommentResponse, error) {
	key := commentListKey(query)

	var cached []dto.CommentResponse
	if found, err := s.cache.GetJSON(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	comments, err := s.commentRepo.GetByProfile(ctx, query.ProfileID, query.Tag, query.Best)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comment))
	}

	// Best-effort; a cache failure never fails the read.
	_ = s.cache.SetJSON(ctx, key, responses)
	return responses, nil
}

// GetCommentByID retrieves a single comment
func (s *commentService) GetCommentByID(ctx context.Context, commentID string) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return dto.FromModelToCommentResponse(comment), nil
}

// LikeComment records a like for the (comment, profile) pair. The ledger
// write happens before the counter increment, and the counter is only
// incremented when the ledger row was newly created, so it mirrors ledger
// cardinality exactly: liking an already-liked comment is a complete no-op.
func (s *commentService) LikeComment(ctx context.Context, commentID, profileID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	created, err := s.likeRepo.Create(ctx, commentID, profileID)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	if err := s.commentRepo.IncrementLikeCount(ctx, commentID); err != nil {
		// Ledger row stays; a retried LikeComment is a no-op at the ledger
		// and the counter lags behind until corrected, never runs ahead.
		return err
	}

	s.cache.InvalidatePrefix(ctx, commentListPrefix(comment.ProfileID))
	return nil
}

// DislikeComment removes the like for the (comment, profile) pair. The
// counter is only decremented when a ledger row was actually removed, so a
// dislike without a prior like never alters the count. The decrement itself
// is floor-guarded at zero in the store.
func (s *commentService) DislikeComment(ctx context.Context, commentID, profileID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	removed, err := s.likeRepo.Delete(ctx, commentID, profileID)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}

	if err := s.commentRepo.DecrementLikeCount(ctx, commentID); err != nil {
		return err
	}

	s.cache.InvalidatePrefix(ctx, commentListPrefix(comment.ProfileID))
	return nil
}

// GetLikeStatus reports whether the (comment, profile) pair is present in
// the like ledger.
func (s *commentService) GetLikeStatus(ctx context.Context, commentID, profileID string) (bool, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrCommentNotFound
		}
		return false, err
	}
	return s.likeRepo.Exists(ctx, commentID, profileID)
}

// ReconcileLikeCount rewrites the denormalized counter from the ledger
// cardinality and returns it. A failure between the ledger write and the
// counter update leaves the counter behind the ledger; this converges the
// two again.
func (s *commentService) ReconcileLikeCount(ctx context.Context, commentID string) (int, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCommentNotFound
		}
		return 0, err
	}

	count, err := s.likeRepo.CountByComment(ctx, commentID)
	if err != nil {
		return 0, err
	}

	if int(count) != comment.LikeCount {
		if err := s.commentRepo.SetLikeCount(ctx, commentID, int(count)); err != nil {
			return 0, err
		}
		s.cache.InvalidatePrefix(ctx, commentListPrefix(comment.ProfileID))
	}
	return int(count), nil
}

func commentListPrefix(profileID string) string {
	return fmt.Sprintf("comments:profile:%s", profileID)
}

func commentListKey(query dto.CommentQueryDTO) string {
	return fmt.Sprintf("comments:profile:%s:tag=%s:best=%t", query.ProfileID, query.Tag, query.Best)
}
