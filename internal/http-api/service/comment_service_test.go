package service

import (
	"context"
	"errors"
	"testing"

	"profilehub/internal/http-api/dto"
	"profilehub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// --- MOCK REPOSITORIES ---

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByProfile(ctx context.Context, profileID, tag string, best bool) ([]models.Comment, error) {
	args := m.Called(ctx, profileID, tag, best)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) IncrementLikeCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) DecrementLikeCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) SetLikeCount(ctx context.Context, id string, count int) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

type MockCommentLikeRepository struct {
	mock.Mock
}

func (m *MockCommentLikeRepository) Create(ctx context.Context, commentID, profileID string) (bool, error) {
	args := m.Called(ctx, commentID, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentLikeRepository) Delete(ctx context.Context, commentID, profileID string) (bool, error) {
	args := m.Called(ctx, commentID, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentLikeRepository) Exists(ctx context.Context, commentID, profileID string) (bool, error) {
	args := m.Called(ctx, commentID, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentLikeRepository) CountByComment(ctx context.Context, commentID string) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

// --- SETUP ---

func newCommentServiceWithMocks() (CommentService, *MockCommentRepository, *MockCommentLikeRepository, *MockProfileRepository) {
	commentRepo := new(MockCommentRepository)
	likeRepo := new(MockCommentLikeRepository)
	profileRepo := new(MockProfileRepository)
	svc := NewCommentService(commentRepo, likeRepo, profileRepo, nil)
	return svc, commentRepo, likeRepo, profileRepo
}

// --- TESTS ---

func TestCommentService_AddComment(t *testing.T) {
	in := dto.CreateCommentDTO{
		ProfileID:   "profile-1",
		Title:       "Thoughts on Personality",
		Description: "I think the user has an INFP personality.",
		SystemTag:   models.SystemTagMBTI,
	}

	t.Run("Success", func(t *testing.T) {
		svc, commentRepo, _, profileRepo := newCommentServiceWithMocks()

		profileRepo.On("GetByID", mock.Anything, "profile-1").
			Return(&models.Profile{ID: "profile-1"}, nil).Once()
		commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Comment).ID = "comment-1"
			}).
			Return(nil).Once()

		id, err := svc.AddComment(context.Background(), in)

		assert.NoError(t, err)
		assert.Equal(t, "comment-1", id)
		commentRepo.AssertExpectations(t)
		profileRepo.AssertExpectations(t)
	})

	t.Run("ProfileMissing", func(t *testing.T) {
		svc, commentRepo, _, profileRepo := newCommentServiceWithMocks()

		profileRepo.On("GetByID", mock.Anything, "profile-1").
			Return(nil, gorm.ErrRecordNotFound).Once()

		id, err := svc.AddComment(context.Background(), in)

		assert.ErrorIs(t, err, ErrProfileNotFound)
		assert.Empty(t, id)
		// Nothing must be written when the profile does not exist
		commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("StorageError", func(t *testing.T) {
		svc, _, _, profileRepo := newCommentServiceWithMocks()

		profileRepo.On("GetByID", mock.Anything, "profile-1").
			Return(nil, errors.New("connection refused")).Once()

		_, err := svc.AddComment(context.Background(), in)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestCommentService_LikeComment(t *testing.T) {
	comment := &models.Comment{ID: "comment-1", ProfileID: "profile-1", LikeCount: 0}

	t.Run("FirstLikeIncrementsCounter", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "comment-1").Return(comment, nil).Once()
		likeRepo.On("Create", mock.Anything, "comment-1", "profile-2").Return(true, nil).Once()
		commentRepo.On("IncrementLikeCount", mock.Anything, "comment-1").Return(nil).Once()

		err := svc.LikeComment(context.Background(), "comment-1", "profile-2")

		assert.NoError(t, err)
		commentRepo.AssertExpectations(t)
		likeRepo.AssertExpectations(t)
	})

	t.Run("DuplicateLikeIsNoOp", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "comment-1").Return(comment, nil).Once()
		// Ledger row already exists: the counter must not move again.
		likeRepo.On("Create", mock.Anything, "comment-1", "profile-2").Return(false, nil).Once()

		err := svc.LikeComment(context.Background(), "comment-1", "profile-2")

		assert.NoError(t, err)
		commentRepo.AssertNotCalled(t, "IncrementLikeCount", mock.Anything, mock.Anything)
	})

	t.Run("CommentMissing", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "missing-id").
			Return(nil, gorm.ErrRecordNotFound).Once()

		err := svc.LikeComment(context.Background(), "missing-id", "profile-2")

		assert.ErrorIs(t, err, ErrCommentNotFound)
		likeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("LedgerWriteHappensBeforeCounter", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		ledgerWritten := false
		commentRepo.On("GetByID", mock.Anything, "comment-1").Return(comment, nil).Once()
		likeRepo.On("Create", mock.Anything, "comment-1", "profile-2").
			Run(func(mock.Arguments) { ledgerWritten = true }).
			Return(true, nil).Once()
		commentRepo.On("IncrementLikeCount", mock.Anything, "comment-1").
			Run(func(mock.Arguments) {
				assert.True(t, ledgerWritten, "counter must only move after the ledger write")
			}).
			Return(nil).Once()

		err := svc.LikeComment(context.Background(), "comment-1", "profile-2")
		assert.NoError(t, err)
	})
}

func TestCommentService_DislikeComment(t *testing.T) {
	comment := &models.Comment{ID: "comment-1", ProfileID: "profile-1", LikeCount: 1}

	t.Run("RemovesLikeAndDecrements", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "comment-1").Return(comment, nil).Once()
		likeRepo.On("Delete", mock.Anything, "comment-1", "profile-2").Return(true, nil).Once()
		commentRepo.On("DecrementLikeCount", mock.Anything, "comment-1").Return(nil).Once()

		err := svc.DislikeComment(context.Background(), "comment-1", "profile-2")

		assert.NoError(t, err)
		commentRepo.AssertExpectations(t)
		likeRepo.AssertExpectations(t)
	})

	t.Run("WithoutPriorLikeIsNoOp", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "comment-1").Return(comment, nil).Once()
		likeRepo.On("Delete", mock.Anything, "comment-1", "profile-9").Return(false, nil).Once()

		err := svc.DislikeComment(context.Background(), "comment-1", "profile-9")

		// Not an error, and the counter is untouched even though it is non-zero.
		assert.NoError(t, err)
		commentRepo.AssertNotCalled(t, "DecrementLikeCount", mock.Anything, mock.Anything)
	})

	t.Run("CommentMissing", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "missing-id").
			Return(nil, gorm.ErrRecordNotFound).Once()

		err := svc.DislikeComment(context.Background(), "missing-id", "profile-2")

		assert.ErrorIs(t, err, ErrCommentNotFound)
		likeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCommentService_GetCommentsByProfile(t *testing.T) {
	t.Run("PassesFilterAndSort", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentServiceWithMocks()

		expected := []models.Comment{
			{ID: "c1", ProfileID: "profile-1", SystemTag: models.SystemTagMBTI, LikeCount: 5},
			{ID: "c2", ProfileID: "profile-1", SystemTag: models.SystemTagMBTI, LikeCount: 2},
		}
		commentRepo.On("GetByProfile", mock.Anything, "profile-1", "mbti", true).
			Return(expected, nil).Once()

		got, err := svc.GetCommentsByProfile(context.Background(), dto.CommentQueryDTO{
			ProfileID: "profile-1",
			Tag:       "mbti",
			Best:      true,
		})

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "c1", got[0].ID)
		assert.Equal(t, 5, got[0].LikeCount)
		assert.Equal(t, "c2", got[1].ID)
		commentRepo.AssertExpectations(t)
	})

	t.Run("DefaultOrderWithoutFilter", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByProfile", mock.Anything, "profile-1", "", false).
			Return([]models.Comment{}, nil).Once()

		got, err := svc.GetCommentsByProfile(context.Background(), dto.CommentQueryDTO{ProfileID: "profile-1"})

		assert.NoError(t, err)
		assert.Empty(t, got)
		commentRepo.AssertExpectations(t)
	})
}

func TestCommentService_GetLikeStatus(t *testing.T) {
	comment := &models.Comment{ID: "comment-1", ProfileID: "profile-1", LikeCount: 1}

	t.Run("Liked", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "comment-1").Return(comment, nil).Once()
		likeRepo.On("Exists", mock.Anything, "comment-1", "profile-2").Return(true, nil).Once()

		liked, err := svc.GetLikeStatus(context.Background(), "comment-1", "profile-2")

		assert.NoError(t, err)
		assert.True(t, liked)
		likeRepo.AssertExpectations(t)
	})

	t.Run("NotLiked", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "comment-1").Return(comment, nil).Once()
		likeRepo.On("Exists", mock.Anything, "comment-1", "profile-9").Return(false, nil).Once()

		liked, err := svc.GetLikeStatus(context.Background(), "comment-1", "profile-9")

		assert.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("CommentMissing", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "missing-id").
			Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.GetLikeStatus(context.Background(), "missing-id", "profile-2")

		assert.ErrorIs(t, err, ErrCommentNotFound)
		likeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCommentService_ReconcileLikeCount(t *testing.T) {
	t.Run("CounterMatchesLedger", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "comment-1").
			Return(&models.Comment{ID: "comment-1", ProfileID: "profile-1", LikeCount: 2}, nil).Once()
		likeRepo.On("CountByComment", mock.Anything, "comment-1").Return(int64(2), nil).Once()

		count, err := svc.ReconcileLikeCount(context.Background(), "comment-1")

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		// Nothing to fix, so nothing is written.
		commentRepo.AssertNotCalled(t, "SetLikeCount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CounterBehindLedger", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "comment-1").
			Return(&models.Comment{ID: "comment-1", ProfileID: "profile-1", LikeCount: 1}, nil).Once()
		likeRepo.On("CountByComment", mock.Anything, "comment-1").Return(int64(3), nil).Once()
		commentRepo.On("SetLikeCount", mock.Anything, "comment-1", 3).Return(nil).Once()

		count, err := svc.ReconcileLikeCount(context.Background(), "comment-1")

		assert.NoError(t, err)
		assert.Equal(t, 3, count)
		commentRepo.AssertExpectations(t)
		likeRepo.AssertExpectations(t)
	})

	t.Run("CommentMissing", func(t *testing.T) {
		svc, commentRepo, likeRepo, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "missing-id").
			Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.ReconcileLikeCount(context.Background(), "missing-id")

		assert.ErrorIs(t, err, ErrCommentNotFound)
		likeRepo.AssertNotCalled(t, "CountByComment", mock.Anything, mock.Anything)
	})
}

func TestCommentService_GetCommentByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "comment-1").
			Return(&models.Comment{ID: "comment-1", Title: "Thoughts", LikeCount: 3}, nil).Once()

		got, err := svc.GetCommentByID(context.Background(), "comment-1")

		assert.NoError(t, err)
		assert.Equal(t, "comment-1", got.ID)
		assert.Equal(t, 3, got.LikeCount)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentServiceWithMocks()

		commentRepo.On("GetByID", mock.Anything, "missing-id").
			Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.GetCommentByID(context.Background(), "missing-id")

		assert.ErrorIs(t, err, ErrCommentNotFound)
	})
}
