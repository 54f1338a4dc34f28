package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockDB opens gorm over a sqlmock connection so the generated SQL can be
// asserted without a running Postgres.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestCommentRepository_IncrementLikeCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	// The counter moves inside the UPDATE itself, never read-modify-write.
	mock.ExpectExec(regexp.QuoteMeta(`SET "like_count"=like_count + 1`)).
		WithArgs("comment-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.IncrementLikeCount(context.Background(), "comment-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_DecrementLikeCountFloorsAtZero(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	// The zero floor lives in the statement, so any number of decrements on
	// an already-zero comment runs the same guarded UPDATE.
	for i := 0; i < 3; i++ {
		mock.ExpectExec(regexp.QuoteMeta(`SET "like_count"=GREATEST(like_count - 1, 0)`)).
			WithArgs("comment-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	for i := 0; i < 3; i++ {
		assert.NoError(t, repo.DecrementLikeCount(context.Background(), "comment-1"))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_SetLikeCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "like_count"=$1`)).
		WithArgs(3, "comment-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetLikeCount(context.Background(), "comment-1", 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
