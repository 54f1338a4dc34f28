package models

import "time"

// CommentLike is one row per (comment, profile) like relationship.
// The composite unique index makes the insert-if-absent atomic.
type CommentLike struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CommentID string    `json:"comment_id" gorm:"type:uuid;not null;uniqueIndex:idx_comment_profile_like"`
	ProfileID string    `json:"profile_id" gorm:"type:uuid;not null;uniqueIndex:idx_comment_profile_like"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
