package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// System tags form a closed set; anything else is rejected at binding time.
const (
	SystemTagMBTI      = "mbti"
	SystemTagEnneagram = "enneagram"
	SystemTagZodiac    = "zodiac"
)

type Comment struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProfileID   string    `json:"profile_id" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null;type:text"`
	SystemTag   string    `json:"system_tag" gorm:"not null;index"`
	LikeCount   int       `json:"like_count" gorm:"not null;default:0;check:like_count >= 0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook to set UUID before creating a Comment
func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (Comment) TableName() string {
	return "comments"
}
