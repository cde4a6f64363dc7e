package models

import (
	"time"
)

// Hashtag represents a normalized tag. Tags are created lazily the first
// time a normalized form is seen and never deleted. The unique index on
// the tag text makes the store the source of truth for deduplication
// under concurrent post creation.
type Hashtag struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Tag       string    `gorm:"type:varchar(64);not null;uniqueIndex:hashtags_ux_tag;column:tag" json:"tag"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"createdAt"`

	// Relationships
	Posts []Post `gorm:"many2many:post_hashtags" json:"-"`
}

// TableName specifies the table name for Hashtag
func (Hashtag) TableName() string {
	return "hashtags"
}
