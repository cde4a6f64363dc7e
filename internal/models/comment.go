package models

import (
	"time"
)

// Comment represents a comment on a post. Comments are immutable after
// creation and are listed newest first.
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Content   string    `gorm:"type:text;not null;column:content" json:"content"`
	UserID    int64     `gorm:"not null;column:user_id" json:"-"`
	PostID    int64     `gorm:"not null;index:comments_ix_post;column:post_id" json:"postId"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"createdAt"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Post *Post `gorm:"foreignKey:PostID;references:ID" json:"-"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
