package models

import (
	"time"
)

// Post represents a short text post. Posts are immutable after creation;
// hashtag associations are established at creation time only.
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Content   string    `gorm:"type:varchar(280);not null;column:content" json:"content"`
	UserID    int64     `gorm:"not null;index:posts_ix_user;column:user_id" json:"-"`
	CreatedAt time.Time `gorm:"not null;index:posts_ix_created_at;column:created_at" json:"createdAt"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"-"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"-"`
	Hashtags []Hashtag `gorm:"many2many:post_hashtags" json:"-"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}
