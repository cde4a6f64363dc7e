package models

// Like represents a user liking a post. The composite unique index keeps
// the at-most-one-like-per-(user,post) invariant even when two toggle
// requests race past the application-level existence check.
type Like struct {
	ID     int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID int64 `gorm:"not null;uniqueIndex:likes_ux_user_post;column:user_id" json:"userId"`
	PostID int64 `gorm:"not null;uniqueIndex:likes_ux_user_post;column:post_id" json:"postId"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Post *Post `gorm:"foreignKey:PostID;references:ID" json:"-"`
}

// TableName specifies the table name for Like
func (Like) TableName() string {
	return "likes"
}
