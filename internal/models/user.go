package models

import (
	"time"
)

// User represents a registered account. Users are created at registration
// and never updated or deleted; the username is the stable external
// reference carried by sessions.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username  string    `gorm:"type:varchar(32);not null;uniqueIndex:users_ux_username;column:username" json:"username"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:users_ux_email;column:email" json:"email"`
	Password  string    `gorm:"type:varchar(60);not null;column:password" json:"-"`
	FullName  string    `gorm:"type:varchar(100);not null;column:full_name" json:"fullName"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"createdAt"`

	// Relationships
	Posts    []Post    `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"-"`
	Likes    []Like    `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
