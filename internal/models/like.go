package models

import "time"

// Like records that a user liked a post.
// The combination of PostID and UserID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:uk_like_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uk_like_post_user" json:"user_id"`
	CreatedAt time.Time `json:"liked_at"`
}

// TableName specifies the table name for GORM.
func (Like) TableName() string {
	return "post_likes"
}
