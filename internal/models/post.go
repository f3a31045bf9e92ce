package models

import "time"

// Post belongs to exactly one community. FileURL references an attached
// file (image, audio, video); the file itself is stored elsewhere.
type Post struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CommunityID uint   `gorm:"not null;index" json:"community_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Content     string `gorm:"type:text" json:"content"`
	FileURL     string `gorm:"size:255" json:"file_url"`
	// LikeCount is not persisted; computed from like rows at query time
	LikeCount int64     `gorm:"-" json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}
