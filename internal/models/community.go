package models

import "time"

// Community is an artist-owned space where members post and moderation
// rules apply. Each artist owns at most one community and names are
// globally unique.
type Community struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ArtistID    uint      `gorm:"not null;uniqueIndex" json:"artist_id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:255" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Community) TableName() string {
	return "communities"
}
