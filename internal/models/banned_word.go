package models

import "time"

// BannedWord is a moderation-list entry scoped to a community. Words are
// stored trimmed, case as given, unique per community. Position keeps the
// order a full replace was submitted with; adds append after the highest
// existing position.
type BannedWord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CommunityID uint      `gorm:"not null;index;uniqueIndex:uk_banned_word" json:"community_id"`
	Word        string    `gorm:"size:100;not null;uniqueIndex:uk_banned_word" json:"word"`
	Position    int       `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time `json:"-"`
}

// TableName specifies the table name for GORM.
func (BannedWord) TableName() string {
	return "community_banned_words"
}
