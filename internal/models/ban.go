package models

import "time"

// Ban is a standing exclusion of a user from a community. A banned user
// cannot hold a membership in that community; banning evicts any
// existing membership.
type Ban struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CommunityID uint      `gorm:"not null;index;uniqueIndex:uk_ban_community_user" json:"community_id"`
	UserID      uint      `gorm:"not null;uniqueIndex:uk_ban_community_user" json:"user_id"`
	CreatedAt   time.Time `json:"banned_at"`
}

// TableName specifies the table name for GORM.
func (Ban) TableName() string {
	return "community_bans"
}
