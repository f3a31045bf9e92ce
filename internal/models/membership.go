package models

import "time"

// Membership records that a user joined a community. The
// (community, user) pair is unique; user identity lives in the external
// identity service and is resolved at read time.
type Membership struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CommunityID uint      `gorm:"not null;index;uniqueIndex:uk_member_community_user" json:"community_id"`
	UserID      uint      `gorm:"not null;uniqueIndex:uk_member_community_user" json:"user_id"`
	CreatedAt   time.Time `json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (Membership) TableName() string {
	return "community_members"
}
