package repository

import (
	"context"

	"fandom/internal/models"

	"gorm.io/gorm"
)

// MembershipRepository defines the interface for membership data operations
type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	Get(ctx context.Context, communityID, userID uint) (*models.Membership, error)
	ListByCommunity(ctx context.Context, communityID uint) ([]models.Membership, error)
	Exists(ctx context.Context, communityID, userID uint) (bool, error)
	Delete(ctx context.Context, communityID, userID uint) (int64, error)
}

// membershipRepository implements MembershipRepository
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	// The composite unique index on (community_id, user_id) is the
	// authoritative guard against concurrent duplicate joins.
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *membershipRepository) Get(ctx context.Context, communityID, userID uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *membershipRepository) ListByCommunity(ctx context.Context, communityID uint) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("id ASC").
		Find(&memberships).Error
	return memberships, err
}

func (r *membershipRepository) Exists(ctx context.Context, communityID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Membership{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes a membership and reports how many rows went away so
// callers can distinguish "left" from "was never a member".
func (r *membershipRepository) Delete(ctx context.Context, communityID, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Delete(&models.Membership{})
	return res.RowsAffected, res.Error
}
