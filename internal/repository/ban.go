package repository

import (
	"context"

	"fandom/internal/models"

	"gorm.io/gorm"
)

// BanRepository defines the interface for ban data operations
type BanRepository interface {
	CreateAndEvict(ctx context.Context, ban *models.Ban) error
	Get(ctx context.Context, communityID, userID uint) (*models.Ban, error)
	ListByCommunity(ctx context.Context, communityID uint) ([]models.Ban, error)
	Exists(ctx context.Context, communityID, userID uint) (bool, error)
	Delete(ctx context.Context, communityID, userID uint) (int64, error)
}

// banRepository implements BanRepository
type banRepository struct {
	db *gorm.DB
}

// NewBanRepository creates a new ban repository
func NewBanRepository(db *gorm.DB) BanRepository {
	return &banRepository{db: db}
}

// CreateAndEvict inserts the ban row and removes any membership the
// banned user still holds, as one atomic unit. Evicting a non-member
// deletes zero rows; that is not an error.
func (r *banRepository) CreateAndEvict(ctx context.Context, ban *models.Ban) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ban).Error; err != nil {
			return err
		}
		return tx.Where("community_id = ? AND user_id = ?", ban.CommunityID, ban.UserID).
			Delete(&models.Membership{}).Error
	})
}

func (r *banRepository) Get(ctx context.Context, communityID, userID uint) (*models.Ban, error) {
	var ban models.Ban
	err := r.db.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		First(&ban).Error
	if err != nil {
		return nil, err
	}
	return &ban, nil
}

func (r *banRepository) ListByCommunity(ctx context.Context, communityID uint) ([]models.Ban, error) {
	var bans []models.Ban
	err := r.db.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("id ASC").
		Find(&bans).Error
	return bans, err
}

func (r *banRepository) Exists(ctx context.Context, communityID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Ban{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *banRepository) Delete(ctx context.Context, communityID, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Delete(&models.Ban{})
	return res.RowsAffected, res.Error
}
