// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"fandom/internal/models"

	"gorm.io/gorm"
)

// CommunityRepository defines the interface for community data operations
type CommunityRepository interface {
	Create(ctx context.Context, community *models.Community) error
	GetByID(ctx context.Context, id uint) (*models.Community, error)
	ExistsByArtistID(ctx context.Context, artistID uint) (bool, error)
	List(ctx context.Context) ([]models.Community, error)
	ListByMemberUserID(ctx context.Context, userID uint) ([]models.Community, error)
	Update(ctx context.Context, community *models.Community) error
	Delete(ctx context.Context, id uint) error
	CountPosts(ctx context.Context, communityID uint) (int64, error)
	CountMembers(ctx context.Context, communityID uint) (int64, error)
}

// communityRepository implements CommunityRepository
type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository creates a new community repository
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(ctx context.Context, community *models.Community) error {
	return r.db.WithContext(ctx).Create(community).Error
}

func (r *communityRepository) GetByID(ctx context.Context, id uint) (*models.Community, error) {
	var community models.Community
	if err := r.db.WithContext(ctx).First(&community, id).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) ExistsByArtistID(ctx context.Context, artistID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Community{}).
		Where("artist_id = ?", artistID).
		Count(&count).Error
	return count > 0, err
}

func (r *communityRepository) List(ctx context.Context) ([]models.Community, error) {
	var communities []models.Community
	err := r.db.WithContext(ctx).Order("id ASC").Find(&communities).Error
	return communities, err
}

func (r *communityRepository) ListByMemberUserID(ctx context.Context, userID uint) ([]models.Community, error) {
	var communities []models.Community
	err := r.db.WithContext(ctx).
		Joins("JOIN community_members ON community_members.community_id = communities.id").
		Where("community_members.user_id = ?", userID).
		Order("communities.id ASC").
		Find(&communities).Error
	return communities, err
}

func (r *communityRepository) Update(ctx context.Context, community *models.Community) error {
	return r.db.WithContext(ctx).Save(community).Error
}

// Delete removes the community and everything it owns in one
// transaction: likes of its posts, posts, memberships, bans and banned
// words go first so no orphan rows survive a partial failure.
func (r *communityRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).
			Where("community_id = ?", id).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("community_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("community_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("community_id = ?", id).Delete(&models.Ban{}).Error; err != nil {
			return err
		}
		if err := tx.Where("community_id = ?", id).Delete(&models.BannedWord{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Community{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *communityRepository) CountPosts(ctx context.Context, communityID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("community_id = ?", communityID).
		Count(&count).Error
	return count, err
}

func (r *communityRepository) CountMembers(ctx context.Context, communityID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Membership{}).
		Where("community_id = ?", communityID).
		Count(&count).Error
	return count, err
}
