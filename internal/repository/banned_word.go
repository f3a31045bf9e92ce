package repository

import (
	"context"

	"fandom/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BannedWordRepository defines the interface for banned-word data operations
type BannedWordRepository interface {
	List(ctx context.Context, communityID uint) ([]models.BannedWord, error)
	Append(ctx context.Context, communityID uint, words []string) error
	Replace(ctx context.Context, communityID uint, words []string) error
	Remove(ctx context.Context, communityID uint, words []string) error
}

// bannedWordRepository implements BannedWordRepository
type bannedWordRepository struct {
	db *gorm.DB
}

// NewBannedWordRepository creates a new banned-word repository
func NewBannedWordRepository(db *gorm.DB) BannedWordRepository {
	return &bannedWordRepository{db: db}
}

// List returns the community's banned words ordered by stored position.
func (r *bannedWordRepository) List(ctx context.Context, communityID uint) ([]models.BannedWord, error) {
	var words []models.BannedWord
	err := r.db.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("position ASC, id ASC").
		Find(&words).Error
	return words, err
}

// Append inserts words after the highest stored position, skipping any
// word the community already has. Input is assumed cleaned and deduped.
func (r *bannedWordRepository) Append(ctx context.Context, communityID uint, words []string) error {
	if len(words) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int
		if err := tx.Model(&models.BannedWord{}).
			Where("community_id = ?", communityID).
			Select("COALESCE(MAX(position), -1)").
			Scan(&maxPos).Error; err != nil {
			return err
		}

		rows := make([]models.BannedWord, 0, len(words))
		for i, word := range words {
			rows = append(rows, models.BannedWord{
				CommunityID: communityID,
				Word:        word,
				Position:    maxPos + 1 + i,
			})
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "word"}},
			DoNothing: true,
		}).Create(&rows).Error
	})
}

// Replace overwrites the whole set; positions follow input order so the
// list reads back in the order it was submitted.
func (r *bannedWordRepository) Replace(ctx context.Context, communityID uint, words []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("community_id = ?", communityID).
			Delete(&models.BannedWord{}).Error; err != nil {
			return err
		}
		if len(words) == 0 {
			return nil
		}
		rows := make([]models.BannedWord, 0, len(words))
		for i, word := range words {
			rows = append(rows, models.BannedWord{
				CommunityID: communityID,
				Word:        word,
				Position:    i,
			})
		}
		return tx.Create(&rows).Error
	})
}

// Remove deletes any stored word matching an entry of words.
func (r *bannedWordRepository) Remove(ctx context.Context, communityID uint, words []string) error {
	if len(words) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("community_id = ? AND word IN ?", communityID, words).
		Delete(&models.BannedWord{}).Error
}
