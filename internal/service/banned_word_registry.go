package service

import (
	"context"
	"errors"

	"fandom/internal/models"

	"gorm.io/gorm"
)

// The banned-word registry lives on CommunityService: every operation
// is scoped to a community and fails NOT_FOUND when it does not exist.
//
// Contract distinction callers rely on: ReplaceBannedWords returns the
// cleaned input in submission order, while GetBannedWords and
// AddBannedWords return set-like lists whose order is unspecified.

func (s *CommunityService) requireCommunity(ctx context.Context, communityID uint) error {
	if _, err := s.communityRepo.GetByID(ctx, communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Community", communityID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (s *CommunityService) listWords(ctx context.Context, communityID uint) ([]string, error) {
	rows, err := s.wordRepo.List(ctx, communityID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	words := make([]string, 0, len(rows))
	for _, row := range rows {
		words = append(words, row.Word)
	}
	return words, nil
}

// GetBannedWords returns the community's current banned-word list,
// empty if none were ever set.
func (s *CommunityService) GetBannedWords(ctx context.Context, communityID uint) ([]string, error) {
	if err := s.requireCommunity(ctx, communityID); err != nil {
		return nil, err
	}
	return s.listWords(ctx, communityID)
}

// AddBannedWords unions the cleaned input with the current set and
// returns the new full list.
func (s *CommunityService) AddBannedWords(ctx context.Context, communityID uint, words []string) ([]string, error) {
	if err := s.requireCommunity(ctx, communityID); err != nil {
		return nil, err
	}
	if err := s.wordRepo.Append(ctx, communityID, cleanWords(words)); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.listWords(ctx, communityID)
}

// ReplaceBannedWords overwrites the whole set with the cleaned input,
// preserving its order.
func (s *CommunityService) ReplaceBannedWords(ctx context.Context, communityID uint, words []string) ([]string, error) {
	if err := s.requireCommunity(ctx, communityID); err != nil {
		return nil, err
	}
	if err := s.wordRepo.Replace(ctx, communityID, cleanWords(words)); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.listWords(ctx, communityID)
}

// RemoveBannedWords deletes every stored word whose trimmed form
// matches an input entry and returns the remaining list.
func (s *CommunityService) RemoveBannedWords(ctx context.Context, communityID uint, words []string) ([]string, error) {
	if err := s.requireCommunity(ctx, communityID); err != nil {
		return nil, err
	}
	if err := s.wordRepo.Remove(ctx, communityID, cleanWords(words)); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.listWords(ctx, communityID)
}
