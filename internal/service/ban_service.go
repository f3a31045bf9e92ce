package service

import (
	"context"
	"errors"
	"time"

	"fandom/internal/models"
	"fandom/internal/repository"

	"gorm.io/gorm"
)

// BanView is the externally-facing representation of a ban row.
type BanView struct {
	CommunityID uint      `json:"community_id"`
	UserID      uint      `json:"user_id"`
	BannedAt    time.Time `json:"banned_at"`
}

// BanService enforces community-level user bans.
type BanService struct {
	banRepo repository.BanRepository
}

// NewBanService returns a new BanService.
func NewBanService(banRepo repository.BanRepository) *BanService {
	return &BanService{banRepo: banRepo}
}

func toBanView(ban *models.Ban) *BanView {
	return &BanView{
		CommunityID: ban.CommunityID,
		UserID:      ban.UserID,
		BannedAt:    ban.CreatedAt,
	}
}

// ListBanned returns every ban in the community.
func (s *BanService) ListBanned(ctx context.Context, communityID uint) ([]*BanView, error) {
	bans, err := s.banRepo.ListByCommunity(ctx, communityID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	views := make([]*BanView, 0, len(bans))
	for i := range bans {
		views = append(views, toBanView(&bans[i]))
	}
	return views, nil
}

// Ban excludes a user from a community and evicts any membership they
// still hold, atomically. Banning a non-member succeeds without side
// effect; banning twice fails.
func (s *BanService) Ban(ctx context.Context, communityID, userID uint) (*BanView, error) {
	if communityID == 0 {
		return nil, models.NewMissingParameterError("community_id")
	}
	if userID == 0 {
		return nil, models.NewMissingParameterError("user_id")
	}

	banned, err := s.banRepo.Exists(ctx, communityID, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if banned {
		return nil, models.NewAlreadyExistsError("User is already banned from the community")
	}

	ban := &models.Ban{CommunityID: communityID, UserID: userID}
	if err := s.banRepo.CreateAndEvict(ctx, ban); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewAlreadyExistsError("User is already banned from the community")
		}
		return nil, models.NewInternalError(err)
	}
	return toBanView(ban), nil
}

// Unban lifts a ban. It never restores the evicted membership.
func (s *BanService) Unban(ctx context.Context, communityID, userID uint) error {
	rows, err := s.banRepo.Delete(ctx, communityID, userID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if rows == 0 {
		return models.NewNotFoundError("Ban", userID)
	}
	return nil
}
