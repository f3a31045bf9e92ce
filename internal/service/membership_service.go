package service

import (
	"context"
	"errors"
	"time"

	"fandom/internal/identity"
	"fandom/internal/models"
	"fandom/internal/repository"

	"gorm.io/gorm"
)

// MemberView is a membership row joined with the member's resolved
// identity profile.
type MemberView struct {
	CommunityID uint      `json:"community_id"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"`
	IsArtist    bool      `json:"is_artist"`
	PhotoURL    *string   `json:"photo_url"`
	JoinedAt    time.Time `json:"joined_at"`
}

// MembershipService enforces who can hold a membership in a community.
type MembershipService struct {
	memberRepo    repository.MembershipRepository
	communityRepo repository.CommunityRepository
	banRepo       repository.BanRepository
	resolver      identity.Resolver
}

// NewMembershipService returns a new MembershipService.
func NewMembershipService(
	memberRepo repository.MembershipRepository,
	communityRepo repository.CommunityRepository,
	banRepo repository.BanRepository,
	resolver identity.Resolver,
) *MembershipService {
	return &MembershipService{
		memberRepo:    memberRepo,
		communityRepo: communityRepo,
		banRepo:       banRepo,
		resolver:      resolver,
	}
}

func (s *MembershipService) toView(ctx context.Context, membership *models.Membership) (*MemberView, error) {
	profile, err := s.resolver.ResolveUser(ctx, membership.UserID)
	if err != nil {
		return nil, err
	}
	return &MemberView{
		CommunityID: membership.CommunityID,
		UserID:      membership.UserID,
		Username:    profile.Username,
		IsArtist:    profile.IsArtist,
		PhotoURL:    profile.PhotoURL,
		JoinedAt:    membership.CreatedAt,
	}, nil
}

// ListMembers resolves every member of the community. The first failed
// identity resolution aborts the whole call; no partial results.
func (s *MembershipService) ListMembers(ctx context.Context, communityID uint) ([]*MemberView, error) {
	memberships, err := s.memberRepo.ListByCommunity(ctx, communityID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	views := make([]*MemberView, 0, len(memberships))
	for i := range memberships {
		view, err := s.toView(ctx, &memberships[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetMember returns one member's resolved view.
func (s *MembershipService) GetMember(ctx context.Context, communityID, userID uint) (*MemberView, error) {
	membership, err := s.memberRepo.Get(ctx, communityID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Member", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return s.toView(ctx, membership)
}

// Join adds a user to a community. Checks run in a fixed order for
// deterministic error reporting: already-member, then creator, then
// banned. The composite unique index remains the authoritative guard
// against concurrent duplicate joins.
func (s *MembershipService) Join(ctx context.Context, communityID, userID uint) (*MemberView, error) {
	if communityID == 0 {
		return nil, models.NewMissingParameterError("community_id")
	}
	if userID == 0 {
		return nil, models.NewMissingParameterError("user_id")
	}

	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Community", communityID)
		}
		return nil, models.NewInternalError(err)
	}

	isMember, err := s.memberRepo.Exists(ctx, communityID, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if isMember {
		return nil, models.NewAlreadyExistsError("User is already a member of the community")
	}

	if community.ArtistID == userID {
		return nil, models.NewBusinessRuleError("User is the community creator")
	}

	isBanned, err := s.banRepo.Exists(ctx, communityID, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if isBanned {
		return nil, models.NewBusinessRuleError("User is banned from the community")
	}

	membership := &models.Membership{CommunityID: communityID, UserID: userID}
	if err := s.memberRepo.Create(ctx, membership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewAlreadyExistsError("User is already a member of the community")
		}
		return nil, models.NewInternalError(err)
	}

	// Membership is committed; identity resolution only composes the
	// response and its failure cannot undo the local write.
	return s.toView(ctx, membership)
}

// Leave removes a membership. A second leave fails NOT_FOUND rather
// than silently succeeding.
func (s *MembershipService) Leave(ctx context.Context, communityID, userID uint) error {
	rows, err := s.memberRepo.Delete(ctx, communityID, userID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if rows == 0 {
		return models.NewNotFoundError("Member", userID)
	}
	return nil
}
