package service

import (
	"context"

	"fandom/internal/identity"
	"fandom/internal/models"
)

type communityRepoStub struct {
	createFn             func(context.Context, *models.Community) error
	getByIDFn            func(context.Context, uint) (*models.Community, error)
	existsByArtistIDFn   func(context.Context, uint) (bool, error)
	listFn               func(context.Context) ([]models.Community, error)
	listByMemberUserIDFn func(context.Context, uint) ([]models.Community, error)
	updateFn             func(context.Context, *models.Community) error
	deleteFn             func(context.Context, uint) error
	countPostsFn         func(context.Context, uint) (int64, error)
	countMembersFn       func(context.Context, uint) (int64, error)
}

func (s *communityRepoStub) Create(ctx context.Context, community *models.Community) error {
	return s.createFn(ctx, community)
}
func (s *communityRepoStub) GetByID(ctx context.Context, id uint) (*models.Community, error) {
	return s.getByIDFn(ctx, id)
}
func (s *communityRepoStub) ExistsByArtistID(ctx context.Context, artistID uint) (bool, error) {
	return s.existsByArtistIDFn(ctx, artistID)
}
func (s *communityRepoStub) List(ctx context.Context) ([]models.Community, error) {
	return s.listFn(ctx)
}
func (s *communityRepoStub) ListByMemberUserID(ctx context.Context, userID uint) ([]models.Community, error) {
	return s.listByMemberUserIDFn(ctx, userID)
}
func (s *communityRepoStub) Update(ctx context.Context, community *models.Community) error {
	return s.updateFn(ctx, community)
}
func (s *communityRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *communityRepoStub) CountPosts(ctx context.Context, communityID uint) (int64, error) {
	if s.countPostsFn == nil {
		return 0, nil
	}
	return s.countPostsFn(ctx, communityID)
}
func (s *communityRepoStub) CountMembers(ctx context.Context, communityID uint) (int64, error) {
	if s.countMembersFn == nil {
		return 0, nil
	}
	return s.countMembersFn(ctx, communityID)
}

type membershipRepoStub struct {
	createFn          func(context.Context, *models.Membership) error
	getFn             func(context.Context, uint, uint) (*models.Membership, error)
	listByCommunityFn func(context.Context, uint) ([]models.Membership, error)
	existsFn          func(context.Context, uint, uint) (bool, error)
	deleteFn          func(context.Context, uint, uint) (int64, error)
}

func (s *membershipRepoStub) Create(ctx context.Context, membership *models.Membership) error {
	return s.createFn(ctx, membership)
}
func (s *membershipRepoStub) Get(ctx context.Context, communityID, userID uint) (*models.Membership, error) {
	return s.getFn(ctx, communityID, userID)
}
func (s *membershipRepoStub) ListByCommunity(ctx context.Context, communityID uint) ([]models.Membership, error) {
	return s.listByCommunityFn(ctx, communityID)
}
func (s *membershipRepoStub) Exists(ctx context.Context, communityID, userID uint) (bool, error) {
	return s.existsFn(ctx, communityID, userID)
}
func (s *membershipRepoStub) Delete(ctx context.Context, communityID, userID uint) (int64, error) {
	return s.deleteFn(ctx, communityID, userID)
}

type banRepoStub struct {
	createAndEvictFn  func(context.Context, *models.Ban) error
	getFn             func(context.Context, uint, uint) (*models.Ban, error)
	listByCommunityFn func(context.Context, uint) ([]models.Ban, error)
	existsFn          func(context.Context, uint, uint) (bool, error)
	deleteFn          func(context.Context, uint, uint) (int64, error)
}

func (s *banRepoStub) CreateAndEvict(ctx context.Context, ban *models.Ban) error {
	return s.createAndEvictFn(ctx, ban)
}
func (s *banRepoStub) Get(ctx context.Context, communityID, userID uint) (*models.Ban, error) {
	return s.getFn(ctx, communityID, userID)
}
func (s *banRepoStub) ListByCommunity(ctx context.Context, communityID uint) ([]models.Ban, error) {
	return s.listByCommunityFn(ctx, communityID)
}
func (s *banRepoStub) Exists(ctx context.Context, communityID, userID uint) (bool, error) {
	return s.existsFn(ctx, communityID, userID)
}
func (s *banRepoStub) Delete(ctx context.Context, communityID, userID uint) (int64, error) {
	return s.deleteFn(ctx, communityID, userID)
}

type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint) (*models.Post, error)
	listByCommunityFn func(context.Context, uint) ([]models.Post, error)
	updateFn          func(context.Context, *models.Post) error
	deleteFn          func(context.Context, uint) error
	createLikeFn      func(context.Context, *models.Like) error
	getLikeFn         func(context.Context, uint, uint) (*models.Like, error)
	listLikesFn       func(context.Context, uint) ([]models.Like, error)
	deleteLikeFn      func(context.Context, uint, uint) (int64, error)
	countLikesFn      func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListByCommunity(ctx context.Context, communityID uint) ([]models.Post, error) {
	return s.listByCommunityFn(ctx, communityID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) CreateLike(ctx context.Context, like *models.Like) error {
	return s.createLikeFn(ctx, like)
}
func (s *postRepoStub) GetLike(ctx context.Context, postID, userID uint) (*models.Like, error) {
	return s.getLikeFn(ctx, postID, userID)
}
func (s *postRepoStub) ListLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	return s.listLikesFn(ctx, postID)
}
func (s *postRepoStub) DeleteLike(ctx context.Context, postID, userID uint) (int64, error) {
	return s.deleteLikeFn(ctx, postID, userID)
}
func (s *postRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	if s.countLikesFn == nil {
		return 0, nil
	}
	return s.countLikesFn(ctx, postID)
}

type bannedWordRepoStub struct {
	listFn    func(context.Context, uint) ([]models.BannedWord, error)
	appendFn  func(context.Context, uint, []string) error
	replaceFn func(context.Context, uint, []string) error
	removeFn  func(context.Context, uint, []string) error
}

func (s *bannedWordRepoStub) List(ctx context.Context, communityID uint) ([]models.BannedWord, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, communityID)
}
func (s *bannedWordRepoStub) Append(ctx context.Context, communityID uint, words []string) error {
	return s.appendFn(ctx, communityID, words)
}
func (s *bannedWordRepoStub) Replace(ctx context.Context, communityID uint, words []string) error {
	return s.replaceFn(ctx, communityID, words)
}
func (s *bannedWordRepoStub) Remove(ctx context.Context, communityID uint, words []string) error {
	return s.removeFn(ctx, communityID, words)
}

type resolverStub struct {
	resolveArtistFn func(context.Context, uint) (*identity.ArtistProfile, error)
	resolveUserFn   func(context.Context, uint) (*identity.UserProfile, error)
}

func (s *resolverStub) ResolveArtist(ctx context.Context, artistID uint) (*identity.ArtistProfile, error) {
	if s.resolveArtistFn == nil {
		return &identity.ArtistProfile{ID: artistID, Username: "artist"}, nil
	}
	return s.resolveArtistFn(ctx, artistID)
}
func (s *resolverStub) ResolveUser(ctx context.Context, userID uint) (*identity.UserProfile, error) {
	if s.resolveUserFn == nil {
		return &identity.UserProfile{ID: userID, Username: "user"}, nil
	}
	return s.resolveUserFn(ctx, userID)
}
