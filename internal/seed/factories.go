// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"fandom/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// spreadCreatedAt returns a timestamp scattered over the last maxDays days.
func (f *Factory) spreadCreatedAt(maxDays int) time.Time {
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.r.Intn(maxDays)
	hoursBack := f.r.Intn(24)
	minsBack := f.r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}

// CreateCommunity constructs and persists a sample community for the
// given artist id. Optional override functions may modify the generated
// community before saving.
func (f *Factory) CreateCommunity(artistID uint, overrides ...func(*models.Community)) (*models.Community, error) {
	community := &models.Community{
		ArtistID:    artistID,
		Name:        fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), gofakeit.NounAbstract()),
		Description: gofakeit.Sentence(12),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/600/400", gofakeit.UUID()),
		CreatedAt:   f.spreadCreatedAt(180),
	}

	for _, override := range overrides {
		override(community)
	}

	if err := f.db.Create(community).Error; err != nil {
		return nil, err
	}
	return community, nil
}

// CreateMembership persists a membership row for the given user.
func (f *Factory) CreateMembership(community *models.Community, userID uint) (*models.Membership, error) {
	membership := &models.Membership{
		CommunityID: community.ID,
		UserID:      userID,
		CreatedAt:   f.spreadCreatedAt(90),
	}
	if err := f.db.Create(membership).Error; err != nil {
		return nil, err
	}
	return membership, nil
}

// CreateBan persists a ban row for the given user.
func (f *Factory) CreateBan(community *models.Community, userID uint) (*models.Ban, error) {
	ban := &models.Ban{
		CommunityID: community.ID,
		UserID:      userID,
		CreatedAt:   f.spreadCreatedAt(90),
	}
	if err := f.db.Create(ban).Error; err != nil {
		return nil, err
	}
	return ban, nil
}

// CreatePost constructs and persists a sample post in the community.
func (f *Factory) CreatePost(community *models.Community, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		CommunityID: community.ID,
		Title:       gofakeit.Sentence(5),
		Content:     gofakeit.Paragraph(1, 3, 5, "\n"),
		CreatedAt:   f.spreadCreatedAt(90),
	}
	if f.r.Intn(3) == 0 {
		post.FileURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateLike persists a like row for the given user.
func (f *Factory) CreateLike(post *models.Post, userID uint) error {
	like := &models.Like{
		PostID:    post.ID,
		UserID:    userID,
		CreatedAt: f.spreadCreatedAt(30),
	}
	return f.db.Create(like).Error
}

// CreateBannedWords persists an ordered banned-word list for the community.
func (f *Factory) CreateBannedWords(community *models.Community, words []string) error {
	for i, word := range words {
		row := &models.BannedWord{
			CommunityID: community.ID,
			Word:        word,
			Position:    i,
		}
		if err := f.db.Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}
