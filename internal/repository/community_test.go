package repository

import (
	"context"
	"testing"

	"fandom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCommunityRepository_UniqueIndexes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Community{ArtistID: 1, Name: "Indie Hive"}))

	// Same artist, different name.
	err := repo.Create(ctx, &models.Community{ArtistID: 1, Name: "Second Stage"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Different artist, same name.
	err = repo.Create(ctx, &models.Community{ArtistID: 2, Name: "Indie Hive"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCommunityRepository_ExistsByArtistID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	createTestCommunity(t, db, 1, "Indie Hive")

	taken, err := repo.ExistsByArtistID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByArtistID(ctx, 2)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestCommunityRepository_ListByMemberUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	first := createTestCommunity(t, db, 1, "Indie Hive")
	second := createTestCommunity(t, db, 2, "Second Stage")
	createTestCommunity(t, db, 3, "Empty Room")

	require.NoError(t, db.Create(&models.Membership{CommunityID: first.ID, UserID: 10}).Error)
	require.NoError(t, db.Create(&models.Membership{CommunityID: second.ID, UserID: 10}).Error)
	require.NoError(t, db.Create(&models.Membership{CommunityID: second.ID, UserID: 11}).Error)

	communities, err := repo.ListByMemberUserID(ctx, 10)
	require.NoError(t, err)
	require.Len(t, communities, 2)
	assert.Equal(t, first.ID, communities[0].ID)
	assert.Equal(t, second.ID, communities[1].ID)

	communities, err = repo.ListByMemberUserID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, communities)
}

func TestCommunityRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	community := createTestCommunity(t, db, 1, "Indie Hive")
	other := createTestCommunity(t, db, 2, "Second Stage")

	post := &models.Post{CommunityID: community.ID, Title: "Tour dates"}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, db.Create(&models.Like{PostID: post.ID, UserID: 10}).Error)
	require.NoError(t, db.Create(&models.Membership{CommunityID: community.ID, UserID: 10}).Error)
	require.NoError(t, db.Create(&models.Ban{CommunityID: community.ID, UserID: 11}).Error)
	require.NoError(t, db.Create(&models.BannedWord{CommunityID: community.ID, Word: "leak", Position: 0}).Error)

	otherPost := &models.Post{CommunityID: other.ID, Title: "Untouched"}
	require.NoError(t, db.Create(otherPost).Error)
	require.NoError(t, db.Create(&models.Like{PostID: otherPost.ID, UserID: 10}).Error)

	require.NoError(t, repo.Delete(ctx, community.ID))

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"posts", &models.Post{}},
		{"likes", &models.Like{}},
		{"memberships", &models.Membership{}},
		{"bans", &models.Ban{}},
		{"banned words", &models.BannedWord{}},
	} {
		var count int64
		require.NoError(t, db.Model(probe.model).Count(&count).Error)
		assert.Equal(t, int64(1), count, "expected only %s of the other community to survive", probe.name)
	}

	var survivors int64
	require.NoError(t, db.Model(&models.Community{}).Count(&survivors).Error)
	assert.Equal(t, int64(1), survivors)
}

func TestCommunityRepository_DeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunityRepository(db)

	err := repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCommunityRepository_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	community := createTestCommunity(t, db, 1, "Indie Hive")
	require.NoError(t, db.Create(&models.Post{CommunityID: community.ID, Title: "One"}).Error)
	require.NoError(t, db.Create(&models.Post{CommunityID: community.ID, Title: "Two"}).Error)
	require.NoError(t, db.Create(&models.Membership{CommunityID: community.ID, UserID: 10}).Error)

	posts, err := repo.CountPosts(ctx, community.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), posts)

	members, err := repo.CountMembers(ctx, community.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), members)
}
