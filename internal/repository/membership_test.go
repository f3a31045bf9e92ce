package repository

import (
	"context"
	"testing"

	"fandom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMembershipRepository_DuplicateJoin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db)
	ctx := context.Background()

	community := createTestCommunity(t, db, 1, "Indie Hive")

	require.NoError(t, repo.Create(ctx, &models.Membership{CommunityID: community.ID, UserID: 10}))

	err := repo.Create(ctx, &models.Membership{CommunityID: community.ID, UserID: 10})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Same user in another community is fine.
	other := createTestCommunity(t, db, 2, "Second Stage")
	require.NoError(t, repo.Create(ctx, &models.Membership{CommunityID: other.ID, UserID: 10}))
}

func TestMembershipRepository_DeleteReportsRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db)
	ctx := context.Background()

	community := createTestCommunity(t, db, 1, "Indie Hive")
	require.NoError(t, repo.Create(ctx, &models.Membership{CommunityID: community.ID, UserID: 10}))

	rows, err := repo.Delete(ctx, community.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(ctx, community.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestMembershipRepository_GetAndExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db)
	ctx := context.Background()

	community := createTestCommunity(t, db, 1, "Indie Hive")
	require.NoError(t, repo.Create(ctx, &models.Membership{CommunityID: community.ID, UserID: 10}))

	membership, err := repo.Get(ctx, community.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(10), membership.UserID)

	_, err = repo.Get(ctx, community.ID, 11)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exists, err := repo.Exists(ctx, community.ID, 10)
	require.NoError(t, err)
	assert.True(t, exists)
}
