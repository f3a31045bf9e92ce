package repository

import (
	"testing"

	"fandom/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the same error
// translation the production connection uses, so unique-index failures
// surface as gorm.ErrDuplicatedKey here too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Community{},
		&models.Membership{},
		&models.Ban{},
		&models.Post{},
		&models.Like{},
		&models.BannedWord{},
	))
	return db
}

func createTestCommunity(t *testing.T, db *gorm.DB, artistID uint, name string) *models.Community {
	t.Helper()
	community := &models.Community{ArtistID: artistID, Name: name}
	require.NoError(t, db.Create(community).Error)
	return community
}
