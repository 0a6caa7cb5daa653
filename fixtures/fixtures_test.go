package fixtures

import (
	"testing"
	"time"

	authModels "prode-api/packages/auth/models"
	"prode-api/packages/core/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&authModels.User{}, &authModels.RefreshToken{}, &models.Match{}, &models.Prediction{}))
	return db
}

func TestGenerateAndClear(t *testing.T) {
	db := setupTestDB(t)
	f := NewFixtures(db)
	f.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, f.GenerateTestData())

	var users, matches, pending, predictions int64
	db.Model(&authModels.User{}).Count(&users)
	db.Model(&models.Match{}).Count(&matches)
	db.Model(&models.Match{}).Where("home_score IS NULL").Count(&pending)
	db.Model(&models.Prediction{}).Count(&predictions)

	assert.Equal(t, int64(9), users)
	assert.Equal(t, int64(len(playedMatches)+len(upcomingMatches)), matches)
	assert.Equal(t, int64(len(upcomingMatches)), pending)
	assert.Greater(t, predictions, int64(0))

	var admin authModels.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.True(t, admin.HasRole(authModels.RoleAdmin))

	var adminPredictions int64
	db.Model(&models.Prediction{}).Where("user_id = ?", admin.ID).Count(&adminPredictions)
	assert.Zero(t, adminPredictions)

	require.NoError(t, f.ClearAllData())
	db.Model(&authModels.User{}).Count(&users)
	db.Model(&models.Prediction{}).Count(&predictions)
	assert.Zero(t, users)
	assert.Zero(t, predictions)
}
