package config

import (
	"fmt"
	"testing"

	"vetkom-cpd-admin/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func TestSeedDataIdempotent(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, SeedData(db))
	require.NoError(t, SeedData(db))

	var settings models.SystemSettings
	require.NoError(t, db.First(&settings, models.SettingsRecordID).Error)
	assert.Equal(t, "ekonom@vetkom.cz", settings.AccountantEmail)

	var count int64
	require.NoError(t, db.Model(&models.EmailTemplate{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSeedDataPropagatesQueryErrors(t *testing.T) {
	db := newSeedTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.EmailTemplate{}))

	// a broken template query must surface, not silently skip seeding
	assert.Error(t, SeedData(db))
}
