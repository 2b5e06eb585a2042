package repositories

import (
	"context"

	"vetkom-cpd-admin/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SettingsRepository handles system settings data access
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get loads the settings singleton row
func (r *SettingsRepository) Get(ctx context.Context) (*models.SystemSettings, error) {
	var settings models.SystemSettings
	err := r.db.WithContext(ctx).First(&settings, models.SettingsRecordID).Error
	return &settings, err
}

// Update saves the settings row
func (r *SettingsRepository) Update(ctx context.Context, settings *models.SystemSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

// Create inserts the settings row (used by seeding only)
func (r *SettingsRepository) Create(ctx context.Context, settings *models.SystemSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}
