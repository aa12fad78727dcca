package repository

import (
	"context"

	"gorm.io/gorm"

	"teamhub/internal/model"
)

// SettingsRepository defines persistence for the app-wide settings singleton.
type SettingsRepository interface {
	GetOrCreate(ctx context.Context) (*model.AppSettings, error)
	Update(ctx context.Context, settings *model.AppSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// GetOrCreate returns the singleton settings row, inserting the defaults on
// first read.
func (r *settingsRepository) GetOrCreate(ctx context.Context) (*model.AppSettings, error) {
	var settings model.AppSettings
	err := r.db.WithContext(ctx).Where("id = ?", model.SettingsID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = model.AppSettings{ID: model.SettingsID}
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update saves the singleton settings row.
func (r *settingsRepository) Update(ctx context.Context, settings *model.AppSettings) error {
	settings.ID = model.SettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
