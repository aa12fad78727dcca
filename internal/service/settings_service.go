package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"teamhub/internal/cache"
	"teamhub/internal/model"
	"teamhub/internal/repository"
)

const (
	appSettingsCacheKey = "app:settings"
	appSettingsCacheTTL = 5 * time.Minute
)

// SettingsService handles the app-wide settings singleton.
type SettingsService interface {
	Get(ctx context.Context) (*model.AppSettings, error)
	Update(ctx context.Context, darkMode bool) (*model.AppSettings, error)
}

type settingsService struct {
	repo  repository.SettingsRepository
	cache *cache.Client
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo repository.SettingsRepository, cache *cache.Client) SettingsService {
	return &settingsService{
		repo:  repo,
		cache: cache,
	}
}

// Get returns the app settings singleton, creating the defaults on first
// read.
func (s *settingsService) Get(ctx context.Context) (*model.AppSettings, error) {
	if data, _ := s.cache.Get(ctx, appSettingsCacheKey); data != nil {
		var cached model.AppSettings
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	settings, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(settings); err == nil {
		_ = s.cache.Set(ctx, appSettingsCacheKey, payload, appSettingsCacheTTL)
	}

	return settings, nil
}

// Update flips the dark-mode flag.
func (s *settingsService) Update(ctx context.Context, darkMode bool) (*model.AppSettings, error) {
	settings, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	settings.DarkMode = darkMode
	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("update app settings: %w", err)
	}

	_ = s.cache.Delete(ctx, appSettingsCacheKey)

	return settings, nil
}
