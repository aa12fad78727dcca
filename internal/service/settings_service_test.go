package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"teamhub/internal/model"
)

// fakeSettingsRepository keeps the singleton in memory and counts inserts so
// read-or-create idempotence can be observed.
type fakeSettingsRepository struct {
	settings *model.AppSettings
	creates  int
}

func (f *fakeSettingsRepository) GetOrCreate(ctx context.Context) (*model.AppSettings, error) {
	if f.settings == nil {
		f.creates++
		f.settings = &model.AppSettings{ID: model.SettingsID}
	}
	snapshot := *f.settings
	return &snapshot, nil
}

func (f *fakeSettingsRepository) Update(ctx context.Context, settings *model.AppSettings) error {
	stored := *settings
	stored.ID = model.SettingsID
	f.settings = &stored
	return nil
}

func TestSettingsGetCreatesSingletonOnce(t *testing.T) {
	repo := &fakeSettingsRepository{}
	svc := NewSettingsService(repo, nil)

	first, err := svc.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, model.SettingsID, first.ID)
	assert.False(t, first.DarkMode)

	second, err := svc.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, model.SettingsID, second.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestSettingsUpdatePersistsDarkMode(t *testing.T) {
	repo := &fakeSettingsRepository{}
	svc := NewSettingsService(repo, nil)

	updated, err := svc.Update(context.Background(), true)
	assert.NoError(t, err)
	assert.True(t, updated.DarkMode)

	loaded, err := svc.Get(context.Background())
	assert.NoError(t, err)
	assert.True(t, loaded.DarkMode)
	assert.Equal(t, 1, repo.creates)
}
