package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub/internal/model"
)

// ChatRepository defines persistence for chat messages and the chat
// settings singleton.
type ChatRepository interface {
	CreateMessage(ctx context.Context, msg *model.ChatMessage) error
	UpdateMessage(ctx context.Context, msg *model.ChatMessage) error
	FindMessageByID(ctx context.Context, id uuid.UUID) (*model.ChatMessage, error)
	ListMessages(ctx context.Context, limit int) ([]model.ChatMessage, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error

	GetOrCreateSettings(ctx context.Context) (*model.ChatSettings, error)
	UpdateSettings(ctx context.Context, settings *model.ChatSettings) error
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// CreateMessage creates a new chat message.
func (r *chatRepository) CreateMessage(ctx context.Context, msg *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// UpdateMessage updates an existing chat message.
func (r *chatRepository) UpdateMessage(ctx context.Context, msg *model.ChatMessage) error {
	return r.db.WithContext(ctx).Save(msg).Error
}

// FindMessageByID finds a chat message by ID.
func (r *chatRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*model.ChatMessage, error) {
	var msg model.ChatMessage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListMessages returns the most recent messages, newest first.
func (r *chatRepository) ListMessages(ctx context.Context, limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteMessage removes a chat message.
func (r *chatRepository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ChatMessage{}).Error
}

// GetOrCreateSettings returns the singleton settings row, inserting the
// defaults on first read.
func (r *chatRepository) GetOrCreateSettings(ctx context.Context) (*model.ChatSettings, error) {
	var settings model.ChatSettings
	err := r.db.WithContext(ctx).Where("id = ?", model.SettingsID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = model.ChatSettings{ID: model.SettingsID}
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings saves the singleton settings row.
func (r *chatRepository) UpdateSettings(ctx context.Context, settings *model.ChatSettings) error {
	settings.ID = model.SettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
