package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub/internal/cache"
	"teamhub/internal/errors"
	"teamhub/internal/model"
	"teamhub/internal/repository"
)

const (
	// DefaultMessageLimit bounds chat history reads.
	DefaultMessageLimit = 100

	chatSettingsCacheKey = "chat:settings"
	chatMessagesCacheKey = "chat:messages"
	chatCacheTTL         = 30 * time.Second
)

// Broadcaster relays chat events to connected peers. Satisfied by hub.Hub.
type Broadcaster interface {
	BroadcastExcept(userID uuid.UUID, payload []byte)
}

// CreateMessageInput carries the fields accepted when posting a message.
type CreateMessageInput struct {
	Content    string
	Type       model.MessageType
	ImageURL   string
	IsPriority bool
}

// UpdateMessageInput carries the optional fields of a message edit.
type UpdateMessageInput struct {
	Content    *string
	Type       *model.MessageType
	ImageURL   *string
	IsPriority *bool
}

// ChatService handles chat messages and the chat settings singleton.
type ChatService interface {
	ListMessages(ctx context.Context, limit int) ([]model.ChatMessage, error)
	CreateMessage(ctx context.Context, author uuid.UUID, in CreateMessageInput) (*model.ChatMessage, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, in UpdateMessageInput) (*model.ChatMessage, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error

	GetSettings(ctx context.Context) (*model.ChatSettings, error)
	UpdateSettings(ctx context.Context, isPaused bool) (*model.ChatSettings, error)
}

type chatService struct {
	repo        repository.ChatRepository
	cache       *cache.Client
	broadcaster Broadcaster
}

// NewChatService creates a new chat service.
func NewChatService(repo repository.ChatRepository, cache *cache.Client, broadcaster Broadcaster) ChatService {
	return &chatService{
		repo:        repo,
		cache:       cache,
		broadcaster: broadcaster,
	}
}

// ListMessages returns the most recent messages, newest first. The default
// window is cached briefly since every client loads it on open.
func (s *chatService) ListMessages(ctx context.Context, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	if limit == DefaultMessageLimit {
		if data, _ := s.cache.Get(ctx, chatMessagesCacheKey); data != nil {
			var cached []model.ChatMessage
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	messages, err := s.repo.ListMessages(ctx, limit)
	if err != nil {
		return nil, err
	}

	if limit == DefaultMessageLimit {
		if payload, err := json.Marshal(messages); err == nil {
			_ = s.cache.Set(ctx, chatMessagesCacheKey, payload, chatCacheTTL)
		}
	}

	return messages, nil
}

// CreateMessage persists a message and relays it to every other connected
// peer. Creation is rejected while chat is paused; the hub is never reached.
func (s *chatService) CreateMessage(ctx context.Context, author uuid.UUID, in CreateMessageInput) (*model.ChatMessage, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings.IsPaused {
		return nil, errors.ErrChatPaused
	}

	msgType := in.Type
	if msgType == "" {
		msgType = model.MessageText
	}

	msg := &model.ChatMessage{
		Content:    in.Content,
		UserID:     author,
		Type:       msgType,
		ImageURL:   in.ImageURL,
		IsPriority: in.IsPriority,
	}

	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	_ = s.cache.Delete(ctx, chatMessagesCacheKey)
	s.relay("new_message", msg)

	return msg, nil
}

// UpdateMessage applies an edit. The edited flag is stamped unconditionally,
// even when the new content equals the old.
func (s *chatService) UpdateMessage(ctx context.Context, id uuid.UUID, in UpdateMessageInput) (*model.ChatMessage, error) {
	msg, err := s.repo.FindMessageByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if in.Content != nil {
		msg.Content = *in.Content
	}
	if in.Type != nil {
		msg.Type = *in.Type
	}
	if in.ImageURL != nil {
		msg.ImageURL = *in.ImageURL
	}
	if in.IsPriority != nil {
		msg.IsPriority = *in.IsPriority
	}
	msg.IsEdited = true

	if err := s.repo.UpdateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}

	_ = s.cache.Delete(ctx, chatMessagesCacheKey)
	s.relay("message_updated", msg)

	return msg, nil
}

// DeleteMessage hard-deletes a message.
func (s *chatService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	msg, err := s.repo.FindMessageByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return err
	}

	if err := s.repo.DeleteMessage(ctx, id); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	_ = s.cache.Delete(ctx, chatMessagesCacheKey)
	s.relay("message_deleted", msg)

	return nil
}

// GetSettings returns the chat settings singleton, creating the defaults on
// first read.
func (s *chatService) GetSettings(ctx context.Context) (*model.ChatSettings, error) {
	if data, _ := s.cache.Get(ctx, chatSettingsCacheKey); data != nil {
		var cached model.ChatSettings
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	settings, err := s.repo.GetOrCreateSettings(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(settings); err == nil {
		_ = s.cache.Set(ctx, chatSettingsCacheKey, payload, chatCacheTTL)
	}

	return settings, nil
}

// UpdateSettings flips the pause flag.
func (s *chatService) UpdateSettings(ctx context.Context, isPaused bool) (*model.ChatSettings, error) {
	settings, err := s.repo.GetOrCreateSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.IsPaused = isPaused
	if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("update chat settings: %w", err)
	}

	_ = s.cache.Delete(ctx, chatSettingsCacheKey)

	return settings, nil
}

// relay fans a chat event out to every peer except the author's own
// connections. Best effort: serialization failures drop the event.
func (s *chatService) relay(eventType string, msg *model.ChatMessage) {
	if s.broadcaster == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": msg,
	})
	if err != nil {
		return
	}
	s.broadcaster.BroadcastExcept(msg.UserID, payload)
}
