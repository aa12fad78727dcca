package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"teamhub/internal/errors"
	"teamhub/internal/model"
)

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateMessage(ctx context.Context, msg *model.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepository) UpdateMessage(ctx context.Context, msg *model.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*model.ChatMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) ListMessages(ctx context.Context, limit int) ([]model.ChatMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChatRepository) GetOrCreateSettings(ctx context.Context) (*model.ChatSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatSettings), args.Error(1)
}

func (m *MockChatRepository) UpdateSettings(ctx context.Context, settings *model.ChatSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastExcept(userID uuid.UUID, payload []byte) {
	m.Called(userID, payload)
}

func TestCreateMessageRejectedWhilePaused(t *testing.T) {
	repo := new(MockChatRepository)
	hub := new(MockBroadcaster)
	svc := NewChatService(repo, nil, hub)

	repo.On("GetOrCreateSettings", mock.Anything).
		Return(&model.ChatSettings{ID: model.SettingsID, IsPaused: true}, nil)

	_, err := svc.CreateMessage(context.Background(), uuid.New(), CreateMessageInput{
		Content: "ola",
	})
	assert.ErrorIs(t, err, errors.ErrChatPaused)
	repo.AssertNotCalled(t, "CreateMessage")
	hub.AssertNotCalled(t, "BroadcastExcept")
}

func TestCreateMessageBroadcastsExcludingAuthor(t *testing.T) {
	repo := new(MockChatRepository)
	hub := new(MockBroadcaster)
	svc := NewChatService(repo, nil, hub)
	author := uuid.New()

	repo.On("GetOrCreateSettings", mock.Anything).
		Return(&model.ChatSettings{ID: model.SettingsID, IsPaused: false}, nil)
	repo.On("CreateMessage", mock.Anything, mock.AnythingOfType("*model.ChatMessage")).Return(nil)

	var relayed []byte
	hub.On("BroadcastExcept", author, mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) { relayed = args.Get(1).([]byte) }).
		Return()

	msg, err := svc.CreateMessage(context.Background(), author, CreateMessageInput{
		Content: "ola equipe",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.MessageText, msg.Type)
	hub.AssertExpectations(t)

	var event struct {
		Type string            `json:"type"`
		Data model.ChatMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(relayed, &event))
	assert.Equal(t, "new_message", event.Type)
	assert.Equal(t, "ola equipe", event.Data.Content)
}

func TestUpdateMessageStampsEdited(t *testing.T) {
	repo := new(MockChatRepository)
	hub := new(MockBroadcaster)
	svc := NewChatService(repo, nil, hub)

	existing := &model.ChatMessage{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		Content: "mesmo texto",
		Type:    model.MessageText,
	}
	repo.On("FindMessageByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("UpdateMessage", mock.Anything, mock.AnythingOfType("*model.ChatMessage")).Return(nil)
	hub.On("BroadcastExcept", existing.UserID, mock.Anything).Return()

	// An edit with identical content still marks the message as edited.
	content := "mesmo texto"
	msg, err := svc.UpdateMessage(context.Background(), existing.ID, UpdateMessageInput{
		Content: &content,
	})
	assert.NoError(t, err)
	assert.True(t, msg.IsEdited)
}

func TestDeleteMessageBroadcasts(t *testing.T) {
	repo := new(MockChatRepository)
	hub := new(MockBroadcaster)
	svc := NewChatService(repo, nil, hub)

	existing := &model.ChatMessage{ID: uuid.New(), UserID: uuid.New(), Content: "apagar"}
	repo.On("FindMessageByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("DeleteMessage", mock.Anything, existing.ID).Return(nil)

	var relayed []byte
	hub.On("BroadcastExcept", existing.UserID, mock.Anything).
		Run(func(args mock.Arguments) { relayed = args.Get(1).([]byte) }).
		Return()

	assert.NoError(t, svc.DeleteMessage(context.Background(), existing.ID))

	var event struct {
		Type string `json:"type"`
	}
	assert.NoError(t, json.Unmarshal(relayed, &event))
	assert.Equal(t, "message_deleted", event.Type)
}

func TestListMessagesDefaultsLimit(t *testing.T) {
	repo := new(MockChatRepository)
	svc := NewChatService(repo, nil, nil)

	repo.On("ListMessages", mock.Anything, DefaultMessageLimit).
		Return([]model.ChatMessage{{Content: "a"}, {Content: "b"}}, nil)

	messages, err := svc.ListMessages(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	repo.AssertExpectations(t)
}

func TestUpdateChatSettingsFlipsPause(t *testing.T) {
	repo := new(MockChatRepository)
	svc := NewChatService(repo, nil, nil)

	repo.On("GetOrCreateSettings", mock.Anything).
		Return(&model.ChatSettings{ID: model.SettingsID, IsPaused: false}, nil)
	repo.On("UpdateSettings", mock.Anything, mock.AnythingOfType("*model.ChatSettings")).Return(nil)

	settings, err := svc.UpdateSettings(context.Background(), true)
	assert.NoError(t, err)
	assert.True(t, settings.IsPaused)
}
