package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"teamhub/internal/errors"
	"teamhub/internal/model"
)

type MockNoticeRepository struct {
	mock.Mock
}

func (m *MockNoticeRepository) CreateNotice(ctx context.Context, notice *model.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockNoticeRepository) UpdateNotice(ctx context.Context, notice *model.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockNoticeRepository) FindNoticeByID(ctx context.Context, id uuid.UUID) (*model.Notice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notice), args.Error(1)
}

func (m *MockNoticeRepository) ListActiveNotices(ctx context.Context) ([]model.Notice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notice), args.Error(1)
}

func (m *MockNoticeRepository) SoftDeleteNotice(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNoticeRepository) CreateType(ctx context.Context, t *model.NoticeType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockNoticeRepository) ListTypes(ctx context.Context) ([]model.NoticeType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NoticeType), args.Error(1)
}

func (m *MockNoticeRepository) FindTypeByID(ctx context.Context, id uuid.UUID) (*model.NoticeType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NoticeType), args.Error(1)
}

func (m *MockNoticeRepository) DeleteType(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNoticeRepository) CreateTag(ctx context.Context, t *model.NoticeTag) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockNoticeRepository) ListTags(ctx context.Context) ([]model.NoticeTag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NoticeTag), args.Error(1)
}

func (m *MockNoticeRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateNoticeUnknownType(t *testing.T) {
	repo := new(MockNoticeRepository)
	svc := NewNoticeService(repo)
	typeID := uuid.New()

	repo.On("FindTypeByID", mock.Anything, typeID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateNotice(context.Background(), uuid.New(), CreateNoticeInput{
		Title:   "Aviso",
		Content: "conteudo",
		TypeID:  typeID,
	})
	assert.ErrorIs(t, err, errors.ErrNotFound)
	repo.AssertNotCalled(t, "CreateNotice")
}

func TestCreateNoticeDefaultsActive(t *testing.T) {
	repo := new(MockNoticeRepository)
	svc := NewNoticeService(repo)
	typeID := uuid.New()
	author := uuid.New()

	repo.On("FindTypeByID", mock.Anything, typeID).
		Return(&model.NoticeType{ID: typeID, Name: "Informativo"}, nil)
	repo.On("CreateNotice", mock.Anything, mock.AnythingOfType("*model.Notice")).Return(nil)

	notice, err := svc.CreateNotice(context.Background(), author, CreateNoticeInput{
		Title:   "Aviso",
		Content: "conteudo",
		TypeID:  typeID,
		Tags:    []string{"Geral"},
	})
	assert.NoError(t, err)
	assert.True(t, notice.IsActive)
	assert.Equal(t, author, notice.CreatedBy)
}

func TestUpdateNoticeReactivates(t *testing.T) {
	repo := new(MockNoticeRepository)
	svc := NewNoticeService(repo)

	existing := &model.Notice{ID: uuid.New(), Title: "Antigo", IsActive: false}
	repo.On("FindNoticeByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("UpdateNotice", mock.Anything, mock.AnythingOfType("*model.Notice")).Return(nil)

	active := true
	notice, err := svc.UpdateNotice(context.Background(), existing.ID, UpdateNoticeInput{
		IsActive: &active,
	})
	assert.NoError(t, err)
	assert.True(t, notice.IsActive)
}

func TestDeleteNoticeMissing(t *testing.T) {
	repo := new(MockNoticeRepository)
	svc := NewNoticeService(repo)
	id := uuid.New()

	repo.On("SoftDeleteNotice", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteNotice(context.Background(), id), errors.ErrNotFound)
}

func TestCreateTypeDefaultColor(t *testing.T) {
	repo := new(MockNoticeRepository)
	svc := NewNoticeService(repo)

	repo.On("CreateType", mock.Anything, mock.AnythingOfType("*model.NoticeType")).Return(nil)

	created, err := svc.CreateType(context.Background(), "Urgente", "")
	assert.NoError(t, err)
	assert.Equal(t, "#6366f1", created.Color)
}

func TestCreateTagKeepsColor(t *testing.T) {
	repo := new(MockNoticeRepository)
	svc := NewNoticeService(repo)

	repo.On("CreateTag", mock.Anything, mock.AnythingOfType("*model.NoticeTag")).Return(nil)

	created, err := svc.CreateTag(context.Background(), "RH", "#ff0000")
	assert.NoError(t, err)
	assert.Equal(t, "#ff0000", created.Color)
}
