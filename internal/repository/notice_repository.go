package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub/internal/model"
)

// NoticeRepository defines persistence for notices and their types and tags.
type NoticeRepository interface {
	CreateNotice(ctx context.Context, notice *model.Notice) error
	UpdateNotice(ctx context.Context, notice *model.Notice) error
	FindNoticeByID(ctx context.Context, id uuid.UUID) (*model.Notice, error)
	ListActiveNotices(ctx context.Context) ([]model.Notice, error)
	SoftDeleteNotice(ctx context.Context, id uuid.UUID) error

	CreateType(ctx context.Context, t *model.NoticeType) error
	ListTypes(ctx context.Context) ([]model.NoticeType, error)
	FindTypeByID(ctx context.Context, id uuid.UUID) (*model.NoticeType, error)
	DeleteType(ctx context.Context, id uuid.UUID) error

	CreateTag(ctx context.Context, t *model.NoticeTag) error
	ListTags(ctx context.Context) ([]model.NoticeTag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new notice repository.
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

// CreateNotice creates a new notice.
func (r *noticeRepository) CreateNotice(ctx context.Context, notice *model.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

// UpdateNotice updates an existing notice.
func (r *noticeRepository) UpdateNotice(ctx context.Context, notice *model.Notice) error {
	return r.db.WithContext(ctx).Save(notice).Error
}

// FindNoticeByID finds a notice by ID regardless of active state.
func (r *noticeRepository) FindNoticeByID(ctx context.Context, id uuid.UUID) (*model.Notice, error) {
	var notice model.Notice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notice).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

// ListActiveNotices lists active notices, newest first.
func (r *noticeRepository) ListActiveNotices(ctx context.Context) ([]model.Notice, error) {
	var notices []model.Notice
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

// SoftDeleteNotice flags a notice inactive, preserving the row.
func (r *noticeRepository) SoftDeleteNotice(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Notice{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateType creates a new notice type.
func (r *noticeRepository) CreateType(ctx context.Context, t *model.NoticeType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// ListTypes lists all notice types.
func (r *noticeRepository) ListTypes(ctx context.Context) ([]model.NoticeType, error) {
	var types []model.NoticeType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// FindTypeByID finds a notice type by ID.
func (r *noticeRepository) FindTypeByID(ctx context.Context, id uuid.UUID) (*model.NoticeType, error) {
	var t model.NoticeType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteType removes a notice type.
func (r *noticeRepository) DeleteType(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NoticeType{}).Error
}

// CreateTag creates a new notice tag.
func (r *noticeRepository) CreateTag(ctx context.Context, t *model.NoticeTag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// ListTags lists all notice tags.
func (r *noticeRepository) ListTags(ctx context.Context) ([]model.NoticeTag, error) {
	var tags []model.NoticeTag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// DeleteTag removes a notice tag.
func (r *noticeRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NoticeTag{}).Error
}
