package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub/internal/errors"
	"teamhub/internal/model"
	"teamhub/internal/repository"
)

// CreateNoticeInput carries the fields accepted when creating a notice.
type CreateNoticeInput struct {
	Title       string
	Content     string
	TypeID      uuid.UUID
	Tags        []string
	Deadline    *time.Time
	RenewalDate *time.Time
}

// UpdateNoticeInput carries the optional fields of a partial notice update.
// IsActive may be set back to true to re-activate a soft-deleted notice.
type UpdateNoticeInput struct {
	Title       *string
	Content     *string
	TypeID      *uuid.UUID
	Tags        []string
	Deadline    *time.Time
	RenewalDate *time.Time
	IsActive    *bool
}

// NoticeService handles notices and their classification records.
type NoticeService interface {
	ListNotices(ctx context.Context) ([]model.Notice, error)
	CreateNotice(ctx context.Context, createdBy uuid.UUID, in CreateNoticeInput) (*model.Notice, error)
	UpdateNotice(ctx context.Context, id uuid.UUID, in UpdateNoticeInput) (*model.Notice, error)
	DeleteNotice(ctx context.Context, id uuid.UUID) error

	ListTypes(ctx context.Context) ([]model.NoticeType, error)
	CreateType(ctx context.Context, name, color string) (*model.NoticeType, error)
	DeleteType(ctx context.Context, id uuid.UUID) error

	ListTags(ctx context.Context) ([]model.NoticeTag, error)
	CreateTag(ctx context.Context, name, color string) (*model.NoticeTag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

type noticeService struct {
	repo repository.NoticeRepository
}

// NewNoticeService creates a new notice service.
func NewNoticeService(repo repository.NoticeRepository) NoticeService {
	return &noticeService{repo: repo}
}

// ListNotices lists active notices, newest first.
func (s *noticeService) ListNotices(ctx context.Context) ([]model.Notice, error) {
	return s.repo.ListActiveNotices(ctx)
}

// CreateNotice creates a notice after checking its type reference.
func (s *noticeService) CreateNotice(ctx context.Context, createdBy uuid.UUID, in CreateNoticeInput) (*model.Notice, error) {
	if _, err := s.repo.FindTypeByID(ctx, in.TypeID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	notice := &model.Notice{
		Title:       in.Title,
		Content:     in.Content,
		TypeID:      in.TypeID,
		Tags:        in.Tags,
		CreatedBy:   createdBy,
		Deadline:    in.Deadline,
		RenewalDate: in.RenewalDate,
		IsActive:    true,
	}

	if err := s.repo.CreateNotice(ctx, notice); err != nil {
		return nil, fmt.Errorf("create notice: %w", err)
	}
	return notice, nil
}

// UpdateNotice applies a partial update.
func (s *noticeService) UpdateNotice(ctx context.Context, id uuid.UUID, in UpdateNoticeInput) (*model.Notice, error) {
	notice, err := s.repo.FindNoticeByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if in.Title != nil {
		notice.Title = *in.Title
	}
	if in.Content != nil {
		notice.Content = *in.Content
	}
	if in.TypeID != nil {
		if _, err := s.repo.FindTypeByID(ctx, *in.TypeID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrNotFound
			}
			return nil, err
		}
		notice.TypeID = *in.TypeID
	}
	if in.Tags != nil {
		notice.Tags = in.Tags
	}
	if in.Deadline != nil {
		notice.Deadline = in.Deadline
	}
	if in.RenewalDate != nil {
		notice.RenewalDate = in.RenewalDate
	}
	if in.IsActive != nil {
		notice.IsActive = *in.IsActive
	}

	if err := s.repo.UpdateNotice(ctx, notice); err != nil {
		return nil, fmt.Errorf("update notice: %w", err)
	}
	return notice, nil
}

// DeleteNotice soft-deletes a notice, preserving the row.
func (s *noticeService) DeleteNotice(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDeleteNotice(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return err
	}
	return nil
}

// ListTypes lists all notice types.
func (s *noticeService) ListTypes(ctx context.Context) ([]model.NoticeType, error) {
	return s.repo.ListTypes(ctx)
}

// CreateType creates a notice type.
func (s *noticeService) CreateType(ctx context.Context, name, color string) (*model.NoticeType, error) {
	t := &model.NoticeType{Name: name, Color: color}
	if t.Color == "" {
		t.Color = "#6366f1"
	}
	if err := s.repo.CreateType(ctx, t); err != nil {
		return nil, fmt.Errorf("create notice type: %w", err)
	}
	return t, nil
}

// DeleteType removes a notice type.
func (s *noticeService) DeleteType(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteType(ctx, id)
}

// ListTags lists all notice tags.
func (s *noticeService) ListTags(ctx context.Context) ([]model.NoticeTag, error) {
	return s.repo.ListTags(ctx)
}

// CreateTag creates a notice tag.
func (s *noticeService) CreateTag(ctx context.Context, name, color string) (*model.NoticeTag, error) {
	t := &model.NoticeTag{Name: name, Color: color}
	if t.Color == "" {
		t.Color = "#6366f1"
	}
	if err := s.repo.CreateTag(ctx, t); err != nil {
		return nil, fmt.Errorf("create notice tag: %w", err)
	}
	return t, nil
}

// DeleteTag removes a notice tag.
func (s *noticeService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTag(ctx, id)
}
