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

const isoDateLayout = "2006-01-02"

// CreateTrackingInput carries the fields accepted when creating a record.
type CreateTrackingInput struct {
	UserID            uuid.UUID
	Date              string
	Status            model.TrackingStatus
	WeeklyAttendances int
}

// UpdateTrackingInput carries the optional fields of a partial update.
type UpdateTrackingInput struct {
	Status            *model.TrackingStatus
	WeeklyAttendances *int
}

// TrackingService handles daily attendance records.
type TrackingService interface {
	List(ctx context.Context, date string) ([]model.DailyTracking, error)
	Create(ctx context.Context, in CreateTrackingInput) (*model.DailyTracking, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateTrackingInput) (*model.DailyTracking, error)
}

type trackingService struct {
	repo repository.TrackingRepository
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(repo repository.TrackingRepository) TrackingService {
	return &trackingService{repo: repo}
}

// List returns records for the exact date when given, otherwise all records
// ordered by date descending.
func (s *trackingService) List(ctx context.Context, date string) ([]model.DailyTracking, error) {
	if date == "" {
		return s.repo.List(ctx)
	}
	if _, err := time.Parse(isoDateLayout, date); err != nil {
		return nil, errors.ErrInvalidDate
	}
	return s.repo.ListByDate(ctx, date)
}

// Create creates a record; one record per (user, date).
func (s *trackingService) Create(ctx context.Context, in CreateTrackingInput) (*model.DailyTracking, error) {
	if _, err := time.Parse(isoDateLayout, in.Date); err != nil {
		return nil, errors.ErrInvalidDate
	}

	existing, err := s.repo.FindByUserAndDate(ctx, in.UserID, in.Date)
	if err == nil && existing != nil {
		return nil, errors.ErrTrackingExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check tracking record: %w", err)
	}

	tracking := &model.DailyTracking{
		UserID:            in.UserID,
		Date:              in.Date,
		Status:            in.Status,
		WeeklyAttendances: in.WeeklyAttendances,
	}

	if err := s.repo.Create(ctx, tracking); err != nil {
		if isDuplicateKey(err) {
			return nil, errors.ErrTrackingExists
		}
		return nil, fmt.Errorf("create tracking record: %w", err)
	}

	return tracking, nil
}

// Update applies a partial update.
func (s *trackingService) Update(ctx context.Context, id uuid.UUID, in UpdateTrackingInput) (*model.DailyTracking, error) {
	tracking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if in.Status != nil {
		tracking.Status = *in.Status
	}
	if in.WeeklyAttendances != nil {
		tracking.WeeklyAttendances = *in.WeeklyAttendances
	}

	if err := s.repo.Update(ctx, tracking); err != nil {
		return nil, fmt.Errorf("update tracking record: %w", err)
	}

	return tracking, nil
}
