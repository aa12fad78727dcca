package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub/internal/model"
)

// TrackingRepository defines daily attendance persistence operations.
type TrackingRepository interface {
	Create(ctx context.Context, tracking *model.DailyTracking) error
	Update(ctx context.Context, tracking *model.DailyTracking) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DailyTracking, error)
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.DailyTracking, error)
	List(ctx context.Context) ([]model.DailyTracking, error)
	ListByDate(ctx context.Context, date string) ([]model.DailyTracking, error)
}

type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository creates a new tracking repository.
func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

// Create creates a new tracking record.
func (r *trackingRepository) Create(ctx context.Context, tracking *model.DailyTracking) error {
	return r.db.WithContext(ctx).Create(tracking).Error
}

// Update updates an existing tracking record.
func (r *trackingRepository) Update(ctx context.Context, tracking *model.DailyTracking) error {
	return r.db.WithContext(ctx).Save(tracking).Error
}

// FindByID finds a tracking record by ID.
func (r *trackingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DailyTracking, error) {
	var tracking model.DailyTracking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tracking).Error; err != nil {
		return nil, err
	}
	return &tracking, nil
}

// FindByUserAndDate finds the record for one user on one date.
func (r *trackingRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.DailyTracking, error) {
	var tracking model.DailyTracking
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&tracking).Error; err != nil {
		return nil, err
	}
	return &tracking, nil
}

// List lists all tracking records ordered by date descending.
func (r *trackingRepository) List(ctx context.Context) ([]model.DailyTracking, error) {
	var records []model.DailyTracking
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByDate lists records matching the exact date.
func (r *trackingRepository) ListByDate(ctx context.Context, date string) ([]model.DailyTracking, error) {
	var records []model.DailyTracking
	if err := r.db.WithContext(ctx).Where("date = ?", date).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
