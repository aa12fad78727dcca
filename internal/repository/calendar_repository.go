package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub/internal/model"
)

// CalendarRepository defines calendar event persistence operations.
type CalendarRepository interface {
	Create(ctx context.Context, event *model.CalendarEvent) error
	Update(ctx context.Context, event *model.CalendarEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CalendarEvent, error)
	List(ctx context.Context) ([]model.CalendarEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type calendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository creates a new calendar repository.
func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

// Create creates a new calendar event.
func (r *calendarRepository) Create(ctx context.Context, event *model.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// Update updates an existing calendar event.
func (r *calendarRepository) Update(ctx context.Context, event *model.CalendarEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// FindByID finds a calendar event by ID.
func (r *calendarRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CalendarEvent, error) {
	var event model.CalendarEvent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List lists all calendar events ordered by start date.
func (r *calendarRepository) List(ctx context.Context) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	if err := r.db.WithContext(ctx).Order("start_date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Delete removes a calendar event.
func (r *calendarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CalendarEvent{}).Error
}
