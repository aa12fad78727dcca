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

// CreateEventInput carries the fields accepted when creating a calendar event.
type CreateEventInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Type        model.EventType
	AssignedTo  []string
	IsAllUsers  bool
}

// UpdateEventInput carries the optional fields of a partial event update.
type UpdateEventInput struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Type        *model.EventType
	AssignedTo  []string
	IsAllUsers  *bool
}

// CalendarService handles calendar event operations.
type CalendarService interface {
	List(ctx context.Context) ([]model.CalendarEvent, error)
	Create(ctx context.Context, createdBy uuid.UUID, in CreateEventInput) (*model.CalendarEvent, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateEventInput) (*model.CalendarEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type calendarService struct {
	repo repository.CalendarRepository
}

// NewCalendarService creates a new calendar service.
func NewCalendarService(repo repository.CalendarRepository) CalendarService {
	return &calendarService{repo: repo}
}

// List lists all calendar events.
func (s *calendarService) List(ctx context.Context) ([]model.CalendarEvent, error) {
	return s.repo.List(ctx)
}

// Create creates a calendar event. Events either target everyone or a
// non-empty assignee list; assignees are cleared when IsAllUsers is set.
func (s *calendarService) Create(ctx context.Context, createdBy uuid.UUID, in CreateEventInput) (*model.CalendarEvent, error) {
	assigned := in.AssignedTo
	if in.IsAllUsers {
		assigned = nil
	} else if len(assigned) == 0 {
		return nil, errors.ErrInvalidAssignees
	}

	event := &model.CalendarEvent{
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Type:        in.Type,
		CreatedBy:   createdBy,
		AssignedTo:  assigned,
		IsAllUsers:  in.IsAllUsers,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Update applies a partial update, re-checking the assignee rule against
// the resulting state.
func (s *calendarService) Update(ctx context.Context, id uuid.UUID, in UpdateEventInput) (*model.CalendarEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.StartDate != nil {
		event.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		event.EndDate = in.EndDate
	}
	if in.Type != nil {
		event.Type = *in.Type
	}
	if in.AssignedTo != nil {
		event.AssignedTo = in.AssignedTo
	}
	if in.IsAllUsers != nil {
		event.IsAllUsers = *in.IsAllUsers
	}

	if event.IsAllUsers {
		event.AssignedTo = nil
	} else if len(event.AssignedTo) == 0 {
		return nil, errors.ErrInvalidAssignees
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// Delete removes a calendar event.
func (s *calendarService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
