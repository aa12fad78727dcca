package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventType classifies calendar events.
type EventType string

const (
	EventLembrete    EventType = "lembrete"
	EventFolga       EventType = "folga"
	EventTreinamento EventType = "treinamento"
)

// CalendarEvent is a scheduled entry visible to assigned users or to everyone.
// When IsAllUsers is true AssignedTo is cleared; otherwise it must be non-empty.
type CalendarEvent struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description" gorm:"type:text"`
	StartDate   time.Time  `json:"startDate" gorm:"not null;index"`
	EndDate     *time.Time `json:"endDate"`
	Type        EventType  `json:"type" gorm:"size:50;not null"`
	CreatedBy   uuid.UUID  `json:"createdBy" gorm:"type:char(36);not null;index"`
	AssignedTo  []string   `json:"assignedTo" gorm:"serializer:json"`
	IsAllUsers  bool       `json:"isAllUsers" gorm:"default:false"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (e *CalendarEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
