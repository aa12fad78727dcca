package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackingStatus is the attendance outcome for a day.
type TrackingStatus string

const (
	StatusTrabalhou TrackingStatus = "trabalhou"
	StatusAtestado  TrackingStatus = "atestado"
	StatusFerias    TrackingStatus = "ferias"
)

// DailyTracking records attendance for one user on one date. The (user, date)
// pair is unique; WeeklyAttendances only carries meaning for StatusTrabalhou.
type DailyTracking struct {
	ID                uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID            uuid.UUID      `json:"userId" gorm:"type:char(36);not null;uniqueIndex:idx_tracking_user_date"`
	Date              string         `json:"date" gorm:"type:date;not null;uniqueIndex:idx_tracking_user_date;index"`
	Status            TrackingStatus `json:"status" gorm:"size:50;not null"`
	WeeklyAttendances int            `json:"weeklyAttendances" gorm:"default:0"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (t *DailyTracking) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
