package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoticeType is a named, colored classification shared by all notices.
type NoticeType struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Color     string    `json:"color" gorm:"size:50;not null;default:'#6366f1'"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (t *NoticeType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// NoticeTag is a named, colored label attachable to notices.
type NoticeTag struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Color     string    `json:"color" gorm:"size:50;not null;default:'#6366f1'"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (t *NoticeTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Notice is a board entry. Deletion is soft: IsActive flips to false and the
// row is preserved.
type Notice struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	TypeID      uuid.UUID  `json:"typeId" gorm:"type:char(36);not null;index"`
	Tags        []string   `json:"tags" gorm:"serializer:json"`
	CreatedBy   uuid.UUID  `json:"createdBy" gorm:"type:char(36);not null;index"`
	Deadline    *time.Time `json:"deadline"`
	RenewalDate *time.Time `json:"renewalDate"`
	IsActive    bool       `json:"isActive" gorm:"default:true;index"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (n *Notice) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
