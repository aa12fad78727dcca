package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageType classifies chat messages.
type MessageType string

const (
	MessageText     MessageType = "text"
	MessageEmoji    MessageType = "emoji"
	MessageImage    MessageType = "image"
	MessagePriority MessageType = "priority"
)

// ChatMessage is a single live-chat entry. Edits always stamp IsEdited,
// deletes are hard.
type ChatMessage struct {
	ID         uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	Content    string      `json:"content" gorm:"type:text;not null"`
	UserID     uuid.UUID   `json:"userId" gorm:"type:char(36);not null;index"`
	Type       MessageType `json:"type" gorm:"size:50;not null;default:'text'"`
	ImageURL   string      `json:"imageUrl,omitempty" gorm:"size:512"`
	IsPriority bool        `json:"isPriority" gorm:"default:false"`
	IsEdited   bool        `json:"isEdited" gorm:"default:false"`
	CreatedAt  time.Time   `json:"createdAt" gorm:"index"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SettingsID is the fixed identifier of the singleton settings rows.
const SettingsID = "main"

// ChatSettings is the chat-wide singleton configuration row.
type ChatSettings struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	IsPaused  bool      `json:"isPaused" gorm:"default:false"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppSettings is the application-wide singleton configuration row.
type AppSettings struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	DarkMode  bool      `json:"darkMode" gorm:"default:false"`
	UpdatedAt time.Time `json:"updatedAt"`
}
