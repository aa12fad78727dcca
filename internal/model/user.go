package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role determines access policy outcomes.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleLider       Role = "lider"
	RoleColaborador Role = "colaborador"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLider, RoleColaborador:
		return true
	}
	return false
}

// User represents a team member account.
type User struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username        string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash    string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Email           *string   `json:"email" gorm:"uniqueIndex;size:255"`
	FirstName       string    `json:"firstName" gorm:"size:255;not null"`
	LastName        string    `json:"lastName" gorm:"size:255;not null"`
	Role            Role      `json:"role" gorm:"size:50;not null;default:'colaborador';index"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty" gorm:"size:512"`
	IsActive        bool      `json:"isActive" gorm:"default:true;index"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// PublicUser is the view of a user returned by auth endpoints.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	Email     *string   `json:"email"`
}

// Public returns the credential-free view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Email:     u.Email,
	}
}
