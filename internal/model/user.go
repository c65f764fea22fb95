package model

import (
	"time"

	"gorm.io/gorm"
)

// User roles for the HR portal.
const (
	RoleHR = "hr"
	RoleVP = "vp"
)

// User is an HR portal account. Credentials are only ever checked
// server-side; tokens are minted by the auth service, never by clients.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Username     string         `json:"username" gorm:"not null;uniqueIndex"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         string         `json:"role" gorm:"not null;default:'hr'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
