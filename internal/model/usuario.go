package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is a system user. The store runs with a single admin account
// created via /auth/init, but the table supports more.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Usuario) TableName() string { return "usuarios" }
