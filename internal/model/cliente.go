package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a registered customer. Cedula (tax/ID number) and Email are
// unique across the table; Email, Phone and Address are optional.
type Cliente struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Cedula  string    `gorm:"uniqueIndex;not null" json:"cedula"`
	Email   *string   `gorm:"uniqueIndex" json:"email"`
	Phone   *string   `json:"phone"`
	Address *string   `json:"address"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Cliente) TableName() string { return "clientes" }
